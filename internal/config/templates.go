package config

import (
	"fmt"
	"os"
)

func Template() string {
	return defaultTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(defaultTemplate), 0o600)
}

const defaultTemplate = `# record type that opens a new logical file
header_type = "FILE-HEADER"

# materialization workers; 0 means one per CPU
workers = 0

log_level = "info"

# yaml | text
output = "yaml"

show_discrepancies = true
materialize_on_load = true
`
