package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" WARNING ", zerolog.WarnLevel, true},
		{"diagnostics", zerolog.TraceLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogBypass, "1")
	t.Setenv(EnvLogNoColor, "nope")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.False(t, cfg.Timestamp)
	assert.True(t, cfg.Bypass)
	assert.False(t, cfg.NoColor)
}

func TestDefaultConfigProfiles(t *testing.T) {
	rt := defaultConfig(ProfileRuntime)
	assert.Equal(t, zerolog.InfoLevel, rt.Level)
	assert.True(t, rt.Timestamp)

	tc := defaultConfig(ProfileTest)
	assert.Equal(t, zerolog.DebugLevel, tc.Level)
	assert.False(t, tc.Timestamp)
}

func TestConsoleWriterTimestampColumn(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(consoleWriter(Config{Out: &buf, NoColor: true}))
	logger.Info().Msg("hello")
	assert.Equal(t, "INF hello\n", buf.String())

	buf.Reset()
	logger = zerolog.New(consoleWriter(Config{Out: &buf, NoColor: true, Timestamp: true})).With().Timestamp().Logger()
	logger.Info().Msg("hello")
	assert.NotContains(t, buf.String(), "<nil>")
	assert.Contains(t, buf.String(), "INF hello")
}
