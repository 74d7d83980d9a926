package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/danmuck/welllog/internal/config"
	"github.com/danmuck/welllog/internal/logging"
	"github.com/danmuck/welllog/internal/logical"
	"github.com/danmuck/welllog/internal/observability"
	"github.com/danmuck/welllog/internal/record"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const usage = `usage: welllog [global flags] <command> [flags] [args]

commands:
  summary  FILE            one entry per logical file
  objects  FILE            list objects, filtered by --type/--name patterns
  describe FILE            fields, links and discrepancies of one object
  curves   FILE            frame-data rows of one frame
  types                    object types with a declared schema
  config   init|validate PATH  init - prints the template to stdout

global flags:
  -c, --config FILE      TOML config file
      --log-level LEVEL  trace|debug|info|warn|error
  -o, --output FORMAT    yaml|text
  -w, --workers N        materialization workers, 0 for one per CPU
      --header-type TYPE set type that opens a logical file
      --lazy             materialize objects on demand
      --metrics FILE     write pipeline metrics after the command
`

var errUsage = errors.New("invalid usage")

type app struct {
	stdout  io.Writer
	stderr  io.Writer
	cfg     config.Config
	metrics string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logging.ConfigureRuntime()

	a := &app{stdout: stdout, stderr: stderr, cfg: config.Default()}
	rest, err := a.parseGlobal(args)
	if err != nil {
		return a.fail(err)
	}
	if len(rest) == 0 {
		return a.fail(errUsage)
	}

	cmd, rest := rest[0], rest[1:]
	switch cmd {
	case "summary":
		err = a.summary(ctx, rest)
	case "objects":
		err = a.objects(ctx, rest)
	case "describe":
		err = a.describe(ctx, rest)
	case "curves":
		err = a.curves(ctx, rest)
	case "types":
		err = a.types()
	case "config":
		err = a.config(rest)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	if err == nil && a.metrics != "" {
		err = observability.WriteTextfile(a.metrics)
	}
	if err != nil {
		return a.fail(err)
	}
	return 0
}

func (a *app) fail(err error) int {
	fmt.Fprintf(a.stderr, "welllog: %v\n", err)
	if errors.Is(err, errUsage) {
		fmt.Fprint(a.stderr, usage)
		return 2
	}
	return 1
}

// parseGlobal reads global flags up to the command name. Flags override
// the config file, which overrides the defaults.
func (a *app) parseGlobal(args []string) ([]string, error) {
	fs := pflag.NewFlagSet("welllog", pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.SetInterspersed(false)
	path := fs.StringP("config", "c", "", "TOML config file")
	level := fs.String("log-level", "", "log level (trace|debug|info|warn|error)")
	output := fs.StringP("output", "o", "", "output format (yaml|text)")
	workers := fs.IntP("workers", "w", 0, "materialization workers, 0 for one per CPU")
	header := fs.String("header-type", "", "set type that opens a logical file")
	lazy := fs.Bool("lazy", false, "materialize objects on demand instead of at load")
	fs.StringVar(&a.metrics, "metrics", "", "write pipeline metrics to this file after the command")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	if *path != "" {
		cfg, err := config.Load(*path)
		if err != nil {
			return nil, err
		}
		a.cfg = cfg
	}
	if fs.Changed("log-level") {
		a.cfg.LogLevel = *level
	}
	if fs.Changed("output") {
		a.cfg.Output = *output
	}
	if fs.Changed("workers") {
		a.cfg.Workers = *workers
	}
	if fs.Changed("header-type") {
		a.cfg.HeaderType = *header
	}
	if *lazy {
		a.cfg.MaterializeOnLoad = false
	}
	if err := config.Validate(a.cfg); err != nil {
		return nil, err
	}
	if !logging.SetLevel(a.cfg.LogLevel) {
		log.Warn().Msgf("welllog unknown log level %q, keeping default", a.cfg.LogLevel)
	}
	return fs.Args(), nil
}

// load decodes the record stream at path and partitions it.
func (a *app) load(ctx context.Context, path string) ([]*logical.LogicalFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := record.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	files, err := logical.Partition(s, logical.WithHeaderType(a.cfg.HeaderType))
	if err != nil {
		return nil, err
	}
	if a.cfg.MaterializeOnLoad {
		if err := logical.LoadAll(ctx, files, a.cfg.Workers); err != nil {
			return nil, err
		}
	}
	log.Info().Msgf("welllog.load path=%s records=%d files=%d digest=%s", path, s.Len(), len(files), s.DigestHex())
	return files, nil
}

// pick returns the file at seq, or every file when seq is negative.
func pick(files []*logical.LogicalFile, seq int) ([]*logical.LogicalFile, error) {
	if seq < 0 {
		return files, nil
	}
	if seq >= len(files) {
		return nil, fmt.Errorf("no logical file %d (stream has %d)", seq, len(files))
	}
	return files[seq : seq+1], nil
}

func oneArg(fs *pflag.FlagSet, args []string, name string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%w: %s expects exactly one %s", errUsage, fs.Name(), name)
	}
	return fs.Arg(0), nil
}
