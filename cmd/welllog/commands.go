package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/danmuck/welllog/internal/config"
	"github.com/danmuck/welllog/internal/curves"
	"github.com/danmuck/welllog/internal/logical"
	"github.com/danmuck/welllog/internal/objects"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

func (a *app) summary(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("summary", pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	path, err := oneArg(fs, args, "FILE")
	if err != nil {
		return err
	}
	files, err := a.load(ctx, path)
	if err != nil {
		return err
	}

	sums := logical.Summaries(files)
	if a.cfg.ShowDiscrepancies {
		for _, lf := range files {
			for _, d := range lf.AllDiscrepancies() {
				log.Warn().Msgf("welllog.summary file=%d %v", lf.Seq(), d)
			}
		}
	}
	if a.cfg.Output == config.OutputText {
		tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "FILE\tRECORDS\tEXPLICIT\tOBJECTS\tFRAME-DATA\tID")
		for _, s := range sums {
			objs, fdata := 0, 0
			for _, n := range s.Objects {
				objs += n
			}
			for _, n := range s.FrameData {
				fdata += n
			}
			fmt.Fprintf(tw, "%d\t[%d,%d)\t%d\t%d\t%d\t%s\n", s.Seq, s.Start, s.End, s.Explicit, objs, fdata, s.ID)
		}
		return tw.Flush()
	}
	return a.yaml(sums)
}

func (a *app) objects(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("objects", pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	seq := fs.IntP("file", "f", -1, "logical file, -1 for all")
	typ := fs.StringP("type", "t", "", "object type pattern")
	name := fs.StringP("name", "n", "", "object name pattern")
	path, err := oneArg(fs, args, "FILE")
	if err != nil {
		return err
	}
	files, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	selected, err := pick(files, *seq)
	if err != nil {
		return err
	}

	var rows []objectRow
	for _, lf := range selected {
		matched, err := lf.Match(*typ, *name)
		if err != nil {
			return err
		}
		for _, obj := range matched {
			rows = append(rows, objectRow{File: lf.Seq(), Header: obj.Header(), Discrepancies: len(obj.Discrepancies())})
		}
	}
	if a.cfg.Output == config.OutputText {
		tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "FILE\tTYPE\tNAME\tORIGIN\tCOPY\tDISCREPANCIES")
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\n", r.File, r.Type, r.Name, r.Origin, r.Copy, r.Discrepancies)
		}
		return tw.Flush()
	}
	return a.yaml(rows)
}

// target flags select one object of one logical file.
type target struct {
	seq    *int
	typ    *string
	name   *string
	origin *int64
	copy   *int64
}

func targetFlags(fs *pflag.FlagSet, defaultType string) target {
	return target{
		seq:    fs.IntP("file", "f", 0, "logical file"),
		typ:    fs.StringP("type", "t", defaultType, "object type"),
		name:   fs.StringP("name", "n", "", "object name"),
		origin: fs.Int64P("origin", "O", 0, "origin"),
		copy:   fs.Int64P("copy", "C", 0, "copy number"),
	}
}

func (a *app) find(ctx context.Context, path string, t target) (*logical.LogicalFile, objects.Object, error) {
	if *t.name == "" {
		return nil, nil, fmt.Errorf("%w: --name is required", errUsage)
	}
	files, err := a.load(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	selected, err := pick(files, *t.seq)
	if err != nil {
		return nil, nil, err
	}
	lf := selected[0]
	obj, err := lf.Object(strings.ToUpper(*t.typ), *t.name, *t.origin, *t.copy)
	if err != nil {
		return nil, nil, err
	}
	return lf, obj, nil
}

func (a *app) describe(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("describe", pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	t := targetFlags(fs, objects.TypeChannel)
	path, err := oneArg(fs, args, "FILE")
	if err != nil {
		return err
	}
	lf, obj, err := a.find(ctx, path, t)
	if err != nil {
		return err
	}

	view := describeObject(lf, obj, a.cfg.ShowDiscrepancies)
	if a.cfg.Output == config.OutputText {
		return writeObjectText(a.stdout, view)
	}
	return a.yaml(view)
}

func (a *app) curves(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("curves", pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	t := targetFlags(fs, objects.TypeFrame)
	channels := fs.StringSlice("channel", nil, "channels to print, all when empty")
	path, err := oneArg(fs, args, "FILE")
	if err != nil {
		return err
	}
	lf, obj, err := a.find(ctx, path, t)
	if err != nil {
		return err
	}
	frame, ok := obj.(*objects.Frame)
	if !ok {
		return fmt.Errorf("%s is not a frame", obj.Header())
	}
	c, err := curves.Assemble(lf, frame)
	if err != nil {
		return err
	}

	names := *channels
	if len(names) == 0 {
		names = c.Channels()
	}
	if a.cfg.Output == config.OutputText {
		return writeCurvesText(a.stdout, c, names)
	}
	return a.yaml(curvesView(c, names))
}

func (a *app) types() error {
	if a.cfg.Output == config.OutputText {
		for _, typ := range objects.Types() {
			fmt.Fprintln(a.stdout, typ)
		}
		return nil
	}
	var out []schemaView
	for _, typ := range objects.Types() {
		schema, _ := objects.SchemaFor(typ)
		out = append(out, newSchemaView(schema))
	}
	return a.yaml(out)
}

func (a *app) config(args []string) error {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	force := fs.Bool("force", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: config expects init|validate PATH", errUsage)
	}
	action, path := fs.Arg(0), fs.Arg(1)
	switch action {
	case "init":
		if path == "-" {
			_, err := io.WriteString(a.stdout, config.Template())
			return err
		}
		if err := config.WriteTemplate(path, *force); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "wrote config template to %s\n", path)
	case "validate":
		if _, err := config.Load(path); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "validated config at %s\n", path)
	default:
		return fmt.Errorf("%w: unknown config action %q", errUsage, action)
	}
	return nil
}

func (a *app) yaml(v any) error {
	enc := yaml.NewEncoder(a.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
