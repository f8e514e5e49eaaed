package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/EsotericSoftware/spine-cpp-lite-codegen/config"
	"github.com/EsotericSoftware/spine-cpp-lite-codegen/generator"
	"github.com/EsotericSoftware/spine-cpp-lite-codegen/logging"
	"github.com/EsotericSoftware/spine-cpp-lite-codegen/model"
	"github.com/EsotericSoftware/spine-cpp-lite-codegen/parser"
	"github.com/EsotericSoftware/spine-cpp-lite-codegen/report"
)

var (
	errCheckWithoutOutput = errors.New("--check needs an output path")
	errUnknownFormat      = errors.New("unknown model format")
)

type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	header     string
	output     string
	check      bool
	verbose    bool
	format     string
}

type session struct {
	cfg    *config.Config
	logger *slog.Logger
	header *parser.Header
}

// load resolves configuration, with explicitly set flags taking precedence,
// and parses the header.
func (a *app) load(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("header") {
		cfg.Header = a.header
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Output = a.output
	}

	level := cfg.Logging.Level
	if a.verbose {
		level = "debug"
	}

	logger, err := logging.New(a.stderr, level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	header, err := readHeader(cfg.Header, cfg.ParserSyntax(), logger)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, logger: logger, header: header}, nil
}

func readHeader(path string, syntax parser.Syntax, logger *slog.Logger) (*parser.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	defer f.Close()

	content, err := parser.ReadHeader(f)
	if err != nil {
		return nil, fmt.Errorf("reading header %s: %w", path, err)
	}

	logger.Info("read header", "path", path, "size", humanize.Bytes(uint64(len(content))))

	header, err := parser.Parse(content, syntax)
	if err != nil {
		return nil, fmt.Errorf("parsing header %s: %w", path, err)
	}

	logger.Info("parsed header",
		"opaque_types", len(header.OpaqueTypes),
		"enums", len(header.Enums),
		"functions", len(header.Functions))

	return header, nil
}

func (a *app) generate(cmd *cobra.Command, _ []string) error {
	s, err := a.load(cmd)
	if err != nil {
		return err
	}

	out, err := generator.New(s.header, s.cfg.GeneratorOptions(), s.logger).Generate()
	if err != nil {
		return fmt.Errorf("generating bindings: %w", err)
	}

	path := s.cfg.Output

	if a.check {
		return a.checkOutput(s, path, out)
	}

	if path == "" {
		_, err = io.WriteString(a.stdout, out)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	s.logger.Info("wrote bindings", "path", path, "size", humanize.Bytes(uint64(len(out))))
	fmt.Fprintf(a.stdout, "Generated: %s\n", path)

	return nil
}

// checkOutput diffs the file at path against out. A missing file counts as
// stale.
func (a *app) checkOutput(s *session, path, out string) error {
	if path == "" {
		return errCheckWithoutOutput
	}

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	changed, err := report.Diff(a.stdout, string(existing), out)
	if err != nil {
		return err
	}

	if changed {
		return fmt.Errorf("%w: %s", errStaleOutput, path)
	}

	s.logger.Info("output up to date", "path", path)

	return nil
}

// synthesize runs the object synthesizer on s and wraps the result for the
// reporting commands.
func (s *session) synthesize() report.Model {
	objects, leftover := model.Synthesize(s.header.OpaqueTypes, s.header.Functions)

	return report.NewModel(s.header.Enums, objects, leftover)
}

func (a *app) modelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Dump the synthesized objects and their role plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.format != "yaml" {
				return fmt.Errorf("%w: %q", errUnknownFormat, a.format)
			}

			s, err := a.load(cmd)
			if err != nil {
				return err
			}

			return report.DumpModel(a.stdout, s.synthesize())
		},
	}

	cmd.Flags().StringVar(&a.format, "format", "yaml", "output format")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print per-class getter, property and method counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.load(cmd)
			if err != nil {
				return err
			}

			return report.Stats(a.stdout, s.synthesize())
		},
	}
}
