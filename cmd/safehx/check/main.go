package check_cmd

import (
	"context"
	"io/fs"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/safehx/pkg/parser"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// configFile is looked up in the working directory when no glob
// arguments are given.
const configFile = ".safehx.yaml"

// Config is the optional on-disk configuration for the check command.
type Config struct {
	// Globs are doublestar patterns of templates to check.
	Globs []string `yaml:"globs"`
	// FailFast stops at the first file with diagnostics.
	FailFast bool `yaml:"fail_fast"`
}

type Handler struct {
	failFast bool
	fs       afero.Fs
}

func NewCheckCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "check [glob...]",
		Short: "scan and parse templates, reporting every diagnostic",
		Long: "check parses every template matched by the given doublestar globs " +
			"(default \"**/*.heex\", or the globs from " + configFile + " when present) " +
			"and reports each diagnostic as <line>:<column>: <message>.",
	}

	cmd.Flags().BoolVar(&me.failFast, "fail-fast", false, "stop at the first template with errors")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), args)
	}

	return cmd
}

// LoadConfig reads the optional config file. A missing file is not an
// error; it just yields the zero config.
func LoadConfig(fsys afero.Fs) (*Config, error) {
	content, err := afero.ReadFile(fsys, configFile)
	if err != nil {
		return &Config{}, nil
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Errorf("parsing %s: %w", configFile, err)
	}
	return cfg, nil
}

func (me *Handler) Run(ctx context.Context, globs []string) error {
	log := zerolog.Ctx(ctx)

	if len(globs) == 0 {
		cfg, err := LoadConfig(me.fs)
		if err != nil {
			return err
		}
		globs = cfg.Globs
		me.failFast = me.failFast || cfg.FailFast
		if len(globs) == 0 {
			globs = []string{"**/*.heex"}
		}
	}

	fsys := afero.NewIOFS(me.fs)
	failed := 0
	checked := 0

	for _, glob := range globs {
		matches, err := doublestar.Glob(fsys, glob)
		if err != nil {
			return errors.Errorf("bad glob %q: %w", glob, err)
		}
		for _, path := range matches {
			checked++
			if err := me.checkFile(ctx, fsys, path); err != nil {
				failed++
				log.Error().Str("path", path).Msg(err.Error())
				if me.failFast {
					return errors.Errorf("%s has errors", path)
				}
				continue
			}
			log.Debug().Str("path", path).Msg("ok")
		}
	}

	log.Info().Int("checked", checked).Int("failed", failed).Msg("check finished")
	if failed > 0 {
		return errors.Errorf("%d of %d templates failed", failed, checked)
	}
	return nil
}

func (me *Handler) checkFile(ctx context.Context, fsys fs.FS, path string) error {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}
	if _, diags := parser.ParseString(string(content)); diags.HasErrors() {
		return errors.Errorf("template errors:\n%s", diags.Report())
	}
	return nil
}
