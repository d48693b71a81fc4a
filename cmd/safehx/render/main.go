package render_cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/safehx/pkg/parser"
	"github.com/walteh/safehx/pkg/render"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	format string
	fs     afero.Fs
}

func NewRenderCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "render <template-file>",
		Short: "parse a template and print its rendered output",
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&me.format, "format", "html", "output format: html, debug or json")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		out, err := me.Run(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Println(out)
		return nil
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, path string) (string, error) {
	content, err := afero.ReadFile(me.fs, path)
	if err != nil {
		return "", errors.Errorf("reading template %s: %w", path, err)
	}

	doc, diags := parser.ParseString(string(content))
	if diags.HasErrors() {
		zerolog.Ctx(ctx).Error().Str("path", path).Int("count", len(diags)).Msg("template has errors")
		return "", errors.Errorf("parsing %s:\n%s", path, diags.Report())
	}

	switch me.format {
	case "html":
		return render.HTML(doc), nil
	case "debug":
		return render.Debug(doc), nil
	case "json":
		return render.JSON(doc), nil
	default:
		return "", errors.Errorf("unknown format %q: expected html, debug or json", me.format)
	}
}
