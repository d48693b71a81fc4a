package watch_cmd

import (
	"context"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/safehx/pkg/parser"
	"github.com/walteh/safehx/pkg/render"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	fs afero.Fs
}

func NewWatchCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "watch <template-file>",
		Short: "re-render a template every time it changes",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), args[0])
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, path string) error {
	log := zerolog.Ctx(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return errors.Errorf("watching %s: %w", path, err)
	}

	// render once up front so the first output does not wait for a write
	me.renderOnce(ctx, path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				log.Info().Str("path", event.Name).Msg("template changed")
				me.renderOnce(ctx, path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watch error")
		}
	}
}

func (me *Handler) renderOnce(ctx context.Context, path string) {
	log := zerolog.Ctx(ctx)

	content, err := afero.ReadFile(me.fs, path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to read template")
		return
	}

	doc, diags := parser.ParseString(string(content))
	if diags.HasErrors() {
		log.Error().Str("path", path).Msg("template has errors\n" + diags.Report())
		return
	}

	log.Info().Str("path", path).Msg("rendered")
	os.Stdout.WriteString(render.HTML(doc) + "\n")
}
