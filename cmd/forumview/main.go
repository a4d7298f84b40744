package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itchan-dev/forumview/internal/bodyfmt"
	"github.com/itchan-dev/forumview/internal/config"
	"github.com/itchan-dev/forumview/internal/lang"
	"github.com/itchan-dev/forumview/internal/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "forumview",
		Short: "Forum page templates with a preview server and XSLT export",
		Long: `forumview renders forum pages (board index, topics, posting forms, calendar,
moderation center, theme admin) from fully populated view models.

The preview server renders YAML fixtures through the templates, the render
command does the same for a single fixture, and the xslt command prints the
profile export stylesheet.`,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newRenderCmd(), newXSLTCmd())
	return root
}

// newRenderer builds a renderer for the configured language. Templates come
// from TemplatesDir when set so edits don't need a rebuild.
func newRenderer(cfg config.Render) (*render.Renderer, error) {
	catalog, err := lang.Load(cfg.Language, cfg.LangDir)
	if err != nil {
		return nil, fmt.Errorf("load language %q: %w", cfg.Language, err)
	}
	r, err := render.New(render.WithCatalog(catalog), render.WithFormatter(bodyfmt.New()))
	if err != nil {
		return nil, err
	}
	if cfg.TemplatesDir != "" {
		if err := r.Reload(os.DirFS(cfg.TemplatesDir)); err != nil {
			return nil, fmt.Errorf("templates from %s: %w", cfg.TemplatesDir, err)
		}
	}
	return r, nil
}
