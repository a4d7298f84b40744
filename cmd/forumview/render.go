package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/itchan-dev/forumview/internal/config"
	"github.com/itchan-dev/forumview/internal/fixtures"
)

func newRenderCmd() *cobra.Command {
	var (
		fixture string
		out     string
		cfg     = config.Default().Render
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one fixture to stdout or a file",
		Long: `Render one fixture. --fixture is a path to a YAML fixture or the name of
one of the built-in samples (see "serve" for the list).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFixture(fixture)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cfg)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := renderer.Render(&buf, f.Page, f.Common, f.Data); err != nil {
				return fmt.Errorf("render %s: %w", f.Name, err)
			}
			if out == "" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			return os.WriteFile(out, buf.Bytes(), 0o644)
		},
	}

	cmd.Flags().StringVar(&fixture, "fixture", "", "fixture file or built-in sample name")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&cfg.Language, "lang", cfg.Language, "language catalog")
	cmd.Flags().StringVar(&cfg.LangDir, "lang_dir", "", "directory with override catalogs")
	cmd.Flags().StringVar(&cfg.TemplatesDir, "templates_dir", "", "directory with templates replacing the built-in ones")
	_ = cmd.MarkFlagRequired("fixture")
	return cmd
}

func loadFixture(fixture string) (*fixtures.Fixture, error) {
	f, err := fixtures.LoadFile(fixture)
	if errors.Is(err, fs.ErrNotExist) {
		return fixtures.Embedded().Load(fixture)
	}
	return f, err
}
