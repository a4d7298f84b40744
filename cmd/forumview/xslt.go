package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/itchan-dev/forumview/internal/xslt"
)

func newXSLTCmd() *cobra.Command {
	var (
		embed     string
		root      string
		scriptURL string
	)

	cmd := &cobra.Command{
		Use:   "xslt",
		Short: "Print the profile export stylesheet",
		Long: `Print the profile export stylesheet. With --embed, the file's content is
wrapped in a root element that carries the stylesheet, so browsers render the
export on their own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := xslt.DefaultExport(scriptURL)
			if embed == "" {
				out, err := xslt.Generate(s)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			body, err := os.ReadFile(embed)
			if err != nil {
				return err
			}
			return xslt.Embed(cmd.OutOrStdout(), s, xslt.Document{
				Root:       root,
				Namespaces: []xslt.Namespace{xslt.ExportNamespace},
				Body:       body,
			})
		},
	}

	cmd.Flags().StringVar(&embed, "embed", "", "XML fragment to embed the stylesheet into")
	cmd.Flags().StringVar(&root, "root", "forum:export", "root element of the embedded document")
	cmd.Flags().StringVar(&scriptURL, "script_url", "/index.php", "forum script URL used in links")
	return cmd
}
