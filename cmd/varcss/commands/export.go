package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newExportCmd() *cobra.Command {
	var (
		root     string
		theme    string
		override bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a root collection and an optional theme collection as CSS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if root == "" {
				return domain.ErrRootCollectionRequired
			}

			resp, err := c.app.Export(cmd.Context(), domain.ExportRequest{
				RootCollectionID:  root,
				ThemeCollectionID: theme,
				UseOverrideSyntax: override,
			})
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write([]byte(resp.CSSText))
			} else {
				err = os.WriteFile(output, []byte(resp.CSSText), domain.FilePerm)
			}
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", c.config.Export.RootCollectionID, "Root collection id or name")
	cmd.Flags().StringVar(&theme, "theme", c.config.Export.ThemeCollectionID, "Theme collection id or name")
	cmd.Flags().BoolVar(&override, "override", c.config.Export.UseOverrideSyntax, "Prefer each variable's override token")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write CSS to this file instead of stdout")

	return cmd
}
