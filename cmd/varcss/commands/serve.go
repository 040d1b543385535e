package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Exchange newline-delimited JSON messages with a shell over stdin and stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), watch)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Push a snapshot when the document file changes")

	return cmd
}
