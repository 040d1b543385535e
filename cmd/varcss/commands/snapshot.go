package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print every variable with its display value per mode as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := c.app.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(snap); err != nil {
				return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
			}
			return nil
		},
	}
}
