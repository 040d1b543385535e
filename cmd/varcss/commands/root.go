// Package commands implements the CLI commands for varcss.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/varcss/internal/core/domain"
)

// Application is the behaviour the CLI drives.
type Application interface {
	Export(ctx context.Context, req domain.ExportRequest) (domain.ExportResponse, error)
	Import(ctx context.Context, req domain.ImportRequest) (domain.ImportResponse, error)
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
	Serve(ctx context.Context, in io.Reader, out io.Writer, watch bool) error
}

// CLI represents the command line interface for varcss.
type CLI struct {
	app     Application
	config  *domain.Config
	rootCmd *cobra.Command
}

// New creates a new CLI instance. cfg supplies flag defaults.
func New(a Application, cfg *domain.Config) *CLI {
	if cfg == nil {
		cfg = &domain.Config{}
	}

	rootCmd := &cobra.Command{
		Use:           "varcss",
		Short:         "Convert design-tool variables to and from CSS custom properties",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		config:  cfg,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newImportCmd())
	rootCmd.AddCommand(c.newSnapshotCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetIO replaces the command input and output streams. Used for testing.
func (c *CLI) SetIO(in io.Reader, out, errOut io.Writer) {
	c.rootCmd.SetIn(in)
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
