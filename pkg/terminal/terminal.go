package terminal

import (
	"io"
	"os"

	"github.com/costlens/costlens/pkg/terminal/commands"
	"github.com/costlens/costlens/pkg/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	client   *commands.Client
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Endpoint string
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Endpoint == "" {
		opts.Endpoint = "http://localhost:8080"
	}

	cli := &CLI{
		client:   commands.NewClient(opts.Endpoint),
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "costlens",
		Short: "Cloud cost tracking tool",
	}

	cmd.AddCommand(commands.NewCostsCmd(cli.client, cli.reporter))
	cmd.AddCommand(commands.NewSavingsCmd(cli.client, cli.reporter))

	return cmd
}
