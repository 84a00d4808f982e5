package commands

import (
	"context"

	"github.com/costlens/costlens/pkg/terminal/export"
	"github.com/spf13/cobra"
)

type SavingsCmd struct {
	client   *Client
	reporter *export.Reporter
}

func NewSavingsCmd(client *Client, reporter *export.Reporter) *cobra.Command {
	sc := &SavingsCmd{client: client, reporter: reporter}

	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Savings ledger rollups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Total, monthly and annual savings",
		RunE:  sc.summary,
	})

	return cmd
}

func (sc *SavingsCmd) summary(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	summary, err := sc.client.SavingsSummary(ctx)
	if err != nil {
		return err
	}
	return sc.reporter.SavingsSummary(summary)
}
