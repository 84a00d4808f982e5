// Package commands defines the cobra commands of the costlens CLI. Every
// command talks to a running API instance and renders the response as a
// terminal table.
package commands

import (
	"context"
	"time"

	"github.com/costlens/costlens/pkg/terminal/export"
	"github.com/spf13/cobra"
)

const requestTimeout = 30 * time.Second

type CostsCmd struct {
	client   *Client
	reporter *export.Reporter
}

func NewCostsCmd(client *Client, reporter *export.Reporter) *cobra.Command {
	cc := &CostsCmd{client: client, reporter: reporter}

	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Cost rollups across the tracked inventory",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "total",
		Short: "Grand total with per-service breakdown",
		RunE:  cc.total,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "by-region",
		Short: "Monthly cost per region",
		RunE:  cc.byRegion,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "by-service",
		Short: "Monthly cost per service with percentages",
		RunE:  cc.byService,
	})

	return cmd
}

func (cc *CostsCmd) total(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	totals, err := cc.client.TotalCost(ctx)
	if err != nil {
		return err
	}
	return cc.reporter.TotalCost(totals)
}

func (cc *CostsCmd) byRegion(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	rollup, err := cc.client.CostByRegion(ctx)
	if err != nil {
		return err
	}
	return cc.reporter.CostByRegion(rollup)
}

func (cc *CostsCmd) byService(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	rollup, err := cc.client.CostByService(ctx)
	if err != nil {
		return err
	}
	return cc.reporter.CostByService(rollup)
}
