// Package export renders cost reports as terminal tables.
package export

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/costlens/costlens/pkg/models/api"
	"github.com/olekukonko/tablewriter"
)

type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// TotalCost prints the grand rollup: the per-kind breakdown with resource
// counts, followed by the monthly/daily/annual totals.
func (r *Reporter) TotalCost(totals api.CostTotals) error {
	table := tablewriter.NewWriter(r.writer)
	table.SetHeader([]string{"Service", "Resources", "Monthly Cost"})

	for _, row := range kindRows(totals.CostBreakdown) {
		count := kindCount(totals.ResourceCounts, row.name)
		table.Append([]string{row.name, fmt.Sprintf("%d", count), money(row.value)})
	}
	table.SetFooter([]string{"Total", "", money(totals.TotalMonthlyCost)})
	table.Render()

	fmt.Fprintf(r.writer, "\nDaily: %s  Annual: %s  Regions: %d  Generated: %s\n",
		money(totals.TotalDailyCost),
		money(totals.TotalAnnualCost),
		totals.RegionCount,
		totals.GeneratedAt.Format("2006-01-02 15:04:05"))

	return nil
}

// CostByRegion prints one row per region, sorted by region name.
func (r *Reporter) CostByRegion(rollup api.RegionRollup) error {
	table := tablewriter.NewWriter(r.writer)
	table.SetHeader([]string{"Region", "Instances", "Load Balancers", "ASGs", "Volumes", "DB Instances", "Total"})

	regions := make([]string, 0, len(rollup.Regions))
	for region := range rollup.Regions {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	var grand float64
	for _, region := range regions {
		costs := rollup.Regions[region]
		grand += costs.Total
		table.Append([]string{
			region,
			money(costs.Instances),
			money(costs.LoadBalancers),
			money(costs.AutoScalingGroups),
			money(costs.Volumes),
			money(costs.DBInstances),
			money(costs.Total),
		})
	}
	table.SetFooter([]string{"Total", "", "", "", "", "", money(grand)})
	table.Render()

	return nil
}

// CostByService prints one row per resource kind with its share of the
// total monthly cost.
func (r *Reporter) CostByService(rollup api.ServiceRollup) error {
	table := tablewriter.NewWriter(r.writer)
	table.SetHeader([]string{"Service", "Monthly Cost", "Share"})

	percentages := rollup.Percentages
	for _, row := range kindRows(rollup.Services) {
		table.Append([]string{row.name, money(row.value), percent(kindPercent(percentages, row.name))})
	}
	table.SetFooter([]string{"Total", money(rollup.TotalMonthlyCost), ""})
	table.Render()

	return nil
}

// SavingsSummary prints the rolled-up savings figures.
func (r *Reporter) SavingsSummary(summary api.SavingsSummary) error {
	table := tablewriter.NewWriter(r.writer)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Total Savings", money(summary.TotalSavings)})
	table.Append([]string{"Monthly Savings", money(summary.MonthlySavings)})
	table.Append([]string{"Annual Savings", money(summary.AnnualSavings)})
	table.Append([]string{"Events", fmt.Sprintf("%d", summary.ResourceCount)})
	table.Render()

	return nil
}

type kindRow struct {
	name  string
	value float64
}

func kindRows(costs api.KindCosts) []kindRow {
	return []kindRow{
		{"EC2 Instances", costs.Instances},
		{"Load Balancers", costs.LoadBalancers},
		{"Auto Scaling Groups", costs.AutoScalingGroups},
		{"EBS Volumes", costs.Volumes},
		{"DB Instances", costs.DBInstances},
	}
}

func kindCount(counts api.KindCounts, name string) int {
	switch name {
	case "EC2 Instances":
		return counts.Instances
	case "Load Balancers":
		return counts.LoadBalancers
	case "Auto Scaling Groups":
		return counts.AutoScalingGroups
	case "EBS Volumes":
		return counts.Volumes
	case "DB Instances":
		return counts.DBInstances
	}
	return 0
}

func kindPercent(percentages api.KindCosts, name string) float64 {
	switch name {
	case "EC2 Instances":
		return percentages.Instances
	case "Load Balancers":
		return percentages.LoadBalancers
	case "Auto Scaling Groups":
		return percentages.AutoScalingGroups
	case "EBS Volumes":
		return percentages.Volumes
	case "DB Instances":
		return percentages.DBInstances
	}
	return 0
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
