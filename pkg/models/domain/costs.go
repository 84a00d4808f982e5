package domain

import "time"

// UnknownRegion is the bucket resources with no region are aggregated
// under, in every view that groups by region.
const UnknownRegion = "unknown"

// KindCosts is a monthly cost figure per resource kind.
type KindCosts struct {
	Instances         float64
	LoadBalancers     float64
	AutoScalingGroups float64
	Volumes           float64
	DBInstances       float64
}

// KindCounts is a resource count per resource kind.
type KindCounts struct {
	Instances         int
	LoadBalancers     int
	AutoScalingGroups int
	Volumes           int
	DBInstances       int
}

// CostTotals is the grand rollup across all collections.
type CostTotals struct {
	TotalMonthly float64
	TotalDaily   float64
	TotalAnnual  float64
	RegionCount  int
	Breakdown    KindCosts
	Counts       KindCounts
	GeneratedAt  time.Time
}

// RegionCost is one region's bucket in the by-region rollup.
type RegionCost struct {
	Costs KindCosts
	Total float64
}

// RegionRollup maps normalized region to its cost bucket.
type RegionRollup struct {
	Regions     map[string]RegionCost
	GeneratedAt time.Time
}

// ServiceRollup breaks the grand monthly total down by resource kind,
// with each kind's share as a percentage. Percentages are zero when the
// grand total is zero.
type ServiceRollup struct {
	Costs        KindCosts
	TotalMonthly float64
	Percentages  KindCosts
	GeneratedAt  time.Time
}
