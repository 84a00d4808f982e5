package api

import "time"

// KindCosts is a per-resource-kind monthly cost (or percentage) breakdown.
type KindCosts struct {
	Instances         float64 `json:"instances"`
	LoadBalancers     float64 `json:"load_balancers"`
	AutoScalingGroups float64 `json:"auto_scaling_groups"`
	Volumes           float64 `json:"volumes"`
	DBInstances       float64 `json:"db_instances"`
}

// KindCounts is a per-resource-kind record count.
type KindCounts struct {
	Instances         int `json:"instances"`
	LoadBalancers     int `json:"load_balancers"`
	AutoScalingGroups int `json:"auto_scaling_groups"`
	Volumes           int `json:"volumes"`
	DBInstances       int `json:"db_instances"`
}

// CostTotals is the grand rollup response.
type CostTotals struct {
	TotalMonthlyCost float64    `json:"total_monthly_cost"`
	TotalDailyCost   float64    `json:"total_daily_cost"`
	TotalAnnualCost  float64    `json:"total_annual_cost"`
	RegionCount      int        `json:"region_count"`
	CostBreakdown    KindCosts  `json:"cost_breakdown"`
	ResourceCounts   KindCounts `json:"resource_counts"`
	GeneratedAt      time.Time  `json:"generated_at"`
}

// RegionCost is one region's bucket in the by-region response.
type RegionCost struct {
	Instances         float64 `json:"instances"`
	LoadBalancers     float64 `json:"load_balancers"`
	AutoScalingGroups float64 `json:"auto_scaling_groups"`
	Volumes           float64 `json:"volumes"`
	DBInstances       float64 `json:"db_instances"`
	Total             float64 `json:"total"`
}

// RegionRollup is the by-region response.
type RegionRollup struct {
	Regions     map[string]RegionCost `json:"regions"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// ServiceRollup is the by-service response.
type ServiceRollup struct {
	Services         KindCosts `json:"services"`
	TotalMonthlyCost float64   `json:"total_monthly_cost"`
	Percentages      KindCosts `json:"percentages"`
	GeneratedAt      time.Time `json:"generated_at"`
}
