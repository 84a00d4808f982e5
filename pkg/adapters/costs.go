package adapters

import (
	"github.com/costlens/costlens/pkg/models/api"
	"github.com/costlens/costlens/pkg/models/domain"
)

func MapKindCostsDomainToApi(c domain.KindCosts) api.KindCosts {
	return api.KindCosts{
		Instances:         c.Instances,
		LoadBalancers:     c.LoadBalancers,
		AutoScalingGroups: c.AutoScalingGroups,
		Volumes:           c.Volumes,
		DBInstances:       c.DBInstances,
	}
}

func MapKindCountsDomainToApi(c domain.KindCounts) api.KindCounts {
	return api.KindCounts{
		Instances:         c.Instances,
		LoadBalancers:     c.LoadBalancers,
		AutoScalingGroups: c.AutoScalingGroups,
		Volumes:           c.Volumes,
		DBInstances:       c.DBInstances,
	}
}

func MapCostTotalsDomainToApi(t domain.CostTotals) api.CostTotals {
	return api.CostTotals{
		TotalMonthlyCost: t.TotalMonthly,
		TotalDailyCost:   t.TotalDaily,
		TotalAnnualCost:  t.TotalAnnual,
		RegionCount:      t.RegionCount,
		CostBreakdown:    MapKindCostsDomainToApi(t.Breakdown),
		ResourceCounts:   MapKindCountsDomainToApi(t.Counts),
		GeneratedAt:      t.GeneratedAt,
	}
}

func MapRegionRollupDomainToApi(r domain.RegionRollup) api.RegionRollup {
	regions := make(map[string]api.RegionCost, len(r.Regions))
	for region, bucket := range r.Regions {
		regions[region] = api.RegionCost{
			Instances:         bucket.Costs.Instances,
			LoadBalancers:     bucket.Costs.LoadBalancers,
			AutoScalingGroups: bucket.Costs.AutoScalingGroups,
			Volumes:           bucket.Costs.Volumes,
			DBInstances:       bucket.Costs.DBInstances,
			Total:             bucket.Total,
		}
	}

	return api.RegionRollup{
		Regions:     regions,
		GeneratedAt: r.GeneratedAt,
	}
}

func MapServiceRollupDomainToApi(s domain.ServiceRollup) api.ServiceRollup {
	return api.ServiceRollup{
		Services:         MapKindCostsDomainToApi(s.Costs),
		TotalMonthlyCost: s.TotalMonthly,
		Percentages:      MapKindCostsDomainToApi(s.Percentages),
		GeneratedAt:      s.GeneratedAt,
	}
}
