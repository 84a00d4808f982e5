package aggregation

import (
	"context"
	"testing"
	"time"

	"github.com/costlens/costlens/pkg/models/domain"
	"github.com/costlens/costlens/pkg/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generated = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

func newEngine(store *memory.Store) Engine {
	return NewEngine(store, WithClock(func() time.Time { return generated }))
}

func TestTotalCostEmptyStore(t *testing.T) {
	engine := newEngine(memory.NewStore())

	totals, err := engine.TotalCost(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.CostTotals{GeneratedAt: generated}, totals)
}

func TestTotalCostAcrossCollections(t *testing.T) {
	store := memory.NewStore()
	store.LoadBalancers.Upsert(domain.LoadBalancer{
		Name: "web", ARN: "arn:lb/web", Region: "us-east-1", MonthlyCost: 90,
	})
	store.AutoScalingGroups.Upsert(domain.AutoScalingGroup{
		Name: "workers", ARN: "arn:asg/workers", Region: "us-east-1", MonthlyCost: 60,
	})
	engine := newEngine(store)

	totals, err := engine.TotalCost(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 150.0, totals.TotalMonthly)
	assert.Equal(t, 5.0, totals.TotalDaily)
	assert.Equal(t, 1800.0, totals.TotalAnnual)
	assert.Equal(t, 1, totals.RegionCount)
	assert.Equal(t, domain.KindCosts{LoadBalancers: 90, AutoScalingGroups: 60}, totals.Breakdown)
	assert.Equal(t, domain.KindCounts{LoadBalancers: 1, AutoScalingGroups: 1}, totals.Counts)
	assert.Equal(t, generated, totals.GeneratedAt)
}

func TestTotalCostZeroDefaultSummation(t *testing.T) {
	store := memory.NewStore()
	store.Instances.Upsert(domain.ComputeInstance{ID: "i-1", Region: "us-east-1"})
	store.Volumes.Upsert(domain.EBSVolume{ID: "vol-1", Region: "us-east-1", MonthlyCost: 8})
	engine := newEngine(store)

	totals, err := engine.TotalCost(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8.0, totals.TotalMonthly, "costless records contribute exactly zero")
	assert.Equal(t, domain.KindCounts{Instances: 1, Volumes: 1}, totals.Counts)
}

func TestRegionCountCollapsesAbsentRegions(t *testing.T) {
	store := memory.NewStore()
	// Region is required on the upsert path; records without one can only
	// exist pre-validation, but the engine still has to bucket them.
	store.Instances.Upsert(domain.ComputeInstance{ID: "i-1"})
	store.Volumes.Upsert(domain.EBSVolume{ID: "vol-1"})
	store.LoadBalancers.Upsert(domain.LoadBalancer{Name: "web", ARN: "arn:lb/web", Region: "us-east-1"})
	engine := newEngine(store)

	totals, err := engine.TotalCost(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, totals.RegionCount, `absent regions count as the single "unknown" bucket`)

	byRegion, err := engine.CostByRegion(context.Background())
	require.NoError(t, err)
	assert.Len(t, byRegion.Regions, totals.RegionCount, "both views agree on the region set")
}

func TestCostByRegion(t *testing.T) {
	store := memory.NewStore()
	store.Instances.Upsert(domain.ComputeInstance{ID: "i-1", Region: "us-east-1", MonthlyCost: 30})
	store.LoadBalancers.Upsert(domain.LoadBalancer{Name: "web", ARN: "arn:lb/web", Region: "us-east-1", MonthlyCost: 20})
	store.DBInstances.Upsert(domain.DBInstance{ID: "db-1", ARN: "arn:db-1", Region: "eu-west-1", MonthlyCost: 100})
	store.Volumes.Upsert(domain.EBSVolume{ID: "vol-1", MonthlyCost: 5})
	engine := newEngine(store)

	rollup, err := engine.CostByRegion(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]domain.RegionCost{
		"us-east-1": {
			Costs: domain.KindCosts{Instances: 30, LoadBalancers: 20},
			Total: 50,
		},
		"eu-west-1": {
			Costs: domain.KindCosts{DBInstances: 100},
			Total: 100,
		},
		"unknown": {
			Costs: domain.KindCosts{Volumes: 5},
			Total: 5,
		},
	}, rollup.Regions)
	assert.Equal(t, generated, rollup.GeneratedAt)
}

func TestCostByRegionLazyBuckets(t *testing.T) {
	engine := newEngine(memory.NewStore())

	rollup, err := engine.CostByRegion(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rollup.Regions, "no contributions means no buckets")
}

func TestCostByServicePercentages(t *testing.T) {
	store := memory.NewStore()
	store.Instances.Upsert(domain.ComputeInstance{ID: "i-1", Region: "us-east-1", MonthlyCost: 75})
	store.Volumes.Upsert(domain.EBSVolume{ID: "vol-1", Region: "us-east-1", MonthlyCost: 25})
	engine := newEngine(store)

	rollup, err := engine.CostByService(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 100.0, rollup.TotalMonthly)
	assert.Equal(t, domain.KindCosts{Instances: 75, Volumes: 25}, rollup.Costs)
	assert.Equal(t, domain.KindCosts{Instances: 75, Volumes: 25}, rollup.Percentages)
}

func TestCostByServiceZeroGuard(t *testing.T) {
	engine := newEngine(memory.NewStore())

	rollup, err := engine.CostByService(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.0, rollup.TotalMonthly)
	assert.Equal(t, domain.KindCosts{}, rollup.Percentages, "empty store yields zero percentages, not NaN")
}

func TestRoundingAppliedOnceAtOutput(t *testing.T) {
	store := memory.NewStore()
	store.Volumes.Upsert(domain.EBSVolume{ID: "vol-1", Region: "us-east-1", MonthlyCost: 12.345})
	store.Volumes.Upsert(domain.EBSVolume{ID: "vol-2", Region: "us-east-1", MonthlyCost: 0.005})
	engine := newEngine(store)

	totals, err := engine.TotalCost(context.Background())
	require.NoError(t, err)

	// 12.345 + 0.005 = 12.35 exactly; rounding the addends first would
	// report 12.36.
	assert.Equal(t, 12.35, totals.Breakdown.Volumes)
	assert.Equal(t, 12.35, totals.TotalMonthly)
}
