// Package aggregation computes cost rollups over the current store
// contents. Every read recomputes from a fresh snapshot; the engine keeps
// no state of its own and never mutates the store.
package aggregation

import (
	"context"
	"math"
	"time"

	"github.com/costlens/costlens/pkg/models/domain"
	"github.com/costlens/costlens/pkg/store/memory"
)

const daysPerMonth = 30

// Engine is the read-side cost rollup surface.
type Engine interface {
	// TotalCost sums monthly cost across all five collections and derives
	// the daily and annual figures plus per-kind breakdown and counts.
	TotalCost(ctx context.Context) (domain.CostTotals, error)

	// CostByRegion buckets cost per normalized region with a per-kind
	// breakdown and a per-region total.
	CostByRegion(ctx context.Context) (domain.RegionRollup, error)

	// CostByService breaks the grand total down per resource kind with
	// zero-guarded percentage shares.
	CostByService(ctx context.Context) (domain.ServiceRollup, error)
}

type engine struct {
	store *memory.Store
	clock func() time.Time
}

// Option customizes engine construction.
type Option func(*engine)

// WithClock overrides the generation-timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(e *engine) { e.clock = clock }
}

// NewEngine creates an aggregation engine over the given store.
func NewEngine(store *memory.Store, opts ...Option) Engine {
	e := &engine{store: store, clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// snapshot is one consistent read of every collection. Each collection is
// copied under its own lock; aggregation math then runs lock-free.
type snapshot struct {
	instances []domain.ComputeInstance
	lbs       []domain.LoadBalancer
	asgs      []domain.AutoScalingGroup
	volumes   []domain.EBSVolume
	dbs       []domain.DBInstance
}

func (e *engine) snapshot() snapshot {
	return snapshot{
		instances: e.store.Instances.List(),
		lbs:       e.store.LoadBalancers.List(),
		asgs:      e.store.AutoScalingGroups.List(),
		volumes:   e.store.Volumes.List(),
		dbs:       e.store.DBInstances.List(),
	}
}

// monthlyCosts sums monthly cost per kind at full precision. Absent cost
// fields are zero-valued and contribute nothing.
func (s snapshot) monthlyCosts() domain.KindCosts {
	var costs domain.KindCosts
	for _, r := range s.instances {
		costs.Instances += r.MonthlyCost
	}
	for _, r := range s.lbs {
		costs.LoadBalancers += r.MonthlyCost
	}
	for _, r := range s.asgs {
		costs.AutoScalingGroups += r.MonthlyCost
	}
	for _, r := range s.volumes {
		costs.Volumes += r.MonthlyCost
	}
	for _, r := range s.dbs {
		costs.DBInstances += r.MonthlyCost
	}
	return costs
}

func (s snapshot) counts() domain.KindCounts {
	return domain.KindCounts{
		Instances:         len(s.instances),
		LoadBalancers:     len(s.lbs),
		AutoScalingGroups: len(s.asgs),
		Volumes:           len(s.volumes),
		DBInstances:       len(s.dbs),
	}
}

// regions returns the set of distinct normalized regions across all
// collections. Absent regions collapse into the "unknown" bucket, so they
// count as one region, consistent with the by-region view.
func (s snapshot) regions() map[string]struct{} {
	set := make(map[string]struct{})
	for _, r := range s.instances {
		set[normalizeRegion(r.Region)] = struct{}{}
	}
	for _, r := range s.lbs {
		set[normalizeRegion(r.Region)] = struct{}{}
	}
	for _, r := range s.asgs {
		set[normalizeRegion(r.Region)] = struct{}{}
	}
	for _, r := range s.volumes {
		set[normalizeRegion(r.Region)] = struct{}{}
	}
	for _, r := range s.dbs {
		set[normalizeRegion(r.Region)] = struct{}{}
	}
	return set
}

func (e *engine) TotalCost(_ context.Context) (domain.CostTotals, error) {
	snap := e.snapshot()

	costs := snap.monthlyCosts()
	grand := costs.Instances + costs.LoadBalancers + costs.AutoScalingGroups +
		costs.Volumes + costs.DBInstances

	return domain.CostTotals{
		TotalMonthly: round2(grand),
		TotalDaily:   round2(grand / daysPerMonth),
		TotalAnnual:  round2(grand * 12),
		RegionCount:  len(snap.regions()),
		Breakdown:    roundKindCosts(costs),
		Counts:       snap.counts(),
		GeneratedAt:  e.clock(),
	}, nil
}

func (e *engine) CostByRegion(_ context.Context) (domain.RegionRollup, error) {
	snap := e.snapshot()

	accum := make(map[string]*domain.KindCosts)
	bucket := func(region string) *domain.KindCosts {
		key := normalizeRegion(region)
		b, ok := accum[key]
		if !ok {
			b = &domain.KindCosts{}
			accum[key] = b
		}
		return b
	}

	for _, r := range snap.instances {
		bucket(r.Region).Instances += r.MonthlyCost
	}
	for _, r := range snap.lbs {
		bucket(r.Region).LoadBalancers += r.MonthlyCost
	}
	for _, r := range snap.asgs {
		bucket(r.Region).AutoScalingGroups += r.MonthlyCost
	}
	for _, r := range snap.volumes {
		bucket(r.Region).Volumes += r.MonthlyCost
	}
	for _, r := range snap.dbs {
		bucket(r.Region).DBInstances += r.MonthlyCost
	}

	regions := make(map[string]domain.RegionCost, len(accum))
	for key, costs := range accum {
		total := costs.Instances + costs.LoadBalancers + costs.AutoScalingGroups +
			costs.Volumes + costs.DBInstances
		regions[key] = domain.RegionCost{
			Costs: roundKindCosts(*costs),
			Total: round2(total),
		}
	}

	return domain.RegionRollup{
		Regions:     regions,
		GeneratedAt: e.clock(),
	}, nil
}

func (e *engine) CostByService(_ context.Context) (domain.ServiceRollup, error) {
	snap := e.snapshot()

	costs := snap.monthlyCosts()
	grand := costs.Instances + costs.LoadBalancers + costs.AutoScalingGroups +
		costs.Volumes + costs.DBInstances

	return domain.ServiceRollup{
		Costs:        roundKindCosts(costs),
		TotalMonthly: round2(grand),
		Percentages: domain.KindCosts{
			Instances:         percentage(costs.Instances, grand),
			LoadBalancers:     percentage(costs.LoadBalancers, grand),
			AutoScalingGroups: percentage(costs.AutoScalingGroups, grand),
			Volumes:           percentage(costs.Volumes, grand),
			DBInstances:       percentage(costs.DBInstances, grand),
		},
		GeneratedAt: e.clock(),
	}, nil
}

func normalizeRegion(region string) string {
	if region == "" {
		return domain.UnknownRegion
	}
	return region
}

// percentage is zero, never NaN, when the grand total is zero.
func percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return round2(part / total * 100)
}

// round2 applies the 2-decimal output rounding. Intermediate sums stay at
// full float precision; only reported figures are rounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundKindCosts(c domain.KindCosts) domain.KindCosts {
	return domain.KindCosts{
		Instances:         round2(c.Instances),
		LoadBalancers:     round2(c.LoadBalancers),
		AutoScalingGroups: round2(c.AutoScalingGroups),
		Volumes:           round2(c.Volumes),
		DBInstances:       round2(c.DBInstances),
	}
}
