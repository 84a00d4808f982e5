// Package memory holds the process-lifetime resource state: five ordered
// collections of cloud resources plus the append-only savings ledger.
// State is volatile; a process restart starts empty.
package memory

import (
	"time"

	"github.com/costlens/costlens/pkg/models/domain"
)

// Store is the shared resource store. It is constructed explicitly and
// passed to services rather than held as package state, so every test can
// run against a fresh instance.
type Store struct {
	Instances         *Collection[domain.ComputeInstance]
	LoadBalancers     *Collection[domain.LoadBalancer]
	AutoScalingGroups *Collection[domain.AutoScalingGroup]
	Volumes           *Collection[domain.EBSVolume]
	DBInstances       *Collection[domain.DBInstance]
	Savings           *Ledger
}

// Option customizes store construction.
type Option func(*settings)

type settings struct {
	clock func() time.Time
}

// WithClock overrides the ingestion-timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(s *settings) { s.clock = clock }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := settings{clock: time.Now}
	for _, opt := range opts {
		opt(&s)
	}

	return &Store{
		Instances: newCollection(s.clock,
			func(r domain.ComputeInstance) string { return r.ID },
			func(r *domain.ComputeInstance, t time.Time) { r.Timestamp = t }),
		LoadBalancers: newCollection(s.clock,
			func(r domain.LoadBalancer) string { return r.ARN },
			func(r *domain.LoadBalancer, t time.Time) { r.Timestamp = t }),
		AutoScalingGroups: newCollection(s.clock,
			func(r domain.AutoScalingGroup) string { return r.ARN },
			func(r *domain.AutoScalingGroup, t time.Time) { r.Timestamp = t }),
		Volumes: newCollection(s.clock,
			func(r domain.EBSVolume) string { return r.ID },
			func(r *domain.EBSVolume, t time.Time) { r.Timestamp = t }),
		DBInstances: newCollection(s.clock,
			func(r domain.DBInstance) string { return r.ID },
			func(r *domain.DBInstance, t time.Time) { r.Timestamp = t }),
		Savings: newLedger(s.clock),
	}
}
