// Package inventory validates and applies scanner updates to the resource
// collections, one upsert path per resource kind.
package inventory

import (
	"context"

	"github.com/costlens/costlens/pkg/apperrors"
	"github.com/costlens/costlens/pkg/models/domain"
	"github.com/costlens/costlens/pkg/store/memory"
	"github.com/rs/zerolog"
)

// Service exposes the write and read paths of the five resource
// collections. Each upsert validates the kind's natural key plus region,
// then merges the record into exactly one collection; a validation failure
// never mutates anything.
type Service interface {
	UpsertInstance(ctx context.Context, rec domain.ComputeInstance) (domain.UpsertReceipt, error)
	ListInstances(ctx context.Context) ([]domain.ComputeInstance, error)
	GetInstance(ctx context.Context, id string) (domain.ComputeInstance, error)

	UpsertLoadBalancer(ctx context.Context, rec domain.LoadBalancer) (domain.UpsertReceipt, error)
	ListLoadBalancers(ctx context.Context) ([]domain.LoadBalancer, error)
	GetLoadBalancer(ctx context.Context, arn string) (domain.LoadBalancer, error)

	UpsertAutoScalingGroup(ctx context.Context, rec domain.AutoScalingGroup) (domain.UpsertReceipt, error)
	ListAutoScalingGroups(ctx context.Context) ([]domain.AutoScalingGroup, error)
	GetAutoScalingGroup(ctx context.Context, arn string) (domain.AutoScalingGroup, error)

	UpsertVolume(ctx context.Context, rec domain.EBSVolume) (domain.UpsertReceipt, error)
	ListVolumes(ctx context.Context) ([]domain.EBSVolume, error)
	GetVolume(ctx context.Context, id string) (domain.EBSVolume, error)

	UpsertDBInstance(ctx context.Context, rec domain.DBInstance) (domain.UpsertReceipt, error)
	ListDBInstances(ctx context.Context) ([]domain.DBInstance, error)
	GetDBInstance(ctx context.Context, id string) (domain.DBInstance, error)
}

type service struct {
	store *memory.Store
}

// NewService creates an inventory service over the given store.
func NewService(store *memory.Store) Service {
	return &service{store: store}
}

func (s *service) UpsertInstance(ctx context.Context, rec domain.ComputeInstance) (domain.UpsertReceipt, error) {
	var missing []string
	if rec.ID == "" {
		missing = append(missing, "id")
	}
	if rec.Region == "" {
		missing = append(missing, "region")
	}
	if len(missing) > 0 {
		return domain.UpsertReceipt{}, apperrors.Validation(missing...)
	}

	replaced := s.store.Instances.Upsert(rec)
	logUpsert(ctx, "instance", rec.ID, rec.Region, replaced)
	return domain.UpsertReceipt{Key: rec.ID, Region: rec.Region}, nil
}

func (s *service) ListInstances(_ context.Context) ([]domain.ComputeInstance, error) {
	return s.store.Instances.List(), nil
}

func (s *service) GetInstance(_ context.Context, id string) (domain.ComputeInstance, error) {
	rec, ok := s.store.Instances.Get(id)
	if !ok {
		return domain.ComputeInstance{}, apperrors.NotFound("instance", id)
	}
	return rec, nil
}

func (s *service) UpsertLoadBalancer(ctx context.Context, rec domain.LoadBalancer) (domain.UpsertReceipt, error) {
	var missing []string
	if rec.Name == "" {
		missing = append(missing, "name")
	}
	if rec.ARN == "" {
		missing = append(missing, "arn")
	}
	if rec.Region == "" {
		missing = append(missing, "region")
	}
	if len(missing) > 0 {
		return domain.UpsertReceipt{}, apperrors.Validation(missing...)
	}

	replaced := s.store.LoadBalancers.Upsert(rec)
	logUpsert(ctx, "load balancer", rec.ARN, rec.Region, replaced)
	return domain.UpsertReceipt{Key: rec.ARN, Region: rec.Region}, nil
}

func (s *service) ListLoadBalancers(_ context.Context) ([]domain.LoadBalancer, error) {
	return s.store.LoadBalancers.List(), nil
}

func (s *service) GetLoadBalancer(_ context.Context, arn string) (domain.LoadBalancer, error) {
	rec, ok := s.store.LoadBalancers.Get(arn)
	if !ok {
		return domain.LoadBalancer{}, apperrors.NotFound("load balancer", arn)
	}
	return rec, nil
}

func (s *service) UpsertAutoScalingGroup(ctx context.Context, rec domain.AutoScalingGroup) (domain.UpsertReceipt, error) {
	var missing []string
	if rec.Name == "" {
		missing = append(missing, "name")
	}
	if rec.ARN == "" {
		missing = append(missing, "arn")
	}
	if rec.Region == "" {
		missing = append(missing, "region")
	}
	if len(missing) > 0 {
		return domain.UpsertReceipt{}, apperrors.Validation(missing...)
	}

	replaced := s.store.AutoScalingGroups.Upsert(rec)
	logUpsert(ctx, "auto scaling group", rec.ARN, rec.Region, replaced)
	return domain.UpsertReceipt{Key: rec.ARN, Region: rec.Region}, nil
}

func (s *service) ListAutoScalingGroups(_ context.Context) ([]domain.AutoScalingGroup, error) {
	return s.store.AutoScalingGroups.List(), nil
}

func (s *service) GetAutoScalingGroup(_ context.Context, arn string) (domain.AutoScalingGroup, error) {
	rec, ok := s.store.AutoScalingGroups.Get(arn)
	if !ok {
		return domain.AutoScalingGroup{}, apperrors.NotFound("auto scaling group", arn)
	}
	return rec, nil
}

func (s *service) UpsertVolume(ctx context.Context, rec domain.EBSVolume) (domain.UpsertReceipt, error) {
	var missing []string
	if rec.ID == "" {
		missing = append(missing, "id")
	}
	if rec.Region == "" {
		missing = append(missing, "region")
	}
	if len(missing) > 0 {
		return domain.UpsertReceipt{}, apperrors.Validation(missing...)
	}

	replaced := s.store.Volumes.Upsert(rec)
	logUpsert(ctx, "volume", rec.ID, rec.Region, replaced)
	return domain.UpsertReceipt{Key: rec.ID, Region: rec.Region}, nil
}

func (s *service) ListVolumes(_ context.Context) ([]domain.EBSVolume, error) {
	return s.store.Volumes.List(), nil
}

func (s *service) GetVolume(_ context.Context, id string) (domain.EBSVolume, error) {
	rec, ok := s.store.Volumes.Get(id)
	if !ok {
		return domain.EBSVolume{}, apperrors.NotFound("volume", id)
	}
	return rec, nil
}

func (s *service) UpsertDBInstance(ctx context.Context, rec domain.DBInstance) (domain.UpsertReceipt, error) {
	var missing []string
	if rec.ID == "" {
		missing = append(missing, "id")
	}
	if rec.ARN == "" {
		missing = append(missing, "arn")
	}
	if rec.Region == "" {
		missing = append(missing, "region")
	}
	if len(missing) > 0 {
		return domain.UpsertReceipt{}, apperrors.Validation(missing...)
	}

	replaced := s.store.DBInstances.Upsert(rec)
	logUpsert(ctx, "db instance", rec.ID, rec.Region, replaced)
	return domain.UpsertReceipt{Key: rec.ID, Region: rec.Region}, nil
}

func (s *service) ListDBInstances(_ context.Context) ([]domain.DBInstance, error) {
	return s.store.DBInstances.List(), nil
}

func (s *service) GetDBInstance(_ context.Context, id string) (domain.DBInstance, error) {
	rec, ok := s.store.DBInstances.Get(id)
	if !ok {
		return domain.DBInstance{}, apperrors.NotFound("db instance", id)
	}
	return rec, nil
}

func logUpsert(ctx context.Context, kind, key, region string, replaced bool) {
	zerolog.Ctx(ctx).Debug().
		Str("kind", kind).
		Str("key", key).
		Str("region", region).
		Bool("replaced", replaced).
		Msg("resource upserted")
}
