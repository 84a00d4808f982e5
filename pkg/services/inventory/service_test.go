package inventory

import (
	"context"
	"testing"

	"github.com/costlens/costlens/pkg/apperrors"
	"github.com/costlens/costlens/pkg/models/domain"
	"github.com/costlens/costlens/pkg/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		upsert          func(Service) error
		expectedMissing []string
	}{
		{
			name: "instance without id and region",
			upsert: func(svc Service) error {
				_, err := svc.UpsertInstance(ctx, domain.ComputeInstance{})
				return err
			},
			expectedMissing: []string{"id", "region"},
		},
		{
			name: "load balancer without arn",
			upsert: func(svc Service) error {
				_, err := svc.UpsertLoadBalancer(ctx, domain.LoadBalancer{Name: "web", Region: "us-east-1"})
				return err
			},
			expectedMissing: []string{"arn"},
		},
		{
			name: "auto scaling group without name and region",
			upsert: func(svc Service) error {
				_, err := svc.UpsertAutoScalingGroup(ctx, domain.AutoScalingGroup{ARN: "arn:asg/web"})
				return err
			},
			expectedMissing: []string{"name", "region"},
		},
		{
			name: "volume without region",
			upsert: func(svc Service) error {
				_, err := svc.UpsertVolume(ctx, domain.EBSVolume{ID: "vol-1"})
				return err
			},
			expectedMissing: []string{"region"},
		},
		{
			name: "db instance without arn and region",
			upsert: func(svc Service) error {
				_, err := svc.UpsertDBInstance(ctx, domain.DBInstance{ID: "db-1"})
				return err
			},
			expectedMissing: []string{"arn", "region"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			svc := NewService(store)

			err := tt.upsert(svc)

			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.TypeValidation, appErr.Type)
			assert.Equal(t, tt.expectedMissing, appErr.Fields)

			assert.Zero(t, store.Instances.Len())
			assert.Zero(t, store.LoadBalancers.Len())
			assert.Zero(t, store.AutoScalingGroups.Len())
			assert.Zero(t, store.Volumes.Len())
			assert.Zero(t, store.DBInstances.Len())
		})
	}
}

func TestUpsertReceiptEchoesKeyAndRegion(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore())

	receipt, err := svc.UpsertLoadBalancer(ctx, domain.LoadBalancer{
		Name:        "web",
		ARN:         "arn:lb/web",
		Region:      "us-east-1",
		MonthlyCost: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertReceipt{Key: "arn:lb/web", Region: "us-east-1"}, receipt)
}

func TestUpsertMutatesOnlyTargetCollection(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store)

	_, err := svc.UpsertDBInstance(ctx, domain.DBInstance{ID: "db-1", ARN: "arn:db-1", Region: "us-east-1"})
	require.NoError(t, err)

	assert.Equal(t, 1, store.DBInstances.Len())
	assert.Zero(t, store.Instances.Len())
	assert.Zero(t, store.LoadBalancers.Len())
	assert.Zero(t, store.AutoScalingGroups.Len())
	assert.Zero(t, store.Volumes.Len())
}

func TestRepeatedUpsertKeepsLatestValues(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore())

	asg := domain.AutoScalingGroup{
		Name:            "workers",
		ARN:             "arn:asg/workers",
		Region:          "us-east-1",
		DesiredCapacity: 2,
	}
	_, err := svc.UpsertAutoScalingGroup(ctx, asg)
	require.NoError(t, err)

	asg.DesiredCapacity = 8
	_, err = svc.UpsertAutoScalingGroup(ctx, asg)
	require.NoError(t, err)

	groups, err := svc.ListAutoScalingGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 8, groups[0].DesiredCapacity)
}

func TestGetByKey(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore())

	_, err := svc.UpsertVolume(ctx, domain.EBSVolume{ID: "vol-1", Region: "eu-west-1", SizeGB: 100})
	require.NoError(t, err)

	vol, err := svc.GetVolume(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, 100, vol.SizeGB)

	_, err = svc.GetVolume(ctx, "vol-2")
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.TypeNotFound, appErr.Type)
	assert.Equal(t, "vol-2", appErr.Key)
}
