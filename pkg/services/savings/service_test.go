package savings

import (
	"context"
	"testing"
	"time"

	"github.com/costlens/costlens/pkg/apperrors"
	"github.com/costlens/costlens/pkg/models/domain"
	"github.com/costlens/costlens/pkg/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestRecordValidation(t *testing.T) {
	tests := []struct {
		name            string
		input           domain.SavingsEventInput
		expectedMissing []string
	}{
		{
			name:            "empty input",
			input:           domain.SavingsEventInput{},
			expectedMissing: []string{"resource_id", "cloud", "money_saved"},
		},
		{
			name:            "missing amount only",
			input:           domain.SavingsEventInput{ResourceID: "i-1", Cloud: "aws"},
			expectedMissing: []string{"money_saved"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			svc := NewService(store)

			_, err := svc.Record(context.Background(), tt.input)

			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.TypeValidation, appErr.Type)
			assert.Equal(t, tt.expectedMissing, appErr.Fields)
			assert.Zero(t, store.Savings.Len(), "failed record never appends")
		})
	}
}

func TestRecordAcceptsZeroSavedAmount(t *testing.T) {
	svc := NewService(memory.NewStore())

	ev, err := svc.Record(context.Background(), domain.SavingsEventInput{
		ResourceID: "i-1",
		Cloud:      "aws",
		MoneySaved: ptr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, ev.MoneySaved)
	assert.NotEmpty(t, ev.ID)
	assert.False(t, ev.RecordedAt.IsZero())
}

func TestRecordDefaultsEffectiveDate(t *testing.T) {
	ingested := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	store := memory.NewStore(memory.WithClock(func() time.Time { return ingested }))
	svc := NewService(store)

	ev, err := svc.Record(context.Background(), domain.SavingsEventInput{
		ResourceID: "i-1",
		Cloud:      "aws",
		MoneySaved: ptr(25),
	})
	require.NoError(t, err)
	assert.Equal(t, ingested, ev.EffectiveDate)
	assert.Equal(t, ingested, ev.RecordedAt)
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore())

	seed := []domain.SavingsEventInput{
		{ResourceID: "i-1", Cloud: "aws", MoneySaved: ptr(100), EffectiveDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ResourceID: "i-2", Cloud: "aws", MoneySaved: ptr(50), EffectiveDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{ResourceID: "vm-1", Cloud: "gcp", MoneySaved: ptr(30), EffectiveDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, input := range seed {
		_, err := svc.Record(ctx, input)
		require.NoError(t, err)
	}

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		filter        domain.SavingsFilter
		expectedIDs   []string
		expectedTotal float64
	}{
		{
			name:          "no filter returns everything",
			filter:        domain.SavingsFilter{},
			expectedIDs:   []string{"i-1", "i-2", "vm-1"},
			expectedTotal: 180,
		},
		{
			name:          "cloud filter",
			filter:        domain.SavingsFilter{Cloud: "aws"},
			expectedIDs:   []string{"i-1", "i-2"},
			expectedTotal: 150,
		},
		{
			name:          "inclusive date range",
			filter:        domain.SavingsFilter{StartDate: &start, EndDate: &end},
			expectedIDs:   []string{"i-2", "vm-1"},
			expectedTotal: 80,
		},
		{
			name:          "cloud and range combined",
			filter:        domain.SavingsFilter{Cloud: "gcp", StartDate: &start, EndDate: &end},
			expectedIDs:   []string{"vm-1"},
			expectedTotal: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)

			var ids []string
			for _, ev := range report.Events {
				ids = append(ids, ev.ResourceID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, len(tt.expectedIDs), report.Count)
			assert.Equal(t, tt.expectedTotal, report.TotalSavings)
		})
	}
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore())

	for _, amount := range []float64{100, 50} {
		_, err := svc.Record(ctx, domain.SavingsEventInput{
			ResourceID: "i-1",
			Cloud:      "aws",
			MoneySaved: ptr(amount),
		})
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.SavingsSummary{
		TotalSavings:   150,
		MonthlySavings: 12.5,
		AnnualSavings:  1800,
		ResourceCount:  2,
	}, summary)
}

func TestSummaryEmptyLedger(t *testing.T) {
	svc := NewService(memory.NewStore())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SavingsSummary{}, summary)
}
