// Package savings records realized cost-saving events and reports on the
// accumulated ledger.
package savings

import (
	"context"

	"github.com/costlens/costlens/pkg/apperrors"
	"github.com/costlens/costlens/pkg/models/domain"
	"github.com/costlens/costlens/pkg/store/memory"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service is the write and read surface of the savings ledger.
type Service interface {
	// Record validates and appends a savings event. A zero saved amount is
	// accepted; only its absence is a validation failure.
	Record(ctx context.Context, input domain.SavingsEventInput) (domain.SavingsEvent, error)

	// List returns the ledger entries matching the filter, their count and
	// the sum of money saved across them.
	List(ctx context.Context, filter domain.SavingsFilter) (domain.SavingsReport, error)

	// Summary returns the unfiltered ledger totals with the naive monthly
	// and annual extrapolations.
	Summary(ctx context.Context) (domain.SavingsSummary, error)
}

type service struct {
	store *memory.Store
}

// NewService creates a savings service over the given store.
func NewService(store *memory.Store) Service {
	return &service{store: store}
}

func (s *service) Record(ctx context.Context, input domain.SavingsEventInput) (domain.SavingsEvent, error) {
	var missing []string
	if input.ResourceID == "" {
		missing = append(missing, "resource_id")
	}
	if input.Cloud == "" {
		missing = append(missing, "cloud")
	}
	if input.MoneySaved == nil {
		missing = append(missing, "money_saved")
	}
	if len(missing) > 0 {
		return domain.SavingsEvent{}, apperrors.Validation(missing...)
	}

	recorded := s.store.Savings.Append(domain.SavingsEvent{
		ID:            uuid.New().String(),
		ResourceID:    input.ResourceID,
		Cloud:         input.Cloud,
		MoneySaved:    *input.MoneySaved,
		Region:        input.Region,
		InstanceType:  input.InstanceType,
		PricingModel:  input.PricingModel,
		EffectiveDate: input.EffectiveDate,
	})

	zerolog.Ctx(ctx).Debug().
		Str("resource_id", recorded.ResourceID).
		Str("cloud", recorded.Cloud).
		Float64("money_saved", recorded.MoneySaved).
		Msg("savings event recorded")

	return recorded, nil
}

func (s *service) List(_ context.Context, filter domain.SavingsFilter) (domain.SavingsReport, error) {
	events := make([]domain.SavingsEvent, 0)
	var total float64

	for _, ev := range s.store.Savings.List() {
		if filter.Cloud != "" && ev.Cloud != filter.Cloud {
			continue
		}
		if filter.StartDate != nil && ev.EffectiveDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && ev.EffectiveDate.After(*filter.EndDate) {
			continue
		}
		events = append(events, ev)
		total += ev.MoneySaved
	}

	return domain.SavingsReport{
		Events:       events,
		Count:        len(events),
		TotalSavings: round2(total),
	}, nil
}

func (s *service) Summary(_ context.Context) (domain.SavingsSummary, error) {
	events := s.store.Savings.List()

	var total float64
	for _, ev := range events {
		total += ev.MoneySaved
	}

	return domain.SavingsSummary{
		TotalSavings:   round2(total),
		MonthlySavings: round2(total / 12),
		AnnualSavings:  round2(total * 12),
		ResourceCount:  len(events),
	}, nil
}
