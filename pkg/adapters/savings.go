package adapters

import (
	"fmt"
	"time"

	"github.com/costlens/costlens/pkg/models/api"
	"github.com/costlens/costlens/pkg/models/domain"
)

const effectiveDateLayout = "2006-01-02"

// MapSavingsRequestApiToDomain translates a candidate ledger entry. An
// unparsable effective date is rejected here; an absent one stays zero so
// the ledger can default it to ingestion time.
func MapSavingsRequestApiToDomain(req api.SavingsEventRequest) (domain.SavingsEventInput, error) {
	input := domain.SavingsEventInput{
		ResourceID:   req.ResourceID,
		Cloud:        req.Cloud,
		MoneySaved:   req.MoneySaved,
		Region:       req.Region,
		InstanceType: req.InstanceType,
		PricingModel: req.PricingModel,
	}

	if req.EffectiveDate != "" {
		date, err := time.Parse(effectiveDateLayout, req.EffectiveDate)
		if err != nil {
			return domain.SavingsEventInput{}, fmt.Errorf("invalid effective_date %q: expected format %s",
				req.EffectiveDate, effectiveDateLayout)
		}
		input.EffectiveDate = date
	}

	return input, nil
}

func MapSavingsEventDomainToApi(ev domain.SavingsEvent) api.SavingsEvent {
	return api.SavingsEvent{
		ID:            ev.ID,
		ResourceID:    ev.ResourceID,
		Cloud:         ev.Cloud,
		MoneySaved:    ev.MoneySaved,
		Region:        ev.Region,
		InstanceType:  ev.InstanceType,
		PricingModel:  ev.PricingModel,
		EffectiveDate: ev.EffectiveDate,
		RecordedAt:    ev.RecordedAt,
	}
}

func MapSavingsReportDomainToApi(report domain.SavingsReport) api.SavingsList {
	items := make([]api.SavingsEvent, 0, len(report.Events))
	for _, ev := range report.Events {
		items = append(items, MapSavingsEventDomainToApi(ev))
	}

	return api.SavingsList{
		Items:        items,
		Count:        report.Count,
		TotalSavings: report.TotalSavings,
	}
}

func MapSavingsSummaryDomainToApi(summary domain.SavingsSummary) api.SavingsSummary {
	return api.SavingsSummary{
		TotalSavings:   summary.TotalSavings,
		MonthlySavings: summary.MonthlySavings,
		AnnualSavings:  summary.AnnualSavings,
		ResourceCount:  summary.ResourceCount,
	}
}
