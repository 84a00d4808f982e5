package domain

import "time"

// SavingsEventInput is a candidate ledger entry before it is accepted.
// MoneySaved is a pointer because zero is a legitimate amount: the ledger
// checks its presence, not its truthiness.
type SavingsEventInput struct {
	ResourceID    string
	Cloud         string
	MoneySaved    *float64
	Region        string
	InstanceType  string
	PricingModel  string
	EffectiveDate time.Time
}

// SavingsEvent is an accepted, immutable ledger entry. EffectiveDate is the
// scanner-reported date (or ingestion time when omitted); RecordedAt is
// always the ingestion time stamped by the ledger.
type SavingsEvent struct {
	ID            string
	ResourceID    string
	Cloud         string
	MoneySaved    float64
	Region        string
	InstanceType  string
	PricingModel  string
	EffectiveDate time.Time
	RecordedAt    time.Time
}

// SavingsFilter narrows a ledger read. Zero values mean "no constraint";
// the date range is inclusive on both ends and compared against each
// event's effective date.
type SavingsFilter struct {
	Cloud     string
	StartDate *time.Time
	EndDate   *time.Time
}

// SavingsReport is a filtered view of the ledger.
type SavingsReport struct {
	Events       []SavingsEvent
	Count        int
	TotalSavings float64
}

// SavingsSummary holds the unfiltered ledger totals. Monthly and annual
// figures are rough extrapolations (total/12 and total*12), not
// time-weighted projections.
type SavingsSummary struct {
	TotalSavings   float64
	MonthlySavings float64
	AnnualSavings  float64
	ResourceCount  int
}
