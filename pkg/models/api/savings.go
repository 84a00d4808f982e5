package api

import "time"

// SavingsEventRequest is a candidate ledger entry. MoneySaved is a pointer
// so a legitimate zero amount is distinguishable from an absent one.
type SavingsEventRequest struct {
	ResourceID    string   `json:"resource_id"`
	Cloud         string   `json:"cloud"`
	MoneySaved    *float64 `json:"money_saved"`
	Region        string   `json:"region,omitempty"`
	InstanceType  string   `json:"instance_type,omitempty"`
	PricingModel  string   `json:"pricing_model,omitempty"`
	EffectiveDate string   `json:"effective_date,omitempty"` // YYYY-MM-DD
}

// SavingsEvent is a recorded ledger entry.
type SavingsEvent struct {
	ID            string    `json:"id"`
	ResourceID    string    `json:"resource_id"`
	Cloud         string    `json:"cloud"`
	MoneySaved    float64   `json:"money_saved"`
	Region        string    `json:"region,omitempty"`
	InstanceType  string    `json:"instance_type,omitempty"`
	PricingModel  string    `json:"pricing_model,omitempty"`
	EffectiveDate time.Time `json:"effective_date"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// SavingsReceipt acknowledges a recorded event.
type SavingsReceipt struct {
	ID         string `json:"id"`
	ResourceID string `json:"resource_id"`
	Cloud      string `json:"cloud"`
}

// SavingsList is a filtered ledger read.
type SavingsList struct {
	Items        []SavingsEvent `json:"items"`
	Count        int            `json:"count"`
	TotalSavings float64        `json:"total_savings"`
}

// SavingsSummary carries the unfiltered ledger totals. Field names follow
// the dashboard contract.
type SavingsSummary struct {
	TotalSavings   float64 `json:"totalSavings"`
	MonthlySavings float64 `json:"monthlySavings"`
	AnnualSavings  float64 `json:"annualSavings"`
	ResourceCount  int     `json:"resourceCount"`
}
