package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyDaily     = Frequency("daily")
	FrequencyWeekly    = Frequency("weekly")
	FrequencyBiweekly  = Frequency("biweekly")
	FrequencyMonthly   = Frequency("monthly")
	FrequencyQuarterly = Frequency("quarterly")
	FrequencyAnnually  = Frequency("annually")
)

// RecurringRule is a template materialized into expenses on every due date.
type RecurringRule struct {
	ID               string          `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	WalletID         string          `json:"walletId"`
	IsIncome         bool            `json:"isIncome"`
	Tags             []string        `json:"tags"`
	Notes            string          `json:"notes"`
	Frequency        Frequency       `json:"frequency"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          *time.Time      `json:"endDate,omitempty"`
	NextDate         time.Time       `json:"nextDate"`
	LastMaterialized *time.Time      `json:"lastMaterialized,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func (r RecurringRule) RecordID() string {
	return r.ID
}
