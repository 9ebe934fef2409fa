package domain

import "github.com/shopspring/decimal"

// Investment is one holding in the club portfolio.
type Investment struct {
	ID             string          `json:"id"`
	Asset          string          `json:"asset"`
	Ticker         string          `json:"ticker"`
	AmountInvested decimal.Decimal `json:"amountInvested"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	Shares         decimal.Decimal `json:"shares"`
	AuditFields
}

// UnrealizedGain is the holding's gain (positive) or loss (negative).
func (i Investment) UnrealizedGain() decimal.Decimal {
	return i.CurrentValue.Sub(i.AmountInvested)
}
