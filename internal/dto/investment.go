package dto

import "github.com/shopspring/decimal"

// CreateInvestmentRequest adds a holding to the portfolio.
type CreateInvestmentRequest struct {
	Asset          string          `json:"asset" binding:"required,notblank"`
	Ticker         string          `json:"ticker" binding:"required,notblank,max=12"`
	AmountInvested decimal.Decimal `json:"amountInvested" binding:"gte=0"`
	CurrentValue   decimal.Decimal `json:"currentValue" binding:"gte=0"`
	Shares         decimal.Decimal `json:"shares" binding:"gte=0"`
}

// UpdateInvestmentRequest edits a holding. Omitted fields are left unchanged.
type UpdateInvestmentRequest struct {
	Asset          *string          `json:"asset" binding:"omitempty,notblank"`
	Ticker         *string          `json:"ticker" binding:"omitempty,notblank,max=12"`
	AmountInvested *decimal.Decimal `json:"amountInvested" binding:"omitempty,gte=0"`
	CurrentValue   *decimal.Decimal `json:"currentValue" binding:"omitempty,gte=0"`
	Shares         *decimal.Decimal `json:"shares" binding:"omitempty,gte=0"`
}
