package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, registerOn(v))
	return v
}

func TestWithdrawalRequestValidation(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		req     CreateWithdrawalRequest
		wantErr bool
	}{
		{"valid", CreateWithdrawalRequest{Amount: decimal.RequireFromString("150.25"), BankName: "Chase", AccountNumber: "1234"}, false},
		{"zero amount", CreateWithdrawalRequest{Amount: decimal.Zero, BankName: "Chase", AccountNumber: "1234"}, true},
		{"negative amount", CreateWithdrawalRequest{Amount: decimal.NewFromInt(-5), BankName: "Chase", AccountNumber: "1234"}, true},
		{"fractional cents", CreateWithdrawalRequest{Amount: decimal.RequireFromString("1.005"), BankName: "Chase", AccountNumber: "1234"}, true},
		{"blank bank", CreateWithdrawalRequest{Amount: decimal.NewFromInt(5), BankName: "   ", AccountNumber: "1234"}, true},
		{"full account number", CreateWithdrawalRequest{Amount: decimal.NewFromInt(5), BankName: "Chase", AccountNumber: "123456789"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordTransactionRequestAllowsNegativeAmounts(t *testing.T) {
	v := newValidator(t)
	req := RecordTransactionRequest{Description: "Buy VOO", Type: "Investment", Amount: decimal.NewFromInt(-1200)}
	assert.NoError(t, v.Struct(req))

	req.Type = "Dividend"
	assert.Error(t, v.Struct(req))
}

func TestUpdateInvestmentRequestOptionalDecimals(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Struct(UpdateInvestmentRequest{}))

	neg := decimal.NewFromInt(-1)
	assert.Error(t, v.Struct(UpdateInvestmentRequest{CurrentValue: &neg}))
}

func TestCreateEventRequestFormats(t *testing.T) {
	v := newValidator(t)
	req := CreateEventRequest{
		Title: "Social", Date: "2024-12-15", Time: "19:00",
		Location: "Downtown", Description: "Party", Format: "In-Person",
	}
	assert.NoError(t, v.Struct(req))

	req.Date = "15/12/2024"
	assert.Error(t, v.Struct(req))
}
