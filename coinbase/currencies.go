package coinbase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is one known currency. Codes conform to ISO 4217 where possible;
// assets without an ISO representation use a custom code. Not every listed
// currency is currently tradable.
type Currency struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	MinSize       decimal.Decimal `json:"min_size"`
	Status        string          `json:"status"`
	Message       string          `json:"message"`
	MaxPrecision  decimal.Decimal `json:"max_precision"`
	ConvertibleTo []string        `json:"convertible_to"`
	Details       CurrencyDetails `json:"details"`
}

type CurrencyDetails struct {
	Type                  string          `json:"type"`
	Symbol                string          `json:"symbol"`
	NetworkConfirmations  int             `json:"network_confirmations"`
	SortOrder             int             `json:"sort_order"`
	CryptoAddressLink     string          `json:"crypto_address_link"`
	CryptoTransactionLink string          `json:"crypto_transaction_link"`
	PushPaymentMethods    []string        `json:"push_payment_methods"`
	GroupTypes            []string        `json:"group_types"`
	DisplayName           string          `json:"display_name"`
	ProcessingTimeSeconds float64         `json:"processing_time_seconds"`
	MinWithdrawalAmount   decimal.Decimal `json:"min_withdrawal_amount"`
	MaxWithdrawalAmount   decimal.Decimal `json:"max_withdrawal_amount"`
}

type CurrencyService struct {
	c *Client
}

// Get returns a single currency by code.
func (s *CurrencyService) Get(ctx context.Context, currencyID string) (Currency, error) {
	var currency Currency
	err := s.c.get(ctx, fmt.Sprintf("/currencies/%s", currencyID), nil, &currency)
	return currency, err
}

// List returns all known currencies.
func (s *CurrencyService) List(ctx context.Context) ([]Currency, error) {
	var currencies []Currency
	err := s.c.get(ctx, "/currencies", nil, &currencies)
	return currencies, err
}
