package coinbase

import (
	"context"

	"github.com/shopspring/decimal"
)

// Deposit is the receipt for a funding transfer into the exchange.
type Deposit struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	PayoutAt Time            `json:"payout_at"`
	Fee      decimal.Decimal `json:"fee"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type DepositService struct {
	c *Client
}

// FromCoinbaseAccount moves funds from a www.coinbase.com wallet into the
// given profile. Transfers between Coinbase and the exchange are instant and
// free, within daily limits.
//
// Permissions: transfer.
func (s *DepositService) FromCoinbaseAccount(ctx context.Context, amount decimal.Decimal, accountID, currency, profileID string) (Deposit, error) {
	b := body{
		"amount":              amount.String(),
		"coinbase_account_id": accountID,
		"currency":            currency,
	}
	b.setString("profile_id", profileID)

	var deposit Deposit
	err := s.c.post(ctx, "/deposits/coinbase-account", b, &deposit)
	return deposit, err
}

// FromPaymentMethod deposits from a linked external payment method into the
// given profile.
//
// Permissions: transfer.
func (s *DepositService) FromPaymentMethod(ctx context.Context, amount decimal.Decimal, methodID, currency, profileID string) (Deposit, error) {
	b := body{
		"amount":            amount.String(),
		"payment_method_id": methodID,
		"currency":          currency,
	}
	b.setString("profile_id", profileID)

	var deposit Deposit
	err := s.c.post(ctx, "/deposits/payment-method", b, &deposit)
	return deposit, err
}
