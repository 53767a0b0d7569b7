package coinbase

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"
)

// Withdrawal is the receipt for a funding transfer out of the exchange.
type Withdrawal struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	PayoutAt Time            `json:"payout_at"`
	Fee      decimal.Decimal `json:"fee"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CryptoWithdrawalReq sends funds to an external crypto address.
type CryptoWithdrawalReq struct {
	Amount        decimal.Decimal
	Currency      string
	CryptoAddress string
	ProfileID     string
	TwoFactorCode string
	Nonce         int64
	Fee           decimal.Decimal
	// DestinationTag for chains that require one; when empty the request
	// asserts no_destination_tag instead.
	DestinationTag string
}

type WithdrawalService struct {
	c *Client
}

// ToCoinbaseAccount moves funds from the given profile to a www.coinbase.com
// wallet.
//
// Permissions: transfer.
func (s *WithdrawalService) ToCoinbaseAccount(ctx context.Context, amount decimal.Decimal, accountID, currency, profileID string) (Withdrawal, error) {
	b := body{
		"amount":              amount.String(),
		"coinbase_account_id": accountID,
		"currency":            currency,
	}
	b.setString("profile_id", profileID)

	var withdrawal Withdrawal
	err := s.c.post(ctx, "/withdrawals/coinbase-account", b, &withdrawal)
	return withdrawal, err
}

// ToCryptoAddress withdraws to an external crypto address.
//
// Permissions: transfer.
func (s *WithdrawalService) ToCryptoAddress(ctx context.Context, req CryptoWithdrawalReq) (Withdrawal, error) {
	b := body{
		"amount":         req.Amount.String(),
		"currency":       req.Currency,
		"crypto_address": req.CryptoAddress,
	}
	b.setString("profile_id", req.ProfileID)
	b.setString("two_factor_code", req.TwoFactorCode)
	b.setDecimal("fee", req.Fee)
	if req.Nonce != 0 {
		b["nonce"] = req.Nonce
	}
	if req.DestinationTag != "" {
		b["destination_tag"] = req.DestinationTag
	} else {
		b["no_destination_tag"] = true
	}

	var withdrawal Withdrawal
	err := s.c.post(ctx, "/withdrawals/crypto", b, &withdrawal)
	return withdrawal, err
}

// ToPaymentMethod withdraws to a linked external payment method.
//
// Permissions: transfer.
func (s *WithdrawalService) ToPaymentMethod(ctx context.Context, amount decimal.Decimal, methodID, currency, profileID string) (Withdrawal, error) {
	b := body{
		"amount":            amount.String(),
		"payment_method_id": methodID,
		"currency":          currency,
	}
	b.setString("profile_id", profileID)

	var withdrawal Withdrawal
	err := s.c.post(ctx, "/withdrawals/payment-method", b, &withdrawal)
	return withdrawal, err
}

// FeeEstimate returns the network fee estimate for withdrawing a currency to
// a crypto address.
//
// Permissions: transfer.
func (s *WithdrawalService) FeeEstimate(ctx context.Context, currency, cryptoAddress string) (decimal.Decimal, error) {
	q := url.Values{}
	setString(q, "currency", currency)
	setString(q, "crypto_address", cryptoAddress)

	var estimate struct {
		Fee decimal.Decimal `json:"fee"`
	}
	err := s.c.get(ctx, "/withdrawals/fee-estimate", q, &estimate)
	return estimate.Fee, err
}
