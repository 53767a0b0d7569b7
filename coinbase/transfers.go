package coinbase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Transfer is a movement of funds in or out of a trading account: deposit,
// withdraw, or an internal move between profiles. Completed/Canceled/
// Processed times stay zero until the transfer reaches that state.
type Transfer struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	CreatedAt   Time            `json:"created_at"`
	CompletedAt Time            `json:"completed_at"`
	CanceledAt  Time            `json:"canceled_at"`
	ProcessedAt Time            `json:"processed_at"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	UserNonce   int64           `json:"user_nonce"`
	Details     TransferDetails `json:"details"`
}

type TransferDetails struct {
	CoinbaseAccountID       string `json:"coinbase_account_id"`
	CoinbaseTransactionID   string `json:"coinbase_transaction_id"`
	CoinbasePaymentMethodID string `json:"coinbase_payment_method_id"`
	CryptoAddress           string `json:"crypto_address"`
	CryptoTransactionHash   string `json:"crypto_transaction_hash"`
	DestinationTag          string `json:"destination_tag"`
}

type TransferService struct {
	c *Client
}

// Get returns a single transfer by id.
//
// Permissions: view, trade.
func (s *TransferService) Get(ctx context.Context, transferID string) (Transfer, error) {
	var transfer Transfer
	err := s.c.get(ctx, fmt.Sprintf("/transfers/%s", transferID), nil, &transfer)
	return transfer, err
}

// List returns in-progress and completed transfers across all the user's
// accounts.
//
// Permissions: view, trade.
func (s *TransferService) List(ctx context.Context) ([]Transfer, error) {
	var transfers []Transfer
	err := s.c.get(ctx, "/transfers", nil, &transfers)
	return transfers, err
}
