package coinbase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Account is a trading account balance for one currency in one profile.
type Account struct {
	ID             string          `json:"id"`
	Currency       string          `json:"currency"`
	Balance        decimal.Decimal `json:"balance"`
	Available      decimal.Decimal `json:"available"`
	Hold           decimal.Decimal `json:"hold"`
	ProfileID      string          `json:"profile_id"`
	TradingEnabled bool            `json:"trading_enabled"`
}

// Hold is balance reserved for an open order or pending withdrawal.
type Hold struct {
	ID        string          `json:"id"`
	CreatedAt Time            `json:"created_at"`
	UpdatedAt Time            `json:"updated_at"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Ref       string          `json:"ref"`
}

// LedgerEntry is one row of account activity: a fill, transfer, fee or
// conversion.
type LedgerEntry struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt Time            `json:"created_at"`
	Balance   decimal.Decimal `json:"balance"`
	Type      string          `json:"type"`
	Details   LedgerDetails   `json:"details"`
}

type LedgerDetails struct {
	OrderID      string `json:"order_id"`
	TradeID      string `json:"trade_id"`
	ProductID    string `json:"product_id"`
	TransferID   string `json:"transfer_id"`
	TransferType string `json:"transfer_type"`
}

type AccountService struct {
	c *Client
}

// Get returns a single account by id.
//
// Permissions: view, trade.
func (s *AccountService) Get(ctx context.Context, accountID string) (Account, error) {
	var account Account
	err := s.c.get(ctx, fmt.Sprintf("/accounts/%s", accountID), nil, &account)
	return account, err
}

// List returns all trading accounts of the current API key's profile.
//
// Permissions: view, trade.
func (s *AccountService) List(ctx context.Context) ([]Account, error) {
	var accounts []Account
	err := s.c.get(ctx, "/accounts", nil, &accounts)
	return accounts, err
}

// Holds lists the holds on an account. Holds are released when the order
// fills or the withdrawal completes.
func (s *AccountService) Holds(ctx context.Context, accountID string) ([]Hold, error) {
	var holds []Hold
	err := s.c.get(ctx, fmt.Sprintf("/accounts/%s/holds", accountID), nil, &holds)
	return holds, err
}

// Ledger lists account activity, newest first.
func (s *AccountService) Ledger(ctx context.Context, accountID string) ([]LedgerEntry, error) {
	var entries []LedgerEntry
	err := s.c.get(ctx, fmt.Sprintf("/accounts/%s/ledger", accountID), nil, &entries)
	return entries, err
}

// Transfers lists deposits and withdrawals touching an account.
func (s *AccountService) Transfers(ctx context.Context, accountID string) ([]Transfer, error) {
	var transfers []Transfer
	err := s.c.get(ctx, fmt.Sprintf("/accounts/%s/transfers", accountID), nil, &transfers)
	return transfers, err
}
