package coinbase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// Conversion moves funds between two stablecoin-paired currencies, e.g.
// USD <-> USDC. Ledger entries reference the conversion id.
type Conversion struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	From          string          `json:"from"`
	To            string          `json:"to"`
}

// CreateConversionReq converts Amount of From into To within ProfileID.
type CreateConversionReq struct {
	From      string
	To        string
	Amount    decimal.Decimal
	ProfileID string
	Nonce     string
}

type ConversionService struct {
	c *Client
}

// Create converts funds from one currency to another inside a profile.
//
// Permissions: trade.
func (s *ConversionService) Create(ctx context.Context, req CreateConversionReq) (Conversion, error) {
	b := body{
		"from":   req.From,
		"to":     req.To,
		"amount": req.Amount.String(),
	}
	b.setString("profile_id", req.ProfileID)
	b.setString("nonce", req.Nonce)

	var conversion Conversion
	err := s.c.post(ctx, "/conversions", b, &conversion)
	return conversion, err
}

// Get returns a conversion by id.
func (s *ConversionService) Get(ctx context.Context, conversionID, profileID string) (Conversion, error) {
	q := url.Values{}
	setString(q, "profile_id", profileID)

	var conversion Conversion
	err := s.c.get(ctx, fmt.Sprintf("/conversions/%s", conversionID), q, &conversion)
	return conversion, err
}
