package coinbase

import (
	"context"

	"github.com/shopspring/decimal"
)

// OraclePrices are cryptographically signed prices ready to be posted
// on-chain with Compound's Open Oracle contract.
type OraclePrices struct {
	Timestamp  Time                       `json:"timestamp"`
	Messages   []string                   `json:"messages"`
	Signatures []string                   `json:"signatures"`
	Prices     map[string]decimal.Decimal `json:"prices"`
}

type OracleService struct {
	c *Client
}

// Get returns the latest signed oracle prices.
//
// Permissions: view.
func (s *OracleService) Get(ctx context.Context) (OraclePrices, error) {
	var prices OraclePrices
	err := s.c.get(ctx, "/oracle", nil, &prices)
	return prices, err
}
