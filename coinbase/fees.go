package coinbase

import (
	"context"

	"github.com/shopspring/decimal"
)

// Fees are the current maker/taker rates with the 30 day trailing volume
// they are derived from. Quoted rates are subject to change.
type Fees struct {
	TakerFeeRate decimal.Decimal `json:"taker_fee_rate"`
	MakerFeeRate decimal.Decimal `json:"maker_fee_rate"`
	USDVolume    decimal.Decimal `json:"usd_volume"`
}

type FeeService struct {
	c *Client
}

// Get returns the key's current fee rates and trailing volume.
//
// Permissions: view.
func (s *FeeService) Get(ctx context.Context) (Fees, error) {
	var fees Fees
	err := s.c.get(ctx, "/fees", nil, &fees)
	return fees, err
}
