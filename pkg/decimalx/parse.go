package decimalx

import "github.com/shopspring/decimal"

// MustFromString parses s or panics. For literals in tests and fixtures.
func MustFromString(s string) decimal.Decimal {
	res, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return res
}

// Mid returns the midpoint of bid and ask.
func Mid(bid, ask decimal.Decimal) decimal.Decimal {
	return bid.Add(ask).Div(decimal.NewFromInt(2))
}
