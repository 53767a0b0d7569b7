package decimalx

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSlope(t *testing.T) {
	testCases := []struct {
		name string
		ds   []decimal.Decimal
		sign int
	}{
		{
			name: "rising",
			ds: []decimal.Decimal{
				decimal.NewFromInt(1),
				decimal.NewFromInt(2),
				decimal.NewFromInt(3),
				decimal.NewFromInt(4),
			},
			sign: 1,
		},
		{
			name: "falling",
			ds: []decimal.Decimal{
				decimal.NewFromInt(300),
				decimal.NewFromInt(200),
				decimal.NewFromInt(100),
			},
			sign: -1,
		},
		{
			name: "flat",
			ds: []decimal.Decimal{
				decimal.NewFromInt(5),
				decimal.NewFromInt(5),
				decimal.NewFromInt(5),
			},
			sign: 0,
		},
		{
			name: "too short",
			ds:   []decimal.Decimal{decimal.NewFromInt(5)},
			sign: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slope := Slope(tc.ds)
			assert.Equal(t, tc.sign, slope.Sign())
		})
	}
}

func TestSlopeScaleInvariance(t *testing.T) {
	small := []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(2), decimal.NewFromInt(3)}
	big := []decimal.Decimal{decimal.NewFromInt(100), decimal.NewFromInt(200), decimal.NewFromInt(300)}
	assert.True(t, Slope(small).Equal(Slope(big)))
}
