package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quantor-labs/coinbasex/coinbase"
)

const testProduct = "BTC-USD"

// ProductsSuite covers the public market data endpoints.
type ProductsSuite struct {
	BaseSuite
}

func TestProductsSuite(t *testing.T) {
	suite.Run(t, new(ProductsSuite))
}

func (s *ProductsSuite) TestListProducts() {
	products, err := s.client.Products().List(s.ctx)
	s.Require().NoError(err)
	s.Assert().NotEmpty(products)
}

func (s *ProductsSuite) TestGetProduct() {
	product, err := s.client.Products().Get(s.ctx, testProduct)
	s.Require().NoError(err)
	s.Assert().Equal("BTC", product.BaseCurrency)
	s.Assert().Equal("USD", product.QuoteCurrency)
	s.Assert().True(product.QuoteIncrement.IsPositive())
}

func (s *ProductsSuite) TestBookLevels() {
	for level := 1; level <= 2; level++ {
		book, err := s.client.Products().Book(s.ctx, testProduct, level)
		s.Require().NoError(err, "level %d", level)
		s.Assert().NotEmpty(book.Bids, "level %d", level)
		s.Assert().NotEmpty(book.Asks, "level %d", level)
		// bids descend, asks ascend: top of book must not cross
		s.Assert().True(book.Bids[0].Price.LessThan(book.Asks[0].Price))
	}
}

func (s *ProductsSuite) TestCandles() {
	candles, err := s.client.Products().Candles(s.ctx, testProduct, coinbase.CandlesReq{
		Granularity: coinbase.Granularity1h,
		Start:       time.Now().Add(-24 * time.Hour),
		End:         time.Now(),
	})
	s.Require().NoError(err)
	s.Assert().NotEmpty(candles)
	for _, candle := range candles {
		s.Assert().True(candle.High.GreaterThanOrEqual(candle.Low))
	}
}

func (s *ProductsSuite) TestTicker() {
	ticker, err := s.client.Products().Ticker(s.ctx, testProduct)
	s.Require().NoError(err)
	s.Assert().True(ticker.Price.IsPositive())
}

func (s *ProductsSuite) TestTrades() {
	trades, err := s.client.Products().Trades(s.ctx, testProduct, coinbase.TradesReq{Limit: 10})
	s.Require().NoError(err)
	s.Assert().NotEmpty(trades)
}

func (s *ProductsSuite) TestCurrencies() {
	currencies, err := s.client.Currencies().List(s.ctx)
	s.Require().NoError(err)
	s.Assert().NotEmpty(currencies)

	btc, err := s.client.Currencies().Get(s.ctx, "BTC")
	s.Require().NoError(err)
	s.Assert().Equal("BTC", btc.ID)
}
