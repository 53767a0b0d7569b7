package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/quantor-labs/coinbasex/coinbase"
	"github.com/quantor-labs/coinbasex/internal/entity"
	"github.com/quantor-labs/coinbasex/internal/repo"
	"github.com/quantor-labs/coinbasex/pkg/decimalx"
)

// MarketSource is the slice of the connector the monitor needs; satisfied by
// *coinbase.ProductService.
type MarketSource interface {
	Ticker(ctx context.Context, productID string) (coinbase.Ticker, error)
	Candles(ctx context.Context, productID string, req coinbase.CandlesReq) ([]coinbase.Candle, error)
}

// MarketMonitor polls tickers and candles for a set of products, persists
// them, and flags products whose recent closes trend steeply.
type MarketMonitor struct {
	products    []string
	granularity coinbase.Granularity
	lookback    time.Duration
	steepSlope  decimal.Decimal

	market     MarketSource
	candleRepo repo.CandleRepo
	tickerRepo repo.TickerRepo
}

type Option func(m *MarketMonitor)

// WithSteepSlope overrides the normalized slope above which a trend warning
// is logged.
func WithSteepSlope(slope decimal.Decimal) Option {
	return func(m *MarketMonitor) {
		m.steepSlope = slope
	}
}

func WithLookback(d time.Duration) Option {
	return func(m *MarketMonitor) {
		m.lookback = d
	}
}

func NewMarketMonitor(market MarketSource, candleRepo repo.CandleRepo, tickerRepo repo.TickerRepo,
	products []string, granularity coinbase.Granularity, opts ...Option) *MarketMonitor {
	monitor := &MarketMonitor{
		products:    products,
		granularity: granularity,
		lookback:    8 * time.Hour,
		steepSlope:  decimal.NewFromFloat(0.15),
		market:      market,
		candleRepo:  candleRepo,
		tickerRepo:  tickerRepo,
	}
	for _, opt := range opts {
		opt(monitor)
	}
	return monitor
}

// Scan runs one polling round over all configured products. Failures on one
// product are logged and do not stop the others.
func (m *MarketMonitor) Scan(ctx context.Context) error {
	for _, productID := range m.products {
		if err := m.recordTicker(ctx, productID); err != nil {
			slog.Error("failed to record ticker", "product", productID, "error", err)
		}
		if err := m.recordCandles(ctx, productID); err != nil {
			slog.Error("failed to record candles", "product", productID, "error", err)
		}
	}
	return ctx.Err()
}

func (m *MarketMonitor) recordTicker(ctx context.Context, productID string) error {
	ticker, err := m.market.Ticker(ctx, productID)
	if err != nil {
		return err
	}

	_, err = m.tickerRepo.Create(ctx, entity.TickerSnapshot{
		ProductID: productID,
		TradeID:   ticker.TradeID,
		Price:     ticker.Price.String(),
		Bid:       ticker.Bid.String(),
		Ask:       ticker.Ask.String(),
		Mid:       decimalx.Mid(ticker.Bid, ticker.Ask).String(),
		Time:      ticker.Time.Time,
		CreatedAt: time.Now(),
	})
	return err
}

func (m *MarketMonitor) recordCandles(ctx context.Context, productID string) error {
	candles, err := m.market.Candles(ctx, productID, coinbase.CandlesReq{
		Granularity: m.granularity,
		Start:       time.Now().Add(-m.lookback),
		End:         time.Now(),
	})
	if err != nil {
		return err
	}
	if len(candles) < 2 {
		slog.Warn("skip trend check", "product", productID, "reason", "too few candles")
		return m.saveCandles(ctx, productID, candles)
	}

	closes := lo.Map(candles, func(c coinbase.Candle, _ int) decimal.Decimal {
		return c.Close
	})
	slope := decimalx.Slope(closes)
	if slope.Abs().GreaterThan(m.steepSlope) {
		slog.Warn("steep price trend", "product", productID, "slope", slope, "candles", len(candles))
	}

	return m.saveCandles(ctx, productID, candles)
}

func (m *MarketMonitor) saveCandles(ctx context.Context, productID string, candles []coinbase.Candle) error {
	rows := lo.Map(candles, func(c coinbase.Candle, _ int) entity.Candle {
		return entity.Candle{
			ProductID:   productID,
			Granularity: int64(m.granularity),
			Time:        c.Time,
			Open:        c.Open.String(),
			High:        c.High.String(),
			Low:         c.Low.String(),
			Close:       c.Close.String(),
			Volume:      c.Volume.String(),
			CreatedAt:   time.Now(),
		}
	})
	return m.candleRepo.SaveBatch(ctx, rows)
}
