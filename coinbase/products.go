package coinbase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"
)

// Product is one currency pair and its trading constraints.
type Product struct {
	ID                    string          `json:"id"`
	BaseCurrency          string          `json:"base_currency"`
	QuoteCurrency         string          `json:"quote_currency"`
	BaseMinSize           decimal.Decimal `json:"base_min_size"`
	BaseMaxSize           decimal.Decimal `json:"base_max_size"`
	QuoteIncrement        decimal.Decimal `json:"quote_increment"`
	BaseIncrement         decimal.Decimal `json:"base_increment"`
	DisplayName           string          `json:"display_name"`
	MinMarketFunds        decimal.Decimal `json:"min_market_funds"`
	MaxMarketFunds        decimal.Decimal `json:"max_market_funds"`
	MarginEnabled         bool            `json:"margin_enabled"`
	PostOnly              bool            `json:"post_only"`
	LimitOnly             bool            `json:"limit_only"`
	CancelOnly            bool            `json:"cancel_only"`
	Status                string          `json:"status"`
	StatusMessage         string          `json:"status_message"`
	TradingDisabled       bool            `json:"trading_disabled"`
	FXStablecoin          bool            `json:"fx_stablecoin"`
	MaxSlippagePercentage decimal.Decimal `json:"max_slippage_percentage"`
	AuctionMode           bool            `json:"auction_mode"`
}

// BookLevel is one side-level of the order book. The wire form is
// [price, size, num_orders] at levels 1-2 and [price, size, order_id] at
// level 3, so exactly one of NumOrders and OrderID is set.
type BookLevel struct {
	Price     decimal.Decimal
	Size      decimal.Decimal
	NumOrders int64
	OrderID   string
}

func (l *BookLevel) UnmarshalJSON(data []byte) error {
	v, err := fastjson.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("coinbase: parse book level: %w", err)
	}
	arr := v.GetArray()
	if len(arr) != 3 {
		return fmt.Errorf("coinbase: book level has %d elements, want 3", len(arr))
	}
	if l.Price, err = decimal.NewFromString(string(arr[0].GetStringBytes())); err != nil {
		return fmt.Errorf("coinbase: book level price: %w", err)
	}
	if l.Size, err = decimal.NewFromString(string(arr[1].GetStringBytes())); err != nil {
		return fmt.Errorf("coinbase: book level size: %w", err)
	}
	switch arr[2].Type() {
	case fastjson.TypeNumber:
		l.NumOrders = arr[2].GetInt64()
	case fastjson.TypeString:
		l.OrderID = string(arr[2].GetStringBytes())
	default:
		return fmt.Errorf("coinbase: unexpected book level tail %s", arr[2].Type())
	}
	return nil
}

// Auction is present on books of products in auction mode.
type Auction struct {
	OpenPrice    decimal.Decimal `json:"open_price"`
	OpenSize     decimal.Decimal `json:"open_size"`
	BestBidPrice decimal.Decimal `json:"best_bid_price"`
	BestBidSize  decimal.Decimal `json:"best_bid_size"`
	BestAskPrice decimal.Decimal `json:"best_ask_price"`
	BestAskSize  decimal.Decimal `json:"best_ask_size"`
	AuctionState string          `json:"auction_state"`
	CanOpen      string          `json:"can_open"`
	Time         Time            `json:"time"`
}

// Book is an order book snapshot.
type Book struct {
	Sequence    int64       `json:"sequence"`
	Bids        []BookLevel `json:"bids"`
	Asks        []BookLevel `json:"asks"`
	AuctionMode bool        `json:"auction_mode"`
	Auction     *Auction    `json:"auction"`
}

// Candle is one OHLCV bucket. The wire form is
// [time, low, high, open, close, volume] with epoch-second time.
type Candle struct {
	Time   time.Time
	Low    decimal.Decimal
	High   decimal.Decimal
	Open   decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

func (c *Candle) UnmarshalJSON(data []byte) error {
	v, err := fastjson.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("coinbase: parse candle: %w", err)
	}
	arr := v.GetArray()
	if len(arr) != 6 {
		return fmt.Errorf("coinbase: candle has %d elements, want 6", len(arr))
	}
	c.Time = time.Unix(arr[0].GetInt64(), 0).UTC()
	c.Low = decimal.NewFromFloat(arr[1].GetFloat64())
	c.High = decimal.NewFromFloat(arr[2].GetFloat64())
	c.Open = decimal.NewFromFloat(arr[3].GetFloat64())
	c.Close = decimal.NewFromFloat(arr[4].GetFloat64())
	c.Volume = decimal.NewFromFloat(arr[5].GetFloat64())
	return nil
}

// Ticker is a snapshot of the last trade, best bid/ask and 24h volume.
type Ticker struct {
	TradeID int64           `json:"trade_id"`
	Ask     decimal.Decimal `json:"ask"`
	Bid     decimal.Decimal `json:"bid"`
	Volume  decimal.Decimal `json:"volume"`
	Price   decimal.Decimal `json:"price"`
	Size    decimal.Decimal `json:"size"`
	Time    Time            `json:"time"`
}

// Trade is one public trade. Side is the maker side: a "buy" means the maker
// was buying and the price likely ticked down.
type Trade struct {
	TradeID int64           `json:"trade_id"`
	Side    Side            `json:"side"`
	Size    decimal.Decimal `json:"size"`
	Price   decimal.Decimal `json:"price"`
	Time    Time            `json:"time"`
}

// Stats is the 24 hour and 30 day window for a product.
type Stats struct {
	Open        decimal.Decimal `json:"open"`
	High        decimal.Decimal `json:"high"`
	Low         decimal.Decimal `json:"low"`
	Last        decimal.Decimal `json:"last"`
	Volume      decimal.Decimal `json:"volume"`
	Volume30Day decimal.Decimal `json:"volume_30day"`
}

// CandlesReq bounds a candle query. Granularity is required; with both Start
// and End unset the exchange returns the most recent buckets.
type CandlesReq struct {
	Granularity Granularity
	Start       time.Time
	End         time.Time
}

// TradesReq pages through the public trade history.
type TradesReq struct {
	Limit  int
	Before int64
	After  int64
}

type ProductService struct {
	c *Client
}

// Get returns a single product.
func (s *ProductService) Get(ctx context.Context, productID string) (Product, error) {
	var product Product
	err := s.c.get(ctx, fmt.Sprintf("/products/%s", productID), nil, &product)
	return product, err
}

// List returns all currency pairs available for trading.
func (s *ProductService) List(ctx context.Context) ([]Product, error) {
	var products []Product
	err := s.c.get(ctx, "/products", nil, &products)
	return products, err
}

// Book returns the order book at the given detail level:
//
//	1 - best bid and ask only
//	2 - full book, aggregated per price
//	3 - full book, every order
func (s *ProductService) Book(ctx context.Context, productID string, level int) (Book, error) {
	if level < 1 || level > 3 {
		return Book{}, fmt.Errorf("%w: book level must be 1, 2 or 3", ErrInvalidRequest)
	}
	q := url.Values{}
	setInt(q, "level", level)

	var book Book
	err := s.c.get(ctx, fmt.Sprintf("/products/%s/book", productID), q, &book)
	return book, err
}

// Candles returns historic OHLCV buckets. Buckets with no ticks are absent,
// and recent data may still be incomplete; use Ticker or the websocket feed
// for real-time prices.
func (s *ProductService) Candles(ctx context.Context, productID string, req CandlesReq) ([]Candle, error) {
	q := url.Values{}
	setInt(q, "granularity", int(req.Granularity))
	setTime(q, "start", req.Start)
	setTime(q, "end", req.End)

	var candles []Candle
	err := s.c.get(ctx, fmt.Sprintf("/products/%s/candles", productID), q, &candles)
	return candles, err
}

// Stats returns the 24h/30d window statistics for a product.
func (s *ProductService) Stats(ctx context.Context, productID string) (Stats, error) {
	var stats Stats
	err := s.c.get(ctx, fmt.Sprintf("/products/%s/stats", productID), nil, &stats)
	return stats, err
}

// Ticker returns the last trade, best bid/ask and 24h volume.
func (s *ProductService) Ticker(ctx context.Context, productID string) (Ticker, error) {
	var ticker Ticker
	err := s.c.get(ctx, fmt.Sprintf("/products/%s/ticker", productID), nil, &ticker)
	return ticker, err
}

// Trades lists the latest public trades for a product.
func (s *ProductService) Trades(ctx context.Context, productID string, req TradesReq) ([]Trade, error) {
	q := url.Values{}
	setInt(q, "limit", req.Limit)
	if req.Before != 0 {
		q.Set("before", fmt.Sprintf("%d", req.Before))
	}
	if req.After != 0 {
		q.Set("after", fmt.Sprintf("%d", req.After))
	}

	var trades []Trade
	err := s.c.get(ctx, fmt.Sprintf("/products/%s/trades", productID), q, &trades)
	return trades, err
}
