package coinbase

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// HeartbeatMessage arrives once per second per subscribed product and lets
// consumers detect trade gaps through LastTradeID.
type HeartbeatMessage struct {
	Sequence    int64  `json:"sequence"`
	LastTradeID int64  `json:"last_trade_id"`
	ProductID   string `json:"product_id"`
	Time        Time   `json:"time"`
}

// TickerMessage is pushed on every match when subscribed to the ticker
// channel.
type TickerMessage struct {
	Sequence  int64           `json:"sequence"`
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Open24h   decimal.Decimal `json:"open_24h"`
	Volume24h decimal.Decimal `json:"volume_24h"`
	Low24h    decimal.Decimal `json:"low_24h"`
	High24h   decimal.Decimal `json:"high_24h"`
	Volume30d decimal.Decimal `json:"volume_30d"`
	BestBid   decimal.Decimal `json:"best_bid"`
	BestAsk   decimal.Decimal `json:"best_ask"`
	Side      Side            `json:"side"`
	Time      Time            `json:"time"`
	TradeID   int64           `json:"trade_id"`
	LastSize  decimal.Decimal `json:"last_size"`
}

// MatchMessage is one executed trade from the matches channel.
type MatchMessage struct {
	TradeID      int64           `json:"trade_id"`
	Sequence     int64           `json:"sequence"`
	MakerOrderID string          `json:"maker_order_id"`
	TakerOrderID string          `json:"taker_order_id"`
	Time         Time            `json:"time"`
	ProductID    string          `json:"product_id"`
	Size         decimal.Decimal `json:"size"`
	Price        decimal.Decimal `json:"price"`
	Side         Side            `json:"side"`
}

// SnapshotLevel is one [price, size] pair of a level2 snapshot.
type SnapshotLevel struct {
	Price decimal.Decimal
	Size  decimal.Decimal
}

func (l *SnapshotLevel) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coinbase: parse snapshot level: %w", err)
	}
	var err error
	if l.Price, err = decimal.NewFromString(pair[0]); err != nil {
		return fmt.Errorf("coinbase: snapshot price: %w", err)
	}
	if l.Size, err = decimal.NewFromString(pair[1]); err != nil {
		return fmt.Errorf("coinbase: snapshot size: %w", err)
	}
	return nil
}

// SnapshotMessage opens a level2 subscription with the full aggregated book.
type SnapshotMessage struct {
	ProductID string          `json:"product_id"`
	Bids      []SnapshotLevel `json:"bids"`
	Asks      []SnapshotLevel `json:"asks"`
}

// L2Change is one ["side", "price", "size"] triple of an l2update. Size is
// the new total at that price; zero removes the level.
type L2Change struct {
	Side  Side
	Price decimal.Decimal
	Size  decimal.Decimal
}

func (c *L2Change) UnmarshalJSON(data []byte) error {
	var triple [3]string
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("coinbase: parse l2 change: %w", err)
	}
	c.Side = Side(triple[0])
	var err error
	if c.Price, err = decimal.NewFromString(triple[1]); err != nil {
		return fmt.Errorf("coinbase: l2 change price: %w", err)
	}
	if c.Size, err = decimal.NewFromString(triple[2]); err != nil {
		return fmt.Errorf("coinbase: l2 change size: %w", err)
	}
	return nil
}

// L2UpdateMessage carries incremental level2 book changes.
type L2UpdateMessage struct {
	ProductID string     `json:"product_id"`
	Time      Time       `json:"time"`
	Changes   []L2Change `json:"changes"`
}
