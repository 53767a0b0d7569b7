package entity

import (
	"time"
)

// Candle is one persisted OHLCV bucket. Prices are stored as strings to keep
// the exchange's exact decimal representation.
type Candle struct {
	Id          int64     `gorm:"primaryKey;autoIncrement"`
	ProductID   string    `gorm:"uniqueIndex:candle_idx"`
	Granularity int64     `gorm:"uniqueIndex:candle_idx"`
	Time        time.Time `gorm:"uniqueIndex:candle_idx"`
	Open        string
	High        string
	Low         string
	Close       string
	Volume      string
	CreatedAt   time.Time
}
