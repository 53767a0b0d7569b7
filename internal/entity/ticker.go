package entity

import (
	"time"
)

// TickerSnapshot is one polled top-of-book observation.
type TickerSnapshot struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID string `gorm:"index"`
	TradeID   int64
	Price     string
	Bid       string
	Ask       string
	Mid       string
	Time      time.Time `gorm:"index"`
	CreatedAt time.Time
}
