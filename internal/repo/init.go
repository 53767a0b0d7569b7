package repo

import (
	"gorm.io/gorm"

	"github.com/quantor-labs/coinbasex/internal/entity"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Candle{}, &entity.TickerSnapshot{})
}
