package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quantor-labs/coinbasex/internal/entity"
)

type CandleRepo interface {
	SaveBatch(ctx context.Context, candles []entity.Candle) error
	FindRange(ctx context.Context, productID string, granularity int64, from, to time.Time) ([]entity.Candle, error)
	Latest(ctx context.Context, productID string, granularity int64) (entity.Candle, error)
}

type candleRepo struct {
	db *gorm.DB
}

func NewCandleRepo(db *gorm.DB) CandleRepo {
	return &candleRepo{
		db: db,
	}
}

// SaveBatch inserts candles, silently skipping buckets already recorded.
func (r *candleRepo) SaveBatch(ctx context.Context, candles []entity.Candle) error {
	if len(candles) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&candles).Error
}

func (r *candleRepo) FindRange(ctx context.Context, productID string, granularity int64, from, to time.Time) ([]entity.Candle, error) {
	var candles []entity.Candle
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND granularity = ? AND time >= ? AND time < ?", productID, granularity, from, to).
		Order("time asc").
		Find(&candles).Error
	if err != nil {
		return nil, err
	}
	return candles, nil
}

func (r *candleRepo) Latest(ctx context.Context, productID string, granularity int64) (entity.Candle, error) {
	var candle entity.Candle
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND granularity = ?", productID, granularity).
		Order("time desc").
		First(&candle).Error
	return candle, err
}
