package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/quantor-labs/coinbasex/internal/entity"
)

type TickerRepo interface {
	Create(ctx context.Context, snapshot entity.TickerSnapshot) (int64, error)
	Latest(ctx context.Context, productID string) (entity.TickerSnapshot, error)
}

type tickerRepo struct {
	db *gorm.DB
}

func NewTickerRepo(db *gorm.DB) TickerRepo {
	return &tickerRepo{
		db: db,
	}
}

func (r *tickerRepo) Create(ctx context.Context, snapshot entity.TickerSnapshot) (int64, error) {
	err := r.db.WithContext(ctx).Create(&snapshot).Error
	if err != nil {
		return 0, err
	}
	return snapshot.Id, nil
}

func (r *tickerRepo) Latest(ctx context.Context, productID string) (entity.TickerSnapshot, error) {
	var snapshot entity.TickerSnapshot
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("time desc").
		First(&snapshot).Error
	return snapshot, err
}
