package repository

import (
	"context"

	"github.com/limitedhq/limited-api/internal/domain/entity"
)

// DealRepository persists syndicated deals.
type DealRepository interface {
	Insert(ctx context.Context, d *entity.Deal) error
	FindByID(ctx context.Context, id string) (*entity.Deal, error)
	FindAll(ctx context.Context, limit int64) ([]entity.Deal, error)
	Count(ctx context.Context) (int64, error)
}
