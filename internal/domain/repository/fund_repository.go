package repository

import (
	"context"

	"github.com/limitedhq/limited-api/internal/domain/entity"
)

// FundRepository persists funds in the document store.
type FundRepository interface {
	Insert(ctx context.Context, f *entity.Fund) error
	FindByID(ctx context.Context, id string) (*entity.Fund, error)
	FindAll(ctx context.Context, limit int64) ([]entity.Fund, error)
	Count(ctx context.Context) (int64, error)
}
