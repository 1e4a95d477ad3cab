package repository

import (
	"context"

	"github.com/limitedhq/limited-api/internal/domain/entity"
)

// CompanyRepository persists portfolio companies.
type CompanyRepository interface {
	Insert(ctx context.Context, c *entity.Company) error
	FindByID(ctx context.Context, id string) (*entity.Company, error)
	FindAll(ctx context.Context, limit int64) ([]entity.Company, error)
	Count(ctx context.Context) (int64, error)
}
