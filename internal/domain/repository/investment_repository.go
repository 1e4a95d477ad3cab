package repository

import (
	"context"

	"github.com/limitedhq/limited-api/internal/domain/entity"
)

// InvestmentRepository persists investments.
type InvestmentRepository interface {
	Insert(ctx context.Context, i *entity.Investment) error
	FindByUser(ctx context.Context, userID string, limit int64) ([]entity.Investment, error)
	// FindByUserWithFunds left-joins each investment to its fund and returns
	// the flattened rows.
	FindByUserWithFunds(ctx context.Context, userID string) ([]entity.InvestmentWithFund, error)
}
