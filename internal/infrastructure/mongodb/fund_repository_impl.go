package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/domain/repository"
)

type FundRepository struct {
	c collection[entity.Fund]
}

func NewFundRepository(db *mongo.Database) *FundRepository {
	return &FundRepository{c: newCollection[entity.Fund](db, CollFunds)}
}

func (r *FundRepository) Insert(ctx context.Context, f *entity.Fund) error {
	return r.c.Insert(ctx, f)
}

func (r *FundRepository) FindByID(ctx context.Context, id string) (*entity.Fund, error) {
	return r.c.FindByID(ctx, id)
}

func (r *FundRepository) FindAll(ctx context.Context, limit int64) ([]entity.Fund, error) {
	return r.c.FindAll(ctx, nil, limit)
}

func (r *FundRepository) Count(ctx context.Context) (int64, error) {
	return r.c.Count(ctx)
}

var _ repository.FundRepository = (*FundRepository)(nil)
