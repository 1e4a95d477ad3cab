package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/domain/repository"
)

type DealRepository struct {
	c collection[entity.Deal]
}

func NewDealRepository(db *mongo.Database) *DealRepository {
	return &DealRepository{c: newCollection[entity.Deal](db, CollDeals)}
}

func (r *DealRepository) Insert(ctx context.Context, d *entity.Deal) error {
	return r.c.Insert(ctx, d)
}

func (r *DealRepository) FindByID(ctx context.Context, id string) (*entity.Deal, error) {
	return r.c.FindByID(ctx, id)
}

func (r *DealRepository) FindAll(ctx context.Context, limit int64) ([]entity.Deal, error) {
	return r.c.FindAll(ctx, nil, limit)
}

func (r *DealRepository) Count(ctx context.Context) (int64, error) {
	return r.c.Count(ctx)
}

var _ repository.DealRepository = (*DealRepository)(nil)
