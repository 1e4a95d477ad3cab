package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/domain/repository"
)

type CompanyRepository struct {
	c collection[entity.Company]
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{c: newCollection[entity.Company](db, CollCompanies)}
}

func (r *CompanyRepository) Insert(ctx context.Context, co *entity.Company) error {
	return r.c.Insert(ctx, co)
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.c.FindByID(ctx, id)
}

func (r *CompanyRepository) FindAll(ctx context.Context, limit int64) ([]entity.Company, error) {
	return r.c.FindAll(ctx, nil, limit)
}

func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	return r.c.Count(ctx)
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
