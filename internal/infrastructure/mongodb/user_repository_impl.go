package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/domain/repository"
)

type UserRepository struct {
	c collection[entity.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{c: newCollection[entity.User](db, CollUsers)}
}

func (r *UserRepository) Insert(ctx context.Context, u *entity.User) error {
	return r.c.Insert(ctx, u)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.c.FindByID(ctx, id)
}

// FindByEmail expects the email already lowercased by the caller.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.c.FindOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return r.c.UpdateFields(ctx, id, fields)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.c.Count(ctx)
}

var _ repository.UserRepository = (*UserRepository)(nil)
