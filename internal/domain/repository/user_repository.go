package repository

import (
	"context"

	"github.com/limitedhq/limited-api/internal/domain/entity"
)

// UserRepository persists user accounts. Email lookups expect the address
// already normalized to lowercase.
type UserRepository interface {
	Insert(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateFields applies a partial field replacement to the user document.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Count(ctx context.Context) (int64, error)
}
