package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
)

// UserRepository is the storage contract for user accounts. Implementations
// return (nil, nil) from the finders when no record matches.
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
