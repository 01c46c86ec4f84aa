package filedb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	return snap.Users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range snap.Users {
		if snap.Users[i].ID == id {
			user := snap.Users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range snap.Users {
		if snap.Users[i].Email == email {
			user := snap.Users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	return r.store.Update(func(snap *Snapshot) error {
		snap.Users = append(snap.Users, *user)
		return nil
	})
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now().UTC()

	return r.store.Update(func(snap *Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].ID == user.ID {
				snap.Users[i] = *user
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(snap *Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].ID == id {
				snap.Users = append(snap.Users[:i], snap.Users[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}
