package usecase

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

func newUserFixture() *fakeUserRepo {
	return &fakeUserRepo{users: []entity.User{
		{
			ID:       "u1",
			Name:     "Admin User",
			Email:    "admin@hospital.com",
			Password: "$2a$10$existinghash",
			Role:     entity.RoleAdmin,
		},
	}}
}

func TestUserCreateHashesPassword(t *testing.T) {
	repo := newUserFixture()
	u := NewUserUsecase(logrus.New(), repo)

	created, err := u.Create(context.Background(), &dto.CreateUserRequest{
		Name:     "Mary Wilson",
		Email:    "reception@hospital.com",
		Password: "reception123",
		Role:     entity.RoleReceptionist,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.Password == "reception123" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("reception123")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	u := NewUserUsecase(logrus.New(), newUserFixture())

	_, err := u.Create(context.Background(), &dto.CreateUserRequest{
		Name:     "Impostor",
		Email:    "admin@hospital.com",
		Password: "password",
		Role:     entity.RoleAdmin,
	})
	if err != ErrEmailAlreadyExists {
		t.Errorf("Create() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestUserUpdateDuplicateEmail(t *testing.T) {
	repo := newUserFixture()
	repo.users = append(repo.users, entity.User{
		ID:    "u2",
		Name:  "Mary Wilson",
		Email: "reception@hospital.com",
		Role:  entity.RoleReceptionist,
	})
	u := NewUserUsecase(logrus.New(), repo)

	_, err := u.Update(context.Background(), "u2", &dto.UpdateUserRequest{
		Email: strPtr("admin@hospital.com"),
	})
	if err != ErrEmailAlreadyExists {
		t.Errorf("Update() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	repo := newUserFixture()
	u := NewUserUsecase(logrus.New(), repo)

	if _, err := u.Update(context.Background(), "u1", &dto.UpdateUserRequest{
		Password: strPtr("newsecret"),
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), "u1")
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newsecret")); err != nil {
		t.Errorf("updated hash does not verify: %v", err)
	}
}

func TestUserResponsesOmitPassword(t *testing.T) {
	u := NewUserUsecase(logrus.New(), newUserFixture())

	users, err := u.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("GetAll() returned %d users, want 1", len(users))
	}
	if users[0].Email != "admin@hospital.com" {
		t.Errorf("Email = %q", users[0].Email)
	}
	// UserResponse has no password field, so there is nothing to leak; this
	// guards the contract stays that way at the usecase boundary.
	if users[0].ID != "u1" || users[0].Role != entity.RoleAdmin {
		t.Errorf("unexpected response: %+v", users[0])
	}
}

func TestUserGetByIDMissing(t *testing.T) {
	u := NewUserUsecase(logrus.New(), newUserFixture())

	_, err := u.GetByID(context.Background(), "no-such-id")
	if err != ErrUserNotFound {
		t.Errorf("GetByID() error = %v, want ErrUserNotFound", err)
	}
}
