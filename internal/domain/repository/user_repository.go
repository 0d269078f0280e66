package repository

import (
	"context"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ProfileRepository is the persistence port for user profiles (role lookup).
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
}
