// Package auth implements account registration and login.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/internal/domain/repository"
	"github.com/jefftricks/shamba-api/pkg/config"
	"github.com/jefftricks/shamba-api/pkg/jwt"
)

const minPasswordLen = 8

// UseCase handles registration and login. Passwords are stored as bcrypt
// hashes; logins issue a JWT carrying the user id and the profile's role.
type UseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtCfg      config.JWTConfig
}

// NewUseCase builds the use case.
func NewUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// Register creates the account and its profile row. The role defaults to
// farmer; unknown roles are rejected.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") || len(req.Password) < minPasswordLen || req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	role := req.Role
	if role == "" {
		role = entity.RoleFarmer
	}
	if role != entity.RoleAdmin && role != entity.RoleStaff && role != entity.RoleFarmer {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         role,
		FarmLocation: req.FarmLocation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Str("role", role).Msg("user registered")
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Login verifies the credentials and issues a signed token. Credential
// failures are indistinguishable to the caller.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	role := entity.RoleFarmer
	profile, err := uc.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		role = profile.Role
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      role,
			Status:    user.Status,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
