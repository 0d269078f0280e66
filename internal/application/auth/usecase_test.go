package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jefftricks/shamba-api/internal/application/auth"
	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/pkg/config"
	pkgjwt "github.com/jefftricks/shamba-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // keyed by email
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile // keyed by user id
}

func (r *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	r.profiles[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	return p, nil
}

const testSecret = "auth-test-secret"

func newAuthUseCase() (*auth.UseCase, *fakeUserRepo, *fakeProfileRepo) {
	users := &fakeUserRepo{users: map[string]*entity.User{}}
	profiles := &fakeProfileRepo{profiles: map[string]*entity.Profile{}}
	uc := auth.NewUseCase(users, profiles, config.JWTConfig{
		Secret:     testSecret,
		Expiration: 60,
		Issuer:     "shamba-api-test",
	})
	return uc, users, profiles
}

func TestRegisterDefaultsToFarmer(t *testing.T) {
	uc, users, profiles := newAuthUseCase()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "  Jane@Farm.KE ",
		Password: "correct-horse",
		Name:     "Jane",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@farm.ke", out.Email, "email is lowercased and trimmed")
	assert.Equal(t, entity.RoleFarmer, out.Role)

	stored := users.users["jane@farm.ke"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash, "password must never be stored in clear")

	profile := profiles.profiles[stored.ID]
	require.NotNil(t, profile)
	assert.Equal(t, entity.RoleFarmer, profile.Role)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	cases := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"missing email", dto.RegisterRequest{Password: "correct-horse", Name: "Jane"}},
		{"not an email", dto.RegisterRequest{Email: "nope", Password: "correct-horse", Name: "Jane"}},
		{"short password", dto.RegisterRequest{Email: "a@b.ke", Password: "short", Name: "Jane"}},
		{"missing name", dto.RegisterRequest{Email: "a@b.ke", Password: "correct-horse"}},
		{"unknown role", dto.RegisterRequest{Email: "a@b.ke", Password: "correct-horse", Name: "Jane", Role: "superuser"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "jane@farm.ke", Password: "correct-horse", Name: "Jane",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Email: "JANE@farm.ke", Password: "other-password", Name: "Impostor",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginIssuesTokenWithProfileRole(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "admin@farm.ke", Password: "correct-horse", Name: "Admin", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@farm.ke", Password: "correct-horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "jane@farm.ke", Password: "correct-horse", Name: "Jane",
	})
	require.NoError(t, err)

	_, wrongPassword := uc.Login(context.Background(), dto.LoginRequest{
		Email: "jane@farm.ke", Password: "wrong-password",
	})
	_, unknownUser := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nobody@farm.ke", Password: "correct-horse",
	})

	assert.ErrorIs(t, wrongPassword, domain.ErrUnauthorized)
	assert.ErrorIs(t, unknownUser, domain.ErrUnauthorized)
}
