package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhilesh-av/Salon-akhil-freelance/config"
	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Insert(ctx context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email || (u.Username != "" && existing.Username == u.Username) {
			return repository.ErrDuplicate
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetCustomerByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil || u.Role != models.RoleCustomer {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetAdminByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Role == models.RoleAdmin {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) HasAdmin(ctx context.Context) (bool, error) {
	for _, u := range r.users {
		if u.Role == models.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == models.RoleCustomer {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

func newTestAuthService() (*DefaultAuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return &DefaultAuthService{Users: repo}, repo
}

func TestRegisterCustomer(t *testing.T) {
	in := RegisterInput{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Password: "secret123",
		Phone:    "555-0100",
	}

	t.Run("registers and returns a token", func(t *testing.T) {
		svc, _ := newTestAuthService()
		result, err := svc.RegisterCustomer(context.Background(), in)
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, models.RoleCustomer, result.User.Role)
		assert.Equal(t, "asha@example.com", result.User.Email, "email is lowercased")
		assert.NotEqual(t, "secret123", result.User.PasswordHash)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc, _ := newTestAuthService()
		_, err := svc.RegisterCustomer(context.Background(), in)
		require.NoError(t, err)

		_, err = svc.RegisterCustomer(context.Background(), in)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		svc, _ := newTestAuthService()
		bad := in
		bad.Email = "not-an-email"
		_, err := svc.RegisterCustomer(context.Background(), bad)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	_, err := svc.RegisterCustomer(context.Background(), RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.LoginCustomer(context.Background(), LoginInput{
			Email: "asha@example.com", Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.LoginCustomer(context.Background(), LoginInput{
			Email: "asha@example.com", Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.LoginCustomer(context.Background(), LoginInput{
			Email: "nobody@example.com", Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestEnsureDefaultAdmin(t *testing.T) {
	config.AppConfig.AdminUsername = "admin"
	config.AppConfig.AdminPassword = "admin123"
	config.AppConfig.AdminEmail = "admin@salonshop.com"

	svc, repo := newTestAuthService()

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	admin, err := repo.GetAdminByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// Idempotent: a second call leaves the existing admin alone.
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	result, err := svc.LoginAdmin(context.Background(), LoginInput{
		Username: "admin", Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, result.User.Role)
}
