package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/akhilesh-av/Salon-akhil-freelance/config"
	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	userRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/user"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// RegisterInput carries the customer self-registration payload.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// LoginInput works for both customer (email) and admin (username) login.
type LoginInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// AuthResult is returned on successful login or registration.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService covers registration, login and identity lookup.
type AuthService interface {
	RegisterCustomer(ctx context.Context, in RegisterInput) (*AuthResult, error)
	LoginCustomer(ctx context.Context, in LoginInput) (*AuthResult, error)
	LoginAdmin(ctx context.Context, in LoginInput) (*AuthResult, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	EnsureDefaultAdmin(ctx context.Context) error
}

type DefaultAuthService struct {
	Users userRepo.UserRepository
}

func (s *DefaultAuthService) RegisterCustomer(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !utils.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         models.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Users.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *DefaultAuthService) LoginCustomer(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := s.Users.GetCustomerByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return s.issueFor(user, in.Password)
}

func (s *DefaultAuthService) LoginAdmin(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.Users.GetAdminByUsername(ctx, strings.TrimSpace(in.Username))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return s.issueFor(user, in.Password)
}

func (s *DefaultAuthService) issueFor(user *models.User, password string) (*AuthResult, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(user.ID, user.Role, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *DefaultAuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// EnsureDefaultAdmin seeds the configured admin account on first boot
// so the dashboard is reachable before any manual setup.
func (s *DefaultAuthService) EnsureDefaultAdmin(ctx context.Context) error {
	exists, err := s.Users.HasAdmin(ctx)
	if err != nil || exists {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &models.User{
		ID:           uuid.NewString(),
		Name:         "Administrator",
		Username:     config.AppConfig.AdminUsername,
		Email:        config.AppConfig.AdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Users.Insert(ctx, admin)
	if errors.Is(err, repository.ErrDuplicate) {
		// Another instance seeded it first.
		return nil
	}
	if err != nil {
		return err
	}
	utils.GetLogger().Info("seeded default admin account",
		zap.String("username", admin.Username))
	return nil
}
