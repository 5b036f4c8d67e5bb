package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"taskflow/internal/domain"
	"taskflow/internal/repository"
)

// UserService coordina registro y login de usuarios.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
	hasher PasswordHasher
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, hasher PasswordHasher) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		logger: logger,
		users:  users,
		hasher: hasher,
	}
}

type SignupInput struct {
	Email    string
	Name     string
	Password string
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSignup      = errors.New("name, email and password are required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordTooLong    = errors.New("password too long")
)

// maxPasswordBytes es el limite de bcrypt; mas alla GenerateFromPassword falla.
const maxPasswordBytes = 72

// Signup crea un usuario. El email se compara tal cual (solo se recortan espacios).
func (s *UserService) Signup(ctx context.Context, input SignupInput) (domain.User, error) {
	if s.users == nil || s.hasher == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" || input.Password == "" {
		return domain.User{}, ErrInvalidSignup
	}
	if len(input.Password) > maxPasswordBytes {
		return domain.User{}, ErrPasswordTooLong
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// Authenticate no distingue email inexistente de contraseña incorrecta.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	if s.users == nil || s.hasher == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.hasher.Burn(password)
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}
