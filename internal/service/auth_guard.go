package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"taskflow/internal/domain"
	"taskflow/internal/repository"
)

// ErrUnauthorized agrupa token ausente, invalido, expirado o de un usuario que ya no existe.
var ErrUnauthorized = errors.New("unauthorized")

// AuthGuard resuelve un token de sesion a una identidad vigente.
type AuthGuard struct {
	tokens *JWTService
	users  repository.UserRepository
}

func NewAuthGuard(tokens *JWTService, users repository.UserRepository) *AuthGuard {
	return &AuthGuard{tokens: tokens, users: users}
}

// Resolve devuelve ErrUnauthorized para cualquier fallo de credencial.
// Solo los errores del store se propagan como internos.
func (g *AuthGuard) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	if g == nil || g.tokens == nil || g.users == nil {
		return domain.Identity{}, errors.New("auth guard not configured")
	}
	if strings.TrimSpace(token) == "" {
		return domain.Identity{}, ErrUnauthorized
	}

	claims, err := g.tokens.Parse(token)
	if err != nil {
		return domain.Identity{}, ErrUnauthorized
	}

	user, err := g.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Identity{}, ErrUnauthorized
		}
		return domain.Identity{}, fmt.Errorf("resolve session user: %w", err)
	}
	return user.Identity(), nil
}
