package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"golang.org/x/crypto/bcrypt"
)

// DevJWTSecret solo se usa fuera de produccion cuando JWT_SECRET no esta definido.
const DevJWTSecret = "taskflow-dev-secret"

var (
	ErrMissingJWTSecret  = errors.New("JWT_SECRET is required in production")
	ErrInvalidBcryptCost = fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	JWTSecret   string `env:"JWT_SECRET"`
	BcryptCost  int    `env:"BCRYPT_COST" envDefault:"10"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rechaza configuraciones invalidas o inseguras para produccion.
func (c *Config) Validate() error {
	if c.IsProduction() && strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidBcryptCost
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.AppEnv), "production")
}

// UsesDevSecret reporta si SigningSecret cae en el fallback de desarrollo.
func (c *Config) UsesDevSecret() bool {
	return !c.IsProduction() && strings.TrimSpace(c.JWTSecret) == ""
}

// SigningSecret devuelve el secreto JWT, con fallback solo en desarrollo.
func (c *Config) SigningSecret() string {
	if secret := strings.TrimSpace(c.JWTSecret); secret != "" {
		return secret
	}
	if c.IsProduction() {
		return ""
	}
	return DevJWTSecret
}
