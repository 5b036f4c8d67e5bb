package service

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher genera y compara hashes de contraseñas.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
	Burn(password string)
}

// BcryptHasher usa bcrypt; Verify delega en CompareHashAndPassword, que compara en tiempo constante.
type BcryptHasher struct {
	cost int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// Verify devuelve true solo si el hash coincide; cualquier error cuenta como no coincidencia.
func (h *BcryptHasher) Verify(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Burn ejecuta una comparacion contra un hash descartable para que un email
// inexistente tarde lo mismo que una contraseña incorrecta.
func (h *BcryptHasher) Burn(password string) {
	h.dummyOnce.Do(func() {
		h.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("taskflow-dummy-password"), h.cost)
	})
	if len(h.dummyHash) == 0 {
		return
	}
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}
