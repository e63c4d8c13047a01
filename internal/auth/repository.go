package auth

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound           = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Account is an admin credential record. Being an account is necessary but
// not sufficient for dashboard access; the allow-list and OTP still apply.
type Account struct {
	ID           int
	Email        string
	PasswordHash string
}

type AccountRepository interface {
	GetByEmail(email string) (Account, error)
}

type InMemoryAccountRepository struct {
	mu      sync.RWMutex
	storage map[string]Account
}

func NewInMemoryAccountRepository(seed []Account) *InMemoryAccountRepository {
	r := &InMemoryAccountRepository{storage: make(map[string]Account, len(seed))}
	for _, a := range seed {
		r.storage[strings.ToLower(a.Email)] = a
	}
	return r
}

func (r *InMemoryAccountRepository) GetByEmail(email string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.storage[strings.ToLower(email)]
	if !ok {
		return Account{}, ErrNotFound
	}
	return a, nil
}
