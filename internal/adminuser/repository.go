package adminuser

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound    = errors.New("admin user not found")
	ErrEmailExists = errors.New("email already listed")
)

type Repository interface {
	// List returns the allow-list. A missing backing table yields an empty
	// list, not an error, so login keeps working before first-time setup.
	List() ([]AdminUser, error)
	Create(email string) (AdminUser, error)
	Delete(id int) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []AdminUser
	nextID  int
}

func NewInMemoryRepository(emails []string) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	for _, e := range emails {
		r.storage = append(r.storage, AdminUser{ID: r.nextID, Email: strings.ToLower(e)})
		r.nextID++
	}
	return r
}

func (r *InMemoryRepository) List() ([]AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]AdminUser, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) Create(email string) (AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = strings.ToLower(email)
	for _, u := range r.storage {
		if u.Email == email {
			return AdminUser{}, ErrEmailExists
		}
	}
	u := AdminUser{ID: r.nextID, Email: email}
	r.nextID++
	r.storage = append(r.storage, u)
	return u, nil
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
