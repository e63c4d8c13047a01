package brand

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("brand not found")

type Repository interface {
	List() ([]Brand, error)
	GetByID(id string) (Brand, error)
	Create(b Brand) (Brand, error)
	Update(id string, b Brand) (Brand, error)
	Delete(id string) error
	// Upsert inserts or replaces a brand keeping its slug id (migration path).
	Upsert(b Brand) error
}

// InMemoryRepository keeps brands in a map. Used by tests and the migration
// dry-run path.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Brand
}

func NewInMemoryRepository(seed []Brand) *InMemoryRepository {
	r := &InMemoryRepository{storage: make(map[string]Brand, len(seed))}
	for _, b := range seed {
		r.storage[b.ID] = b
	}
	return r
}

func (r *InMemoryRepository) List() ([]Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Brand, 0, len(r.storage))
	for _, b := range r.storage {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.storage[id]
	if !ok {
		return Brand{}, ErrNotFound
	}
	return b, nil
}

func (r *InMemoryRepository) Create(b Brand) (Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.storage[b.ID]; ok {
		return Brand{}, errors.New("brand already exists")
	}
	r.storage[b.ID] = b
	return b, nil
}

func (r *InMemoryRepository) Update(id string, b Brand) (Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.storage[id]; !ok {
		return Brand{}, ErrNotFound
	}
	b.ID = id
	r.storage[id] = b
	return b, nil
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.storage[id]; !ok {
		return ErrNotFound
	}
	delete(r.storage, id)
	return nil
}

func (r *InMemoryRepository) Upsert(b Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[b.ID] = b
	return nil
}
