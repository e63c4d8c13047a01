package image

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("image not found")

type Repository interface {
	List() ([]UploadedImage, error)
	GetByID(id int) (UploadedImage, error)
	Create(img UploadedImage) (UploadedImage, error)
	Delete(id int) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []UploadedImage
	nextID  int
}

func NewInMemoryRepository(seed []UploadedImage) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]UploadedImage, 0, len(seed)), nextID: 1}
	maxID := 0
	for _, img := range seed {
		r.storage = append(r.storage, img)
		if img.ID > maxID {
			maxID = img.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() ([]UploadedImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]UploadedImage, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (UploadedImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, img := range r.storage {
		if img.ID == id {
			return img, nil
		}
	}
	return UploadedImage{}, ErrNotFound
}

func (r *InMemoryRepository) Create(img UploadedImage) (UploadedImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if img.ID == 0 {
		img.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, img)
	return img, nil
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
