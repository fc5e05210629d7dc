package catalog

import (
	"context"
	"sync"

	"placement-workers/internal/models"
)

// MemoryRepository keeps employers in insertion order.
type MemoryRepository struct {
	mu        sync.RWMutex
	employers []models.Employer
}

func NewMemoryRepository(seed []models.Employer) *MemoryRepository {
	return &MemoryRepository{employers: append([]models.Employer(nil), seed...)}
}

func (r *MemoryRepository) List(_ context.Context, f Filter) ([]models.Employer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Employer, 0, len(r.employers))
	for _, e := range r.employers {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (models.Employer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employers {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Employer{}, ErrEmployerNotFound
}

func (r *MemoryRepository) Add(_ context.Context, e models.Employer) (models.Employer, error) {
	e, err := prepare(e)
	if err != nil {
		return models.Employer{}, err
	}

	r.mu.Lock()
	r.employers = append(r.employers, e)
	r.mu.Unlock()
	return e, nil
}

func (r *MemoryRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.employers {
		if e.ID == id {
			r.employers = append(r.employers[:i], r.employers[i+1:]...)
			return nil
		}
	}
	return ErrEmployerNotFound
}
