// Package announcements holds the notices the placement office posts for students.
package announcements

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"placement-workers/internal/common/validation"
	"placement-workers/internal/models"

	"github.com/google/uuid"
)

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrInvalidAnnouncement  = errors.New("invalid announcement")
)

type Board interface {
	// List returns announcements in the order they were posted.
	List(ctx context.Context) ([]models.Announcement, error)
	// Add posts a under a new id, dated today, and returns it.
	Add(ctx context.Context, a models.Announcement) (models.Announcement, error)
	Remove(ctx context.Context, id string) error
}

func SeedAnnouncements() []models.Announcement {
	return []models.Announcement{
		{ID: "n1", Title: "Goldman Sachs PPO talk tomorrow at 3 PM — attendance mandatory", Time: "2 hours ago", Urgent: true},
		{ID: "n2", Title: "HUL resume submission deadline extended by 3 days", Time: "5 hours ago"},
		{ID: "n3", Title: "Mock case interview slots open — register by midnight", Time: "1 day ago"},
	}
}

// MemoryBoard keeps announcements in posting order.
type MemoryBoard struct {
	mu    sync.RWMutex
	items []models.Announcement
	now   func() time.Time
}

func NewMemoryBoard(seed []models.Announcement) *MemoryBoard {
	return &MemoryBoard{
		items: append([]models.Announcement(nil), seed...),
		now:   time.Now,
	}
}

func (b *MemoryBoard) List(_ context.Context) ([]models.Announcement, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.Announcement{}, b.items...), nil
}

func (b *MemoryBoard) Add(_ context.Context, a models.Announcement) (models.Announcement, error) {
	a.Title = strings.TrimSpace(a.Title)
	a.ID = uuid.NewString()
	a.Time = ""
	a.Date = b.now().Format(models.DateLayout)
	if err := validation.Struct(a); err != nil {
		return models.Announcement{}, fmt.Errorf("%w: %v", ErrInvalidAnnouncement, err)
	}

	b.mu.Lock()
	b.items = append(b.items, a)
	b.mu.Unlock()
	return a, nil
}

func (b *MemoryBoard) Remove(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, a := range b.items {
		if a.ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return nil
		}
	}
	return ErrAnnouncementNotFound
}
