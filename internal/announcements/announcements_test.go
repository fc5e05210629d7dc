package announcements

import (
	"context"
	"testing"
	"time"

	"placement-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(as []models.Announcement) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.ID
	}
	return out
}

func TestSeedAnnouncements(t *testing.T) {
	seed := SeedAnnouncements()
	require.Len(t, seed, 3)
	assert.Equal(t, []string{"n1", "n2", "n3"}, ids(seed))
	assert.True(t, seed[0].Urgent)
	assert.False(t, seed[1].Urgent)
	assert.Equal(t, "2 hours ago", seed[0].Time)
	assert.Contains(t, seed[1].Title, "HUL resume submission deadline")
}

func TestMemoryBoard_AddListRemove(t *testing.T) {
	board := NewMemoryBoard(SeedAnnouncements())
	board.now = func() time.Time { return time.Date(2026, 2, 21, 18, 30, 0, 0, time.UTC) }
	ctx := context.Background()

	added, err := board.Add(ctx, models.Announcement{ID: "ignored", Title: "  Pre-placement talk for Google at 3 PM ", Time: "now", Urgent: true})
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", added.ID)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Pre-placement talk for Google at 3 PM", added.Title)
	assert.Equal(t, "2026-02-21", added.Date)
	assert.Empty(t, added.Time)
	assert.True(t, added.Urgent)

	list, err := board.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"n1", "n2", "n3", added.ID}, ids(list))

	require.NoError(t, board.Remove(ctx, "n2"))
	list, _ = board.List(ctx)
	assert.Equal(t, []string{"n1", "n3", added.ID}, ids(list))

	assert.ErrorIs(t, board.Remove(ctx, "n2"), ErrAnnouncementNotFound)
}

func TestMemoryBoard_AddRequiresTitle(t *testing.T) {
	board := NewMemoryBoard(nil)

	_, err := board.Add(context.Background(), models.Announcement{Title: "   "})
	require.ErrorIs(t, err, ErrInvalidAnnouncement)
	assert.Contains(t, err.Error(), "Announcement.Title: failed required")

	list, err := board.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryBoard_ListIsACopy(t *testing.T) {
	board := NewMemoryBoard(SeedAnnouncements())

	list, _ := board.List(context.Background())
	list[0].Title = "changed"

	again, _ := board.List(context.Background())
	assert.NotEqual(t, "changed", again[0].Title)
}
