package getdashboard

import (
	"context"
	"testing"
	"time"

	"placement-workers/internal/announcements"
	"placement-workers/internal/catalog"
	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/models"
	"placement-workers/internal/placement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var fixedNow = time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)

func createTestHandler(t *testing.T, repo catalog.Repository) *Handler {
	svc := placement.NewService(placement.NewMemoryStore())
	_, err := svc.StartSession(context.Background(), "s1")
	require.NoError(t, err)

	board := announcements.NewMemoryBoard(announcements.SeedAnnouncements())
	h := NewHandler(&Config{Timeout: 5 * time.Second}, svc, repo, board, logger.NewZapAdapter(zaptest.NewLogger(t)))
	h.now = func() time.Time { return fixedNow }
	return h
}

func TestHandler_Execute_SeedDashboard(t *testing.T) {
	h := createTestHandler(t, catalog.NewMemoryRepository(catalog.SeedEmployers()))

	out, err := h.Execute(context.Background(), &Input{SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-06", out.AsOf)
	assert.Len(t, out.Applications, 3)
	assert.Equal(t, 2, out.ActiveApplications)
	assert.Equal(t, 1, out.Interviews)
	assert.Equal(t, 5, out.TasksDone)
	assert.Equal(t, 18, out.TasksTotal)

	require.Len(t, out.Upcoming, placement.DashboardDeadlines)
	var names []string
	for _, d := range out.Upcoming {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"P&G India", "McKinsey & Company", "Kotak Mahindra Bank", "Deloitte"}, names)
	assert.Equal(t, 2, out.Upcoming[0].DaysLeft)

	require.Len(t, out.Announcements, 3)
	assert.Equal(t, "n1", out.Announcements[0].ID)
	assert.True(t, out.Announcements[0].Urgent)
	assert.Equal(t, "5 hours ago", out.Announcements[1].Time)
}

func TestHandler_Execute_ShowsPostedAnnouncements(t *testing.T) {
	svc := placement.NewService(placement.NewMemoryStore())
	_, err := svc.StartSession(context.Background(), "s1")
	require.NoError(t, err)

	board := announcements.NewMemoryBoard(announcements.SeedAnnouncements())
	posted, err := board.Add(context.Background(), models.Announcement{Title: "Pre-placement talk for Google at 3 PM"})
	require.NoError(t, err)
	require.NoError(t, board.Remove(context.Background(), "n3"))

	h := NewHandler(&Config{Timeout: 5 * time.Second}, svc, catalog.NewMemoryRepository(catalog.SeedEmployers()), board, logger.NewZapAdapter(zaptest.NewLogger(t)))
	out, err := h.Execute(context.Background(), &Input{SessionID: "s1"})
	require.NoError(t, err)

	var ids []string
	for _, a := range out.Announcements {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"n1", "n2", posted.ID}, ids)
}

func TestHandler_Execute_Errors(t *testing.T) {
	t.Run("unknown session", func(t *testing.T) {
		h := createTestHandler(t, catalog.NewMemoryRepository(catalog.SeedEmployers()))
		_, err := h.Execute(context.Background(), &Input{SessionID: "missing"})
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeSessionNotFound, errors.Normalize(err).Code)
	})

	t.Run("announcements unavailable", func(t *testing.T) {
		h := createTestHandler(t, catalog.NewMemoryRepository(catalog.SeedEmployers()))
		h.board = brokenBoard{}
		_, err := h.Execute(context.Background(), &Input{SessionID: "s1"})
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeQueryExecutionFailed, errors.Normalize(err).Code)
	})

	t.Run("catalog unavailable", func(t *testing.T) {
		h := createTestHandler(t, brokenRepo{})
		_, err := h.Execute(context.Background(), &Input{SessionID: "s1"})
		require.Error(t, err)
		stdErr := errors.Normalize(err)
		assert.Equal(t, errors.ErrCodeQueryExecutionFailed, stdErr.Code)
		assert.True(t, stdErr.Retryable)
	})
}

type brokenRepo struct{ catalog.Repository }

func (brokenRepo) List(context.Context, catalog.Filter) ([]models.Employer, error) {
	return nil, assert.AnError
}

type brokenBoard struct{ announcements.Board }

func (brokenBoard) List(context.Context) ([]models.Announcement, error) {
	return nil, assert.AnError
}
