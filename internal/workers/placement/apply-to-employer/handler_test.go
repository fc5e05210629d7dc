package applytoemployer

import (
	"context"
	"testing"
	"time"

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

func createTestHandler(t *testing.T) *Handler {
	svc := placement.NewService(placement.NewMemoryStore()).WithClock(func() time.Time { return fixedNow })
	_, err := svc.StartSession(context.Background(), "s1")
	require.NoError(t, err)

	return NewHandler(&Config{Timeout: 5 * time.Second}, svc,
		catalog.NewMemoryRepository(catalog.SeedEmployers()), logger.NewZapAdapter(zaptest.NewLogger(t)))
}

func TestHandler_Execute_NewApplication(t *testing.T) {
	h := createTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{SessionID: "s1", EmployerID: "2"})
	require.NoError(t, err)

	assert.True(t, out.Created)
	assert.NotEmpty(t, out.Application.ID)
	assert.Equal(t, "McKinsey & Company", out.Application.EmployerName)
	assert.Equal(t, models.StatusApplied, out.Application.Status)
	assert.Equal(t, "2026-03-06", out.Application.AppliedDate)

	again, err := h.Execute(context.Background(), &Input{SessionID: "s1", EmployerID: "2"})
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, out.Application.ID, again.Application.ID)
}

func TestHandler_Execute_ExistingBookmark(t *testing.T) {
	out, err := createTestHandler(t).Execute(context.Background(), &Input{SessionID: "s1", EmployerID: "3"})
	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Equal(t, "a3", out.Application.ID)
	assert.Equal(t, models.StatusInterested, out.Application.Status)
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		wantCode errors.ErrorCode
	}{
		{"unknown employer", Input{SessionID: "s1", EmployerID: "42"}, errors.ErrCodeEmployerNotFound},
		{"unknown session", Input{SessionID: "s2", EmployerID: "1"}, errors.ErrCodeSessionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := createTestHandler(t).Execute(context.Background(), &tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.Normalize(err).Code)
		})
	}
}
