package managesession

import (
	"context"
	"testing"
	"time"

	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/placement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func createTestHandler(t *testing.T) (*Handler, *placement.Service) {
	svc := placement.NewService(placement.NewMemoryStore())
	return NewHandler(&Config{Timeout: 5 * time.Second}, svc, logger.NewZapAdapter(zaptest.NewLogger(t))), svc
}

func TestHandler_Execute_Lifecycle(t *testing.T) {
	ctx := context.Background()
	h, svc := createTestHandler(t)

	out, err := h.Execute(ctx, &Input{Action: ActionStart, SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "s1", out.SessionID)
	require.NotNil(t, out.Profile)
	assert.Equal(t, "Bhawna Vig", out.Profile.Name)
	assert.Len(t, out.Profile.Skills, 6)

	out, err = h.Execute(ctx, &Input{
		Action:    ActionUpdateSkills,
		SessionID: "s1",
		Skills:    []string{"Excel", " ", "Excel", " Valuation "},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Excel", "Valuation"}, out.Profile.Skills)

	out, err = h.Execute(ctx, &Input{Action: ActionEnd, SessionID: "s1"})
	require.NoError(t, err)
	assert.True(t, out.Ended)

	_, err = svc.Session(ctx, "s1")
	assert.ErrorIs(t, err, placement.ErrSessionNotFound)
}

func TestHandler_Execute_GeneratesSessionID(t *testing.T) {
	h, _ := createTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{Action: ActionStart})
	require.NoError(t, err)
	assert.NotEmpty(t, out.SessionID)
}

func TestHandler_Execute_Errors(t *testing.T) {
	ctx := context.Background()
	h, _ := createTestHandler(t)
	_, err := h.Execute(ctx, &Input{Action: ActionStart, SessionID: "s1"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    *Input
		wantCode errors.ErrorCode
	}{
		{"start twice", &Input{Action: ActionStart, SessionID: "s1"}, errors.ErrCodeSessionExists},
		{"end unknown", &Input{Action: ActionEnd, SessionID: "nope"}, errors.ErrCodeSessionNotFound},
		{"end without id", &Input{Action: ActionEnd}, errors.ErrCodeValidationFailed},
		{"skills without id", &Input{Action: ActionUpdateSkills}, errors.ErrCodeValidationFailed},
		{"unknown action", &Input{Action: "archive", SessionID: "s1"}, errors.ErrCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Execute(ctx, tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.Normalize(err).Code)
		})
	}
}
