package calculatereadiness

import (
	"context"
	"testing"
	"time"

	"placement-workers/internal/common/errors"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/match"
	"placement-workers/internal/placement"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func intPtr(v int) *int { return &v }

func createTestHandler(t *testing.T, store placement.Store) *Handler {
	svc := placement.NewService(store)
	_, err := svc.StartSession(context.Background(), "s1")
	require.NoError(t, err)
	return NewHandler(&Config{Timeout: 5 * time.Second}, match.Substring{}, svc, logger.NewZapAdapter(zaptest.NewLogger(t)))
}

func redisStore(t *testing.T) placement.Store {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return placement.NewRedisStore(client, time.Hour)
}

func TestHandler_Execute_FromSession(t *testing.T) {
	stores := map[string]func(*testing.T) placement.Store{
		"memory": func(*testing.T) placement.Store { return placement.NewMemoryStore() },
		"redis":  redisStore,
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			h := createTestHandler(t, newStore(t))

			out, err := h.Execute(context.Background(), &Input{SessionID: "s1"})
			require.NoError(t, err)
			assert.Equal(t, 65, out.Overall)
			assert.Equal(t, "On Track", out.Grade)
			assert.Equal(t, "top 40%", out.Percentile)
			assert.Len(t, out.Dimensions, 7)
			assert.Len(t, out.ActionPlan, 5)
		})
	}
}

func TestHandler_Execute_SliderOverrides(t *testing.T) {
	h := createTestHandler(t, placement.NewMemoryStore())

	out, err := h.Execute(context.Background(), &Input{
		SessionID:   "s1",
		ResumeScore: intPtr(100),
		MockScore:   intPtr(100),
		ExtraScore:  intPtr(100),
	})
	require.NoError(t, err)
	// resume +8, mock +11.25, extra +2.5 over the default 65
	assert.Equal(t, 87, out.Overall)
	assert.Equal(t, "Placement Ready", out.Grade)
}

func TestHandler_Execute_WithoutSession(t *testing.T) {
	h := createTestHandler(t, placement.NewMemoryStore())

	out, err := h.Execute(context.Background(), &Input{CGPA: "9.4/10", TasksDone: 18, TasksTotal: 18, Applications: 3})
	require.NoError(t, err)

	scores := map[string]int{}
	for _, d := range out.Dimensions {
		scores[d.Key] = d.Score
	}
	assert.Equal(t, 100, scores["academic"])
	assert.Equal(t, 100, scores["prep"])
	assert.Equal(t, 0, scores["skills"])
}

func TestHandler_Execute_UnknownSession(t *testing.T) {
	h := createTestHandler(t, placement.NewMemoryStore())

	_, err := h.Execute(context.Background(), &Input{SessionID: "missing"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSessionNotFound, errors.Normalize(err).Code)
}
