package placement

import (
	"context"
	"errors"
	"testing"
	"time"

	"placement-workers/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func newSession(id string) *models.Session {
	return &models.Session{
		ID:           id,
		Profile:      SeedProfile(),
		Applications: SeedApplications(),
		PrepTasks:    SeedPrepTasks(),
	}
}

// storeContract runs the behaviour every Store must share.
func storeContract(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, store.Create(ctx, newSession("s1")))
	assert.ErrorIs(t, store.Create(ctx, newSession("s1")), ErrSessionExists)

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, got.Applications, 3)

	updated, err := store.Update(ctx, "s1", func(s *models.Session) error {
		s.Profile.Skills = append(s.Profile.Skills, "SQL")
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, updated.Profile.Skills, "SQL")

	boom := errors.New("boom")
	_, err = store.Update(ctx, "s1", func(s *models.Session) error {
		s.Profile.Name = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Bhawna Vig", got.Profile.Name)
	assert.Contains(t, got.Profile.Skills, "SQL")

	_, err = store.Update(ctx, "missing", func(*models.Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, "s1"))
	assert.ErrorIs(t, store.Delete(ctx, "s1"), ErrSessionNotFound)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, newSession("s1")))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	got.Applications[0].Status = models.StatusRejected
	got.Profile.Skills[0] = "mutated"

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInterview, again.Applications[0].Status)
	assert.Equal(t, "Financial Modelling", again.Profile.Skills[0])
}

func TestRedisStore(t *testing.T) {
	_, client := setupRedis(t)
	storeContract(t, NewRedisStore(client, time.Hour))
}

func TestRedisStore_SetsTTL(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisStore(client, 30*time.Minute)

	require.NoError(t, store.Create(context.Background(), newSession("s1")))
	assert.Equal(t, 30*time.Minute, mr.TTL("placement:session:s1"))

	mr.FastForward(31 * time.Minute)
	_, err := store.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_UpdateRetriesOnConflict(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newSession("s1")))

	other := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer other.Close()

	calls := 0
	updated, err := store.Update(ctx, "s1", func(s *models.Session) error {
		calls++
		if calls == 1 {
			// a concurrent writer touches the key between WATCH and EXEC
			raw, err := other.Get(ctx, "placement:session:s1").Result()
			require.NoError(t, err)
			require.NoError(t, other.Set(ctx, "placement:session:s1", raw, time.Hour).Err())
		}
		s.Profile.Name = "Updated"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "Updated", updated.Profile.Name)
}

func TestRedisStore_GetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db, time.Hour)

	mock.ExpectGet("placement:session:s1").SetErr(errors.New("connection refused"))

	_, err := store.Get(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_DeleteError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db, time.Hour)

	mock.ExpectDel("placement:session:s1").SetErr(errors.New("READONLY"))

	err := store.Delete(context.Background(), "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "READONLY")
	assert.NoError(t, mock.ExpectationsWereMet())
}
