package placement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"placement-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix        = "placement:session:"
	maxUpdateRetries = 5
)

// ErrUpdateConflict is returned when Update keeps losing the optimistic lock.
var ErrUpdateConflict = errors.New("session update conflict")

// RedisStore keeps each session as a JSON string with a sliding TTL.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string { return keyPrefix + id }

func (r *RedisStore) Create(ctx context.Context, s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	ok, err := r.client.SetNX(ctx, sessionKey(s.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("create session %s: %w", s.ID, err)
	}
	if !ok {
		return ErrSessionExists
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return decode(data)
}

func (r *RedisStore) Update(ctx context.Context, id string, fn func(*models.Session) error) (*models.Session, error) {
	key := sessionKey(id)
	var updated *models.Session

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		if err != nil {
			return err
		}
		s, err := decode(data)
		if err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
		out, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, r.ttl)
			return nil
		})
		if err == nil {
			updated = s
		}
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}
	}
	return nil, ErrUpdateConflict
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func decode(data []byte) (*models.Session, error) {
	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}
