package main

import (
	"context"
	"fmt"
	"time"

	"placement-workers/internal/announcements"
	"placement-workers/internal/catalog"
	awsclients "placement-workers/internal/common/aws"
	"placement-workers/internal/common/config"
	"placement-workers/internal/common/database"
	"placement-workers/internal/notify"
	"placement-workers/internal/placement"
	"placement-workers/internal/search"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// backends holds the stores and clients selected by configuration. Fields
// for backends that are not in use stay nil.
type backends struct {
	pg    *database.PostgresClient
	redis *database.RedisClient
	es    *database.ElasticsearchClient

	catalog  catalog.Repository
	board    announcements.Board
	sessions *placement.Service
	index    *search.Index
	notifier *notify.Notifier
}

// connectBackends dials every configured backend concurrently, retrying each
// until it answers a ping.
func connectBackends(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (*backends, error) {
	b := &backends{}
	g, gctx := errgroup.WithContext(ctx)

	if cfg.UsesPostgres() {
		g.Go(func() error {
			return retryWithBackoff(func() error {
				pg, err := database.NewPostgres(cfg.Database.Postgres)
				if err != nil {
					return err
				}
				if err := pg.Ping(gctx); err != nil {
					pg.Close()
					return err
				}
				b.pg = pg
				return nil
			}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		})
	}

	if cfg.UsesRedis() {
		g.Go(func() error {
			return retryWithBackoff(func() error {
				rdb, err := database.NewRedis(cfg.Database.Redis)
				if err != nil {
					return err
				}
				if err := rdb.Ping(gctx); err != nil {
					rdb.Close()
					return err
				}
				b.redis = rdb
				return nil
			}, 10, 2*time.Second, zapLog, "Redis connection")
		})
	}

	if cfg.UsesElasticsearch() {
		g.Go(func() error {
			return retryWithBackoff(func() error {
				es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
				if err != nil {
					return err
				}
				if err := es.Ping(gctx); err != nil {
					return err
				}
				b.es = es
				return nil
			}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		})
	}

	if err := g.Wait(); err != nil {
		b.Close()
		return nil, err
	}

	if err := b.build(ctx, cfg, zapLog); err != nil {
		b.Close()
		return nil, err
	}
	return b, nil
}

func (b *backends) build(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) error {
	if b.pg != nil {
		repo := catalog.NewPostgresRepository(b.pg.DB)
		if cfg.Catalog.Seed {
			if err := repo.Seed(ctx, catalog.SeedEmployers()); err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
		}
		b.catalog = repo
	} else {
		b.catalog = catalog.NewMemoryRepository(catalog.SeedEmployers())
	}

	b.board = announcements.NewMemoryBoard(announcements.SeedAnnouncements())

	var store placement.Store = placement.NewMemoryStore()
	if b.redis != nil {
		store = placement.NewRedisStore(b.redis.Client, time.Duration(cfg.Session.TTL)*time.Second)
	}
	b.sessions = placement.NewService(store)

	if b.es != nil {
		b.index = search.NewIndex(b.es.Client, cfg.Search.Index)
		created, err := b.index.EnsureIndex(ctx)
		if err != nil {
			return fmt.Errorf("ensure search index: %w", err)
		}
		if created {
			zapLog.Info("search index created", zap.String("index", cfg.Search.Index))
		}
		employers, err := b.catalog.List(ctx, catalog.Filter{})
		if err != nil {
			return fmt.Errorf("list catalog for search: %w", err)
		}
		// Reindex failures are not fatal.
		if err := b.index.Reindex(ctx, employers); err != nil {
			zapLog.Warn("search reindex incomplete", zap.Error(err))
		}
	}

	n := cfg.Notifications
	if n.Email.Enabled || n.SMS.Enabled || cfg.Reminders.Enabled {
		awsCfg, err := awsclients.LoadConfig(ctx, n.AWS.Region)
		if err != nil {
			return err
		}
		b.notifier = notify.NewNotifier(notify.Config{
			EmailEnabled:  n.Email.Enabled,
			SMSEnabled:    n.SMS.Enabled,
			FromEmail:     n.Email.FromEmail,
			RatePerSecond: n.RatePerSecond,
		}, awsclients.NewSESClient(awsCfg), awsclients.NewSNSClient(awsCfg), adapt(zapLog))
	} else {
		b.notifier = notify.NewNotifier(notify.Config{}, nil, nil, adapt(zapLog))
	}

	zapLog.Info("backends ready",
		zap.String("catalog", cfg.Catalog.Backend),
		zap.String("sessions", cfg.Session.Backend),
		zap.Bool("search", b.index != nil),
		zap.Bool("email", n.Email.Enabled),
		zap.Bool("sms", n.SMS.Enabled),
	)
	return nil
}

// ping reports the first backend that does not answer.
func (b *backends) ping(ctx context.Context) error {
	if b.pg != nil {
		if err := b.pg.Ping(ctx); err != nil {
			return err
		}
	}
	if b.redis != nil {
		if err := b.redis.Ping(ctx); err != nil {
			return err
		}
	}
	if b.es != nil {
		if err := b.es.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (b *backends) Close() {
	if b.pg != nil {
		b.pg.Close()
	}
	if b.redis != nil {
		b.redis.Close()
	}
}
