// Package cache keeps recently read movies in Redis so the retrieval
// endpoint can skip the database.
package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"movie-demo/internal/config"
	"movie-demo/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// tombstone marks a recently invalidated movie. While it is present, Set
// cannot repopulate the key, so a reader that loaded the row before an
// update or delete cannot put the stale copy back.
const tombstone = "-"

// DefaultTombstoneTTL bounds how long an invalidated key refuses writes. It
// should outlive the slowest store read.
const DefaultTombstoneTTL = 30 * time.Second

type MovieCache struct {
	client       *redis.Client
	ttl          time.Duration
	tombstoneTTL time.Duration
	prefix       string
	logger       *logrus.Logger
}

// NewRedisClient connects and pings Redis. It returns nil when caching is
// disabled or the server is unreachable; callers then run without a cache.
func NewRedisClient(cfg config.RedisConfig, logger *logrus.Logger) *redis.Client {
	if !cfg.Enabled || cfg.Addr == "" {
		return nil
	}

	var tlsConf *tls.Config
	if cfg.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      cfg.Addr,
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: tlsConf,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).WithField("addr", cfg.Addr).Warn("Redis unavailable, movie cache disabled")
		_ = client.Close()
		return nil
	}

	logger.WithField("addr", cfg.Addr).Info("Redis connection established")
	return client
}

func NewMovieCache(client *redis.Client, cfg config.RedisConfig, logger *logrus.Logger) *MovieCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	tombstoneTTL := cfg.TombstoneTTL
	if tombstoneTTL <= 0 {
		tombstoneTTL = DefaultTombstoneTTL
	}
	return &MovieCache{
		client:       client,
		ttl:          ttl,
		tombstoneTTL: tombstoneTTL,
		prefix:       cfg.Prefix,
		logger:       logger,
	}
}

func (c *MovieCache) key(id uint) string {
	return fmt.Sprintf("%s:movie:%d", c.prefix, id)
}

// Get reports a miss on any Redis or decode failure and while the key is
// tombstoned.
func (c *MovieCache) Get(ctx context.Context, id uint) (*models.Movie, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WithError(err).WithField("id", id).Warn("Movie cache read failed")
		}
		return nil, false
	}
	if string(raw) == tombstone {
		return nil, false
	}

	var movie models.Movie
	if err := json.Unmarshal(raw, &movie); err != nil {
		c.logger.WithError(err).WithField("id", id).Warn("Discarding undecodable cache entry")
		return nil, false
	}
	return &movie, true
}

// Set stores movie only when its key is empty. An existing entry or a
// tombstone left by Delete wins.
func (c *MovieCache) Set(ctx context.Context, movie *models.Movie) {
	raw, err := json.Marshal(movie)
	if err != nil {
		return
	}
	stored, err := c.client.SetNX(ctx, c.key(movie.ID), raw, c.ttl).Result()
	if err != nil {
		c.logger.WithError(err).WithField("id", movie.ID).Warn("Movie cache write failed")
		return
	}
	if !stored {
		c.logger.WithField("id", movie.ID).Debug("Movie cache key occupied, write skipped")
	}
}

// Delete replaces the entry with a short-lived tombstone.
func (c *MovieCache) Delete(ctx context.Context, id uint) {
	if err := c.client.Set(ctx, c.key(id), tombstone, c.tombstoneTTL).Err(); err != nil {
		c.logger.WithError(err).WithField("id", id).Warn("Movie cache invalidation failed")
	}
}
