package events

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Connection check timeout

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library

	"user_directory/internal/config" // Redis settings
)

// Redis keys used by the event log
const (
	ListKey = "users:events" // Capped list, newest first
	Channel = "users:events" // Pub/sub channel for live consumers
)

// RedisLog stores events in a capped Redis list and publishes each one
type RedisLog struct {
	rdb *redis.Client
}

// NewRedisLog wraps an existing client
func NewRedisLog(rdb *redis.Client) *RedisLog {
	return &RedisLog{rdb: rdb}
}

// Publish pushes e onto the list, trims it and announces it on Channel
func (r *RedisLog) Publish(ctx context.Context, e Event) error {
	b, err := json.Marshal(e) // Marshal value to JSON
	if err != nil {
		return err
	}
	pipe := r.rdb.TxPipeline()
	pipe.LPush(ctx, ListKey, b)
	pipe.LTrim(ctx, ListKey, 0, Capacity-1)
	pipe.Publish(ctx, Channel, b)
	_, err = pipe.Exec(ctx)
	return err
}

// Recent reads up to limit events, newest first
func (r *RedisLog) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		return []Event{}, nil
	}
	vals, err := r.rdb.LRange(ctx, ListKey, 0, int64(limit-1)).Result()
	if err == redis.Nil {
		return []Event{}, nil // Key does not exist
	} else if err != nil {
		return nil, err
	}
	out := make([]Event, 0, len(vals))
	for _, v := range vals {
		var e Event
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Close releases the Redis connection pool
func (r *RedisLog) Close() error {
	return r.rdb.Close()
}

// FromConfig picks the Redis log when REDIS_ADDR is set and answers a ping,
// and the in-process log otherwise
func FromConfig(ctx context.Context, cfg *config.Config) Log {
	if cfg.RedisAddr == "" {
		return NewMemoryLog()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logrus.WithFields(logrus.Fields{
			"addr":  cfg.RedisAddr,
			"error": err.Error(),
		}).Warn("Redis unavailable, keeping events in memory")
		_ = rdb.Close()
		return NewMemoryLog()
	}
	logrus.WithField("addr", cfg.RedisAddr).Info("Event log backed by Redis")
	return NewRedisLog(rdb)
}
