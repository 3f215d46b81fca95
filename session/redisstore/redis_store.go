// Package redisstore keeps the session in Redis so several dashboard
// processes on one host can share it.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/jrsteele09/go-admin-dashboard/internal/errors"
	"github.com/jrsteele09/go-admin-dashboard/session"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix  = "dashboard:session:"
	defaultTimeout = 3 * time.Second
)

var _ session.Store = (*RedisStore)(nil)

type RedisStore struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

type Option func(*RedisStore)

// WithPrefix namespaces every key.
func WithPrefix(prefix string) Option {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithTimeout bounds each Redis round trip.
func WithTimeout(d time.Duration) Option {
	return func(s *RedisStore) {
		s.timeout = d
	}
}

// Dial connects and pings the server before returning.
func Dial(addr, password string, db int, opts ...Option) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	s := New(rdb, opts...)
	ctx, cancel := s.context()
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("[redisstore Dial] ping %s: %w", addr, err)
	}
	return s, nil
}

// New wraps an existing client.
func New(client *redis.Client, opts ...Option) *RedisStore {
	s := &RedisStore{
		client:  client,
		prefix:  defaultPrefix,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Get(key string) (string, error) {
	ctx, cancel := s.context()
	defer cancel()

	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", session.ErrNotFound
	}
	if err != nil {
		return "", apperrors.Wrapf(err, "redis get %s", key)
	}
	return v, nil
}

// Put writes all values in a MULTI/EXEC block.
func (s *RedisStore) Put(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	ctx, cancel := s.context()
	defer cancel()

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, s.prefix+k, v, 0)
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrapf(err, "redis put")
	}
	return nil
}

// Delete issues a single DEL, which Redis applies atomically.
func (s *RedisStore) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ctx, cancel := s.context()
	defer cancel()

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = s.prefix + k
	}
	if err := s.client.Del(ctx, prefixed...).Err(); err != nil {
		return apperrors.Wrapf(err, "redis del")
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}
