// Package redis guarda los códigos de recuperación de contraseña con TTL nativo.
package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawfam-api/internal/platform/apperr"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "pawfam:reset:"

// cmdable es el subconjunto de *goredis.Client que usa el store.
type cmdable interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Get(ctx context.Context, key string) *goredis.StringCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

type ResetCodeStore struct {
	rdb cmdable
}

type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient crea el cliente y verifica la conexión con un PING.
func NewClient(ctx context.Context, opts Options) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func NewResetCodeStore(rdb cmdable) *ResetCodeStore {
	return &ResetCodeStore{rdb: rdb}
}

func key(email string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(email))
}

func (s *ResetCodeStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key(email), code, ttl).Err()
}

func (s *ResetCodeStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.rdb.Get(ctx, key(email)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", apperr.NotFound("reset code not found")
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (s *ResetCodeStore) Delete(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, key(email)).Err()
}
