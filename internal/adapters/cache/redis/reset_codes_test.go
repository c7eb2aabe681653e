package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"pawfam-api/internal/platform/apperr"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis simula SET/GET/DEL sobre un map, sin expiración real.
type fakeRedis struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failGet bool
}

func newFake() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, exp time.Duration) *goredis.StatusCmd {
	f.data[key] = value.(string)
	f.ttls[key] = exp
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *goredis.StringCmd {
	if f.failGet {
		return goredis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

func TestResetCodeStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	f := newFake()
	s := NewResetCodeStore(f)

	require.NoError(t, s.Save(ctx, "Ana@Mail.com", "AB12CD", 10*time.Minute))
	assert.Equal(t, 10*time.Minute, f.ttls["pawfam:reset:ana@mail.com"])

	code, err := s.Get(ctx, "ana@mail.com")
	require.NoError(t, err)
	assert.Equal(t, "AB12CD", code)

	require.NoError(t, s.Delete(ctx, "ANA@mail.com"))
	_, err = s.Get(ctx, "ana@mail.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestResetCodeStore_GetPropagatesErrors(t *testing.T) {
	f := newFake()
	f.failGet = true
	s := NewResetCodeStore(f)

	_, err := s.Get(context.Background(), "ana@mail.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}
