package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"pawfam-api/internal/domain/users"
)

type resetEntry struct {
	code      string
	expiresAt time.Time
}

// resetCodeStore es el fallback sin Redis: expira en lectura.
type resetCodeStore struct {
	mu    sync.Mutex
	codes map[string]resetEntry
	now   func() time.Time
}

func NewResetCodeStore() users.ResetCodeStore {
	return &resetCodeStore{
		codes: make(map[string]resetEntry),
		now:   time.Now,
	}
}

func (s *resetCodeStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[strings.ToLower(email)] = resetEntry{code: code, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *resetCodeStore) Get(ctx context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	e, ok := s.codes[key]
	if !ok {
		return "", ErrNotFound
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.codes, key)
		return "", ErrNotFound
	}
	return e.code, nil
}

func (s *resetCodeStore) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.codes, strings.ToLower(email))
	return nil
}
