package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"pawfam-api/internal/platform/apperr"
)

var ErrNotFound = apperr.NotFound("not found")

// uniqueKey emula un índice único: dos documentos no pueden compartir un valor no vacío.
type uniqueKey[T any] struct {
	name  string
	value func(T) string
}

// collection es el almacén en memoria compartido por todos los repos:
// un map por id con índices únicos opcionales.
type collection[T any] struct {
	mu      sync.RWMutex
	byID    map[string]T
	id      func(T) string
	created func(T) time.Time
	unique  []uniqueKey[T]
}

func newCollection[T any](id func(T) string, created func(T) time.Time, unique ...uniqueKey[T]) *collection[T] {
	return &collection[T]{
		byID:    make(map[string]T),
		id:      id,
		created: created,
		unique:  unique,
	}
}

// conflictLocked requiere el lock tomado.
func (c *collection[T]) conflictLocked(v T) error {
	id := c.id(v)
	for _, u := range c.unique {
		want := strings.ToLower(strings.TrimSpace(u.value(v)))
		if want == "" {
			continue
		}
		for otherID, other := range c.byID {
			if otherID != id && strings.ToLower(strings.TrimSpace(u.value(other))) == want {
				return apperr.Conflict("duplicate " + u.name)
			}
		}
	}
	return nil
}

func (c *collection[T]) insert(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.id(v)
	if strings.TrimSpace(id) == "" {
		return apperr.Invalid("id required")
	}
	if _, exists := c.byID[id]; exists {
		return apperr.Conflict("duplicate id")
	}
	if err := c.conflictLocked(v); err != nil {
		return err
	}
	c.byID[id] = v
	return nil
}

func (c *collection[T]) replace(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.id(v)
	if _, exists := c.byID[id]; !exists {
		return ErrNotFound
	}
	if err := c.conflictLocked(v); err != nil {
		return err
	}
	c.byID[id] = v
	return nil
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

func (c *collection[T]) remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return ErrNotFound
	}
	delete(c.byID, id)
	return nil
}

// first devuelve el primer documento que cumple match (para búsquedas por índice único).
func (c *collection[T]) first(match func(T) bool) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, v := range c.byID {
		if match(v) {
			return v, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// filter devuelve más reciente primero; empate por id para que el orden sea estable.
func (c *collection[T]) filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, v := range c.byID {
		if match == nil || match(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := c.created(out[i]), c.created(out[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return c.id(out[i]) < c.id(out[j])
	})
	return out
}

func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}
