package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("load booking: %w", NotFound("Booking not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, ErrNotFound, Kind(err))
	assert.Equal(t, "Booking not found", Message(err, "internal error"))
}

func TestMessageFallsBackForUnknownErrors(t *testing.T) {
	err := errors.New("pq: connection refused")

	assert.Nil(t, Kind(err))
	assert.Equal(t, "internal error", Message(err, "internal error"))
}

func TestBareSentinelUsesKindText(t *testing.T) {
	assert.Equal(t, "forbidden", Message(ErrForbidden, "x"))
	assert.Equal(t, "conflict", Conflict("").Error())
}
