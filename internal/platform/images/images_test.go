package images

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"pawfam-api/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	keys  []string
	types []string
}

func (f *fakeStore) Put(_ context.Context, key string, _ []byte, contentType string) (string, error) {
	f.keys = append(f.keys, key)
	f.types = append(f.types, contentType)
	return "https://cdn.test/" + key, nil
}

func TestNormalizeUploadsDataURIs(t *testing.T) {
	store := &fakeStore{}
	png := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	out, err := Normalize(context.Background(), store, "daycare-centers", []string{png, "https://example.com/a.jpg", "  "})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.True(t, strings.HasPrefix(out[0], "https://cdn.test/daycare-centers/"))
	assert.True(t, strings.HasSuffix(out[0], ".png"))
	assert.Equal(t, "https://example.com/a.jpg", out[1])
	assert.Equal(t, []string{"image/png"}, store.types)
}

func TestNormalizeKeepsInlineWithoutStore(t *testing.T) {
	png := "data:image/png;base64,AAAA"
	out, err := Normalize(context.Background(), nil, "x", []string{png})
	require.NoError(t, err)
	assert.Equal(t, []string{png}, out)
}

func TestNormalizeRejectsOversizedImage(t *testing.T) {
	huge := "data:image/png;base64," + strings.Repeat("A", MaxInlineChars)
	_, err := Normalize(context.Background(), nil, "x", []string{huge})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestNormalizeRejectsMalformedDataURI(t *testing.T) {
	_, err := Normalize(context.Background(), &fakeStore{}, "x", []string{"data:image/png,raw"})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}
