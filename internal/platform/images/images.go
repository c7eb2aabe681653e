// Package images normaliza las imágenes de catálogo: valida tamaño y,
// si hay un media.Store configurado, sube los data URIs y guarda la URL.
package images

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"pawfam-api/internal/platform/apperr"
	"pawfam-api/internal/ports/media"

	"github.com/google/uuid"
)

// MaxInlineChars es el límite por imagen (base64 incluido).
const MaxInlineChars = 7_000_000

var extByType = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// Normalize devuelve la lista final a persistir. Con store nil las imágenes quedan inline.
func Normalize(ctx context.Context, store media.Store, prefix string, in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, img := range in {
		img = strings.TrimSpace(img)
		if img == "" {
			continue
		}
		if len(img) > MaxInlineChars {
			return nil, apperr.Invalid("Image size too large. Please use smaller images.")
		}
		if store == nil || !strings.HasPrefix(img, "data:") {
			out = append(out, img)
			continue
		}

		contentType, data, err := decodeDataURI(img)
		if err != nil {
			return nil, err
		}
		ext := extByType[contentType]
		if ext == "" {
			ext = "bin"
		}
		key := fmt.Sprintf("%s/%s.%s", strings.Trim(prefix, "/"), uuid.NewString(), ext)

		url, err := store.Put(ctx, key, data, contentType)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		out = append(out, url)
	}
	return out, nil
}

// decodeDataURI soporta solo la forma base64: data:<type>;base64,<payload>.
func decodeDataURI(s string) (string, []byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", nil, apperr.Invalid("Invalid image data")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, apperr.Invalid("Invalid image data")
	}
	return strings.TrimSuffix(meta, ";base64"), data, nil
}
