package media

import "context"

// Store persiste binarios de imágenes y devuelve la URL pública del objeto.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
