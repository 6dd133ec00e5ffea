package ports

import "context"

// PhotoStore puerto de salida para las fotos de kilometraje de las sesiones chrono.
// Save devuelve la referencia persistida (clave o URL pública).
// Delete recibe la misma clave que Save; una clave inexistente no es error.
type PhotoStore interface {
	Save(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}
