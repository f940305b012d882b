// Package storage define el espacio plano de claves donde se guardan las
// colecciones serializadas de la tienda.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indica que la clave no existe
var ErrNotFound = errors.New("key not found")

// KV es un almacén clave/valor de blobs. Cada escritura reemplaza el valor completo.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
