// Package storage provides the key-value snapshot storage the cart store
// persists into. Implementations must treat values as opaque bytes; the
// cart owns the serialization format.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("snapshot not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
