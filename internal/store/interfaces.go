package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore persists small string values under string keys. It backs
// the client session: the token and the cached user summary.
//
// Get returns [ErrKeyNotFound] for a missing key. Remove of a missing key
// is not an error. Implementations are safe for concurrent use.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
