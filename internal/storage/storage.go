// package storage provides the key-value persistence adapter backing the
// session and wishlist stores.
//
// The interface mirrors a browser's local storage: string keys, string
// values, synchronous access. SQLiteStore is the durable implementation;
// MemoryStore serves tests and ephemeral runs.
package storage

import "fmt"

// ErrKeyNotFound is returned by [Store.Get] for absent keys.
var ErrKeyNotFound = fmt.Errorf("key not found")

// Store defines string-keyed, string-valued persistence.
//
// Remove of an absent key is a no-op.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
