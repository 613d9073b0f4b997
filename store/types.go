//nolint
package store

import "github.com/heirloom-one/heirloom"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = heirloom.ReadOnlyKVStore
type KVStore = heirloom.KVStore
type CacheableKVStore = heirloom.CacheableKVStore
type KVCacheWrap = heirloom.KVCacheWrap

// SetDeleter is a minimal interface for writing,
// Unifying KVStore and Batch.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Batch can write multiple ops atomically to an underlying store.
type Batch interface {
	SetDeleter
	Write() error
}
