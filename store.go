package astroport

// ReadOnlyKVStore is a simple interface to read data out of a
// key-value store.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)
}

// SetDeleter is a minimal interface for writing.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is a simple interface to get/set data.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter

	// NewBatch returns a batch that can write multiple ops atomically.
	NewBatch() Batch
}

// Batch can write multiple ops atomically to an underlying KVStore.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore is a KVStore that can be wrapped with a cache.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a layer that buffers all writes. They are applied to
// the backing store as one unit with Write, or thrown away with
// Discard. This is the rollback primitive of the whole system: the
// host wraps every invocation and discards the wrap when any command
// in the chain fails.
type KVCacheWrap interface {
	// CacheableKVStore allows nested cache wraps.
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this wrap and releases all data.
	Discard()
}
