package store

import astroport "github.com/asteroidprotocol/astroport-core"

// Move references for all storage types into this package for shorter
// names everywhere.

type ReadOnlyKVStore = astroport.ReadOnlyKVStore
type KVStore = astroport.KVStore
type SetDeleter = astroport.SetDeleter
type Batch = astroport.Batch
type CacheableKVStore = astroport.CacheableKVStore
type KVCacheWrap = astroport.KVCacheWrap
