package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")

	// Empty store has no value.
	got, err := base.Get(k)
	assert.NoError(t, err)
	assert.Nil(t, got)

	has, err := base.Has(k)
	assert.NoError(t, err)
	assert.False(t, has)

	// Set a value and read it back.
	assert.NoError(t, base.Set(k, v))
	got, err = base.Get(k)
	assert.NoError(t, err)
	assert.Equal(t, v, got)

	// Delete removes it again.
	assert.NoError(t, base.Delete(k))
	got, err = base.Get(k)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheWrapWrite(t *testing.T) {
	base := MemStore()
	assert.NoError(t, base.Set([]byte("a"), []byte("1")))

	cache := base.CacheWrap()

	// The wrap sees the parent state.
	got, err := cache.Get([]byte("a"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	// Writes inside the wrap are invisible to the parent until Write.
	assert.NoError(t, cache.Set([]byte("b"), []byte("2")))
	assert.NoError(t, cache.Delete([]byte("a")))

	got, err = base.Get([]byte("b"))
	assert.NoError(t, err)
	assert.Nil(t, got)
	got, err = base.Get([]byte("a"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	assert.NoError(t, cache.Write())

	got, err = base.Get([]byte("b"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
	got, err = base.Get([]byte("a"))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheWrapDiscard(t *testing.T) {
	base := MemStore()
	assert.NoError(t, base.Set([]byte("a"), []byte("1")))

	cache := base.CacheWrap()
	assert.NoError(t, cache.Set([]byte("a"), []byte("overwritten")))
	assert.NoError(t, cache.Set([]byte("b"), []byte("2")))
	cache.Discard()

	// Nothing leaked into the parent.
	got, err := base.Get([]byte("a"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
	got, err = base.Get([]byte("b"))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestNestedCacheWraps(t *testing.T) {
	base := MemStore()
	outer := base.CacheWrap()
	inner := outer.CacheWrap()

	assert.NoError(t, inner.Set([]byte("k"), []byte("v")))
	assert.NoError(t, inner.Write())

	// Inner write is visible to outer but not to base.
	got, err := outer.Get([]byte("k"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
	got, err = base.Get([]byte("k"))
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, outer.Write())
	got, err = base.Get([]byte("k"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}
