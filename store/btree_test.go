package store

import (
	"bytes"
	"testing"
)

func mustSet(t *testing.T, db KVStore, key, value []byte) {
	t.Helper()
	if err := db.Set(key, value); err != nil {
		t.Fatalf("cannot set %q: %+v", key, err)
	}
}

func mustDelete(t *testing.T, db KVStore, key []byte) {
	t.Helper()
	if err := db.Delete(key); err != nil {
		t.Fatalf("cannot delete %q: %+v", key, err)
	}
}

func assertValue(t *testing.T, db ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := db.Get(key)
	if err != nil {
		t.Fatalf("cannot get %q: %+v", key, err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("value mismatch for %q: want %q, got %q", key, want, got)
	}
	has, err := db.Has(key)
	if err != nil {
		t.Fatalf("cannot check %q: %+v", key, err)
	}
	if has != (want != nil) {
		t.Fatalf("has mismatch for %q: %v", key, has)
	}
}

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")
	assertValue(t, base, k, nil)
	mustSet(t, base, k, v)
	assertValue(t, base, k, v)
	mustDelete(t, base, k)
	assertValue(t, base, k, nil)
}

func TestBTreeCacheWrapWrite(t *testing.T) {
	base := MemStore()
	mustSet(t, base, []byte("a"), []byte("1"))

	cache := base.CacheWrap()
	mustSet(t, cache, []byte("b"), []byte("2"))
	mustDelete(t, cache, []byte("a"))

	// cache sees its own writes, base does not yet
	assertValue(t, cache, []byte("a"), nil)
	assertValue(t, cache, []byte("b"), []byte("2"))
	assertValue(t, base, []byte("a"), []byte("1"))
	assertValue(t, base, []byte("b"), nil)

	if err := cache.Write(); err != nil {
		t.Fatalf("cannot write cache: %+v", err)
	}
	assertValue(t, base, []byte("a"), nil)
	assertValue(t, base, []byte("b"), []byte("2"))
}

func TestBTreeCacheWrapDiscard(t *testing.T) {
	base := MemStore()
	mustSet(t, base, []byte("a"), []byte("1"))

	cache := base.CacheWrap()
	mustSet(t, cache, []byte("a"), []byte("overwritten"))
	mustSet(t, cache, []byte("b"), []byte("2"))
	cache.Discard()

	assertValue(t, base, []byte("a"), []byte("1"))
	assertValue(t, base, []byte("b"), nil)
}

func TestBTreeCacheWrapRecursive(t *testing.T) {
	base := MemStore()
	mustSet(t, base, []byte("a"), []byte("1"))

	outer := base.CacheWrap()
	inner := outer.CacheWrap()
	mustSet(t, inner, []byte("a"), []byte("2"))

	// inner write is only visible after both levels commit
	if err := inner.Write(); err != nil {
		t.Fatalf("cannot write inner cache: %+v", err)
	}
	assertValue(t, outer, []byte("a"), []byte("2"))
	assertValue(t, base, []byte("a"), []byte("1"))

	if err := outer.Write(); err != nil {
		t.Fatalf("cannot write outer cache: %+v", err)
	}
	assertValue(t, base, []byte("a"), []byte("2"))
}

func TestLogableStore(t *testing.T) {
	db, ops := LogableStore()

	mustSet(t, db, []byte("a"), []byte("1"))
	mustSet(t, db, []byte("b"), []byte("2"))
	mustDelete(t, db, []byte("a"))

	log := ops.ShowOps()
	if len(log) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(log))
	}
	if !log[0].IsSetOp() || !log[1].IsSetOp() || log[2].IsSetOp() {
		t.Fatalf("unexpected op kinds: %v", log)
	}
	if !bytes.Equal(log[2].Key(), []byte("a")) {
		t.Fatalf("unexpected delete key: %q", log[2].Key())
	}
}
