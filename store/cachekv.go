package store

import (
	"sort"

	sdk "github.com/izqui/govote/types"
)

// cValue is a buffered write. deleted and dirty are tracked separately so
// Write can replay deletions as well as sets.
type cValue struct {
	value   []byte
	deleted bool
	dirty   bool
}

// cacheKVStore buffers writes over a parent KVStore until Write is called.
// Reads fall through to the parent for keys never touched in the cache.
type cacheKVStore struct {
	cache  map[string]cValue
	parent sdk.KVStore
}

var _ sdk.KVStore = (*cacheKVStore)(nil)

func newCacheKVStore(parent sdk.KVStore) *cacheKVStore {
	return &cacheKVStore{
		cache:  make(map[string]cValue),
		parent: parent,
	}
}

// Implements KVStore.
func (ci *cacheKVStore) Get(key []byte) []byte {
	if cv, ok := ci.cache[string(key)]; ok {
		if cv.deleted {
			return nil
		}
		return cv.value
	}
	value := ci.parent.Get(key)
	ci.cache[string(key)] = cValue{value: value}
	return value
}

// Implements KVStore.
func (ci *cacheKVStore) Set(key, value []byte) {
	ci.cache[string(key)] = cValue{value: value, dirty: true}
}

// Implements KVStore.
func (ci *cacheKVStore) Has(key []byte) bool {
	return ci.Get(key) != nil
}

// Implements KVStore.
func (ci *cacheKVStore) Delete(key []byte) {
	ci.cache[string(key)] = cValue{deleted: true, dirty: true}
}

// Write flushes dirty entries to the parent in sorted key order for
// determinism.
func (ci *cacheKVStore) Write() {
	keys := make([]string, 0, len(ci.cache))
	for key, cv := range ci.cache {
		if cv.dirty {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		cv := ci.cache[key]
		if cv.deleted {
			ci.parent.Delete([]byte(key))
		} else if cv.value != nil {
			ci.parent.Set([]byte(key), cv.value)
		}
	}

	ci.cache = make(map[string]cValue)
}

// Implements KVStore.
func (ci *cacheKVStore) Iterator(start, end []byte) sdk.Iterator {
	return ci.iterator(start, end, true)
}

// Implements KVStore.
func (ci *cacheKVStore) ReverseIterator(start, end []byte) sdk.Iterator {
	return ci.iterator(start, end, false)
}

// iterator merges the parent range with the buffered writes into one sorted
// snapshot.
func (ci *cacheKVStore) iterator(start, end []byte, ascending bool) sdk.Iterator {
	merged := make(map[string][]byte)

	pIter := ci.parent.Iterator(start, end)
	for ; pIter.Valid(); pIter.Next() {
		merged[string(pIter.Key())] = pIter.Value()
	}
	pIter.Close()

	for key, cv := range ci.cache {
		if !cv.dirty || !inRange([]byte(key), start, end) {
			continue
		}
		if cv.deleted {
			delete(merged, key)
		} else {
			merged[key] = cv.value
		}
	}

	items := make([]kvPair, 0, len(merged))
	for key, value := range merged {
		items = append(items, kvPair{key: []byte(key), value: value})
	}
	sort.Slice(items, func(i, j int) bool {
		if ascending {
			return string(items[i].key) < string(items[j].key)
		}
		return string(items[i].key) > string(items[j].key)
	})
	return &sliceIterator{items: items}
}

func inRange(key, start, end []byte) bool {
	if start != nil && string(key) < string(start) {
		return false
	}
	if end != nil && string(key) >= string(end) {
		return false
	}
	return true
}
