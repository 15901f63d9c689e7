package types

// StoreKey names a mounted store inside the MultiStore.
type StoreKey interface {
	Name() string
	String() string
}

// KVStoreKey is used for stores backed by a committing KV tree.
type KVStoreKey struct {
	name string
}

func NewKVStoreKey(name string) *KVStoreKey {
	return &KVStoreKey{name: name}
}

func (key *KVStoreKey) Name() string { return key.name }

func (key *KVStoreKey) String() string { return "KVStoreKey(" + key.name + ")" }

// Iterator over a key range. Exhausted iterators must still be Closed.
type Iterator interface {
	Valid() bool
	Next()
	Key() []byte
	Value() []byte
	Close()
}

// KVStore is an ordered byte-keyed store.
//
// Iterator ranges are [start, end); a nil start iterates from the first key
// and a nil end through the last.
type KVStore interface {
	Get(key []byte) []byte
	Set(key, value []byte)
	Has(key []byte) bool
	Delete(key []byte)
	Iterator(start, end []byte) Iterator
	ReverseIterator(start, end []byte) Iterator
}

// MultiStore holds the mounted KVStores.
type MultiStore interface {
	GetKVStore(key StoreKey) KVStore

	// CacheMultiStore cache-wraps every mounted store; writes are buffered
	// until Write is called on the returned store.
	CacheMultiStore() CacheMultiStore
}

// CacheMultiStore buffers writes on top of a parent MultiStore.
type CacheMultiStore interface {
	MultiStore

	// Write flushes the buffered writes to the parent atomically with
	// respect to the single-writer execution model.
	Write()
}

// KVStorePrefixIterator iterates over all keys with the given prefix in
// ascending order.
func KVStorePrefixIterator(kvs KVStore, prefix []byte) Iterator {
	return kvs.Iterator(prefix, PrefixEndBytes(prefix))
}

// KVStoreReversePrefixIterator iterates over all keys with the given prefix
// in descending order.
func KVStoreReversePrefixIterator(kvs KVStore, prefix []byte) Iterator {
	return kvs.ReverseIterator(prefix, PrefixEndBytes(prefix))
}

// PrefixEndBytes returns the []byte that would end a range query for all
// keys with a certain prefix. The result is nil when the prefix is entirely
// 0xff bytes, denoting an unbounded end.
func PrefixEndBytes(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for {
		if end[len(end)-1] != byte(255) {
			end[len(end)-1]++
			break
		}
		end = end[:len(end)-1]
		if len(end) == 0 {
			end = nil
			break
		}
	}
	return end
}
