package store

import (
	"fmt"

	dbm "github.com/tendermint/tendermint/libs/db"

	sdk "github.com/izqui/govote/types"
)

// CommitMultiStore mounts one iavl store per StoreKey over a shared backing
// database. Commit persists every mounted store and returns the new version.
type CommitMultiStore struct {
	db     dbm.DB
	stores map[sdk.StoreKey]*IavlStore
	keys   []sdk.StoreKey
}

var _ sdk.MultiStore = (*CommitMultiStore)(nil)

func NewCommitMultiStore(db dbm.DB) *CommitMultiStore {
	return &CommitMultiStore{
		db:     db,
		stores: make(map[sdk.StoreKey]*IavlStore),
	}
}

// MountStore registers a store key. Must be called before LoadLatestVersion.
func (ms *CommitMultiStore) MountStore(key sdk.StoreKey) {
	if _, ok := ms.stores[key]; ok {
		panic(fmt.Sprintf("store key %s already mounted", key.Name()))
	}
	ms.stores[key] = nil
	ms.keys = append(ms.keys, key)
}

// LoadLatestVersion loads every mounted store at its latest committed
// version. Each store gets its own prefixed view of the backing db.
func (ms *CommitMultiStore) LoadLatestVersion() error {
	for _, key := range ms.keys {
		db := dbm.NewPrefixDB(ms.db, []byte("s/"+key.Name()+"/"))
		tree, err := LoadIAVLStore(db, 0)
		if err != nil {
			return err
		}
		ms.stores[key] = tree
	}
	return nil
}

// Implements MultiStore.
func (ms *CommitMultiStore) GetKVStore(key sdk.StoreKey) sdk.KVStore {
	store, ok := ms.stores[key]
	if !ok || store == nil {
		panic(fmt.Sprintf("store key %s not mounted or not loaded", key.Name()))
	}
	return store
}

// GetCommitStore returns the underlying iavl store for versioned reads.
func (ms *CommitMultiStore) GetCommitStore(key sdk.StoreKey) *IavlStore {
	store, ok := ms.stores[key]
	if !ok || store == nil {
		panic(fmt.Sprintf("store key %s not mounted or not loaded", key.Name()))
	}
	return store
}

// Commit persists every mounted store and returns the highest version.
func (ms *CommitMultiStore) Commit() CommitID {
	var last CommitID
	for _, key := range ms.keys {
		id := ms.stores[key].Commit()
		if id.Version > last.Version {
			last = id
		}
	}
	return last
}

// Implements MultiStore.
func (ms *CommitMultiStore) CacheMultiStore() sdk.CacheMultiStore {
	cms := &cacheMultiStore{
		stores: make(map[sdk.StoreKey]*cacheKVStore, len(ms.stores)),
	}
	for key, store := range ms.stores {
		cms.stores[key] = newCacheKVStore(store)
	}
	return cms
}

//----------------------------------------

// cacheMultiStore cache-wraps every store of its parent.
type cacheMultiStore struct {
	stores map[sdk.StoreKey]*cacheKVStore
}

var _ sdk.CacheMultiStore = (*cacheMultiStore)(nil)

func (cms *cacheMultiStore) GetKVStore(key sdk.StoreKey) sdk.KVStore {
	store, ok := cms.stores[key]
	if !ok {
		panic(fmt.Sprintf("store key %s not mounted", key.Name()))
	}
	return store
}

func (cms *cacheMultiStore) CacheMultiStore() sdk.CacheMultiStore {
	nested := &cacheMultiStore{
		stores: make(map[sdk.StoreKey]*cacheKVStore, len(cms.stores)),
	}
	for key, store := range cms.stores {
		nested.stores[key] = newCacheKVStore(store)
	}
	return nested
}

// Write flushes every cache-wrapped store to its parent.
func (cms *cacheMultiStore) Write() {
	for _, store := range cms.stores {
		store.Write()
	}
}
