package store

import (
	"sort"

	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	sdk "github.com/izqui/govote/types"
)

const (
	defaultIAVLCacheSize = 10000
)

// CommitID identifies a committed store version.
type CommitID struct {
	Version int64
	Hash    []byte
}

// load the iavl store
func LoadIAVLStore(db dbm.DB, version int64) (*IavlStore, error) {
	tree := iavl.NewMutableTree(db, defaultIAVLCacheSize)
	if _, err := tree.LoadVersion(version); err != nil {
		return nil, err
	}
	return newIAVLStore(tree), nil
}

//----------------------------------------

var _ sdk.KVStore = (*IavlStore)(nil)

// IavlStore implements KVStore over a versioned merkle tree. Every Commit
// persists a new immutable version; historical versions stay readable until
// pruned, which is what snapshot-style reads rely on.
type IavlStore struct {

	// The underlying tree.
	Tree *iavl.MutableTree
}

// CONTRACT: tree should be fully loaded.
func newIAVLStore(tree *iavl.MutableTree) *IavlStore {
	return &IavlStore{
		Tree: tree,
	}
}

// Implements Committer.
func (st *IavlStore) Commit() CommitID {
	hash, version, err := st.Tree.SaveVersion()
	if err != nil {
		panic(err)
	}
	return CommitID{
		Version: version,
		Hash:    hash,
	}
}

// Implements Committer.
func (st *IavlStore) LastCommitID() CommitID {
	return CommitID{
		Version: st.Tree.Version(),
		Hash:    st.Tree.Hash(),
	}
}

// VersionExists returns whether or not a given version is stored.
func (st *IavlStore) VersionExists(version int64) bool {
	return st.Tree.VersionExists(version)
}

// Implements KVStore.
func (st *IavlStore) Get(key []byte) []byte {
	_, v := st.Tree.Get(key)
	return v
}

// Implements KVStore.
func (st *IavlStore) Set(key, value []byte) {
	st.Tree.Set(key, value)
}

// Implements KVStore.
func (st *IavlStore) Has(key []byte) bool {
	return st.Tree.Has(key)
}

// Implements KVStore.
func (st *IavlStore) Delete(key []byte) {
	st.Tree.Remove(key)
}

// GetVersioned gets the value under the key at the specified store version.
// Returns nil if the version or the key does not exist.
func (st *IavlStore) GetVersioned(key []byte, version int64) []byte {
	_, v := st.Tree.GetVersioned(key, version)
	return v
}

// Implements KVStore.
func (st *IavlStore) Iterator(start, end []byte) sdk.Iterator {
	return st.iterator(start, end, true)
}

// Implements KVStore.
func (st *IavlStore) ReverseIterator(start, end []byte) sdk.Iterator {
	return st.iterator(start, end, false)
}

func (st *IavlStore) iterator(start, end []byte, ascending bool) sdk.Iterator {
	var items []kvPair
	st.Tree.IterateRange(start, end, true, func(key, value []byte) bool {
		items = append(items, kvPair{key: key, value: value})
		return false
	})
	if !ascending {
		sort.Slice(items, func(i, j int) bool { return string(items[i].key) > string(items[j].key) })
	}
	return &sliceIterator{items: items}
}

//----------------------------------------

type kvPair struct {
	key   []byte
	value []byte
}

// sliceIterator walks a materialized snapshot of a key range. The engine's
// ranges (ballots of one vote, checkpoints of one holder) are small and the
// snapshot keeps iteration stable under writes to the underlying tree.
type sliceIterator struct {
	items []kvPair
	pos   int
}

var _ sdk.Iterator = (*sliceIterator)(nil)

func (it *sliceIterator) Valid() bool {
	return it.pos < len(it.items)
}

func (it *sliceIterator) Next() {
	it.pos++
}

func (it *sliceIterator) Key() []byte {
	return it.items[it.pos].key
}

func (it *sliceIterator) Value() []byte {
	return it.items[it.pos].value
}

func (it *sliceIterator) Close() {}
