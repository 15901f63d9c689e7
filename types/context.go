package types

import (
	"context"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

/*
Context carries the ambient state of a single operation: the mounted stores,
the caller-visible current time and the logger. It is an immutable value
object; With* methods return updated copies so a cache-wrapped child context
never leaks into its parent.
*/
type Context struct {
	context.Context
	ms        MultiStore
	blockTime time.Time
	logger    log.Logger
}

// NewContext creates a root context over a MultiStore. The supplied time is
// the caller-visible current time used for lazy vote-window expiry.
func NewContext(ms MultiStore, blockTime time.Time, logger log.Logger) Context {
	return Context{
		Context:   context.Background(),
		ms:        ms,
		blockTime: blockTime,
		logger:    logger,
	}
}

// is context nil
func (c Context) IsZero() bool {
	return c.ms == nil
}

// KVStore fetches a KVStore from the MultiStore.
func (c Context) KVStore(key StoreKey) KVStore {
	return c.ms.GetKVStore(key)
}

func (c Context) MultiStore() MultiStore { return c.ms }

func (c Context) BlockTime() time.Time { return c.blockTime }

func (c Context) Logger() log.Logger { return c.logger }

//----------------------------------------
// With* (setting a value)

func (c Context) WithMultiStore(ms MultiStore) Context {
	c.ms = ms
	return c
}

func (c Context) WithBlockTime(t time.Time) Context {
	c.blockTime = t
	return c
}

func (c Context) WithLogger(logger log.Logger) Context {
	c.logger = logger
	return c
}

// CacheContext returns a context whose stores are cache-wrapped, plus a
// writeCache function flushing the buffered writes to the parent. Discarding
// the context without calling writeCache drops every write, which is how
// callers get all-or-nothing semantics around multi-step mutations.
func (c Context) CacheContext() (cc Context, writeCache func()) {
	cms := c.ms.CacheMultiStore()
	cc = c.WithMultiStore(cms)
	return cc, cms.Write
}
