package oracle

import (
	"encoding/binary"
	"fmt"

	sdk "github.com/izqui/govote/types"
)

// StartCheckpoint is the checkpoint in effect before any advance.
const StartCheckpoint = int64(1)

// Keeper maintains checkpointed voting-power balances. A holder's power is a
// step function over checkpoints: writing at checkpoint N appends a record
// and every read at a checkpoint < N keeps returning the record that was
// latest back then. That immutability is what makes vote snapshots
// manipulation-proof.
type Keeper struct {
	storeKey  sdk.StoreKey
	codespace sdk.CodespaceType
}

func NewKeeper(storeKey sdk.StoreKey, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  storeKey,
		codespace: codespace,
	}
}

// CurrentCheckpoint returns the checkpoint currently being formed.
func (k Keeper) CurrentCheckpoint(ctx sdk.Context) int64 {
	kvStore := ctx.KVStore(k.storeKey)
	bz := kvStore.Get(CurrentCheckpointKey)
	if bz == nil {
		return StartCheckpoint
	}
	return int64(binary.BigEndian.Uint64(bz))
}

// AdvanceCheckpoint finalizes the current checkpoint and opens the next one.
// Returns the new current checkpoint.
func (k Keeper) AdvanceCheckpoint(ctx sdk.Context) int64 {
	next := k.CurrentCheckpoint(ctx) + 1
	bz := make([]byte, checkpointLength)
	binary.BigEndian.PutUint64(bz, uint64(next))
	ctx.KVStore(k.storeKey).Set(CurrentCheckpointKey, bz)
	return next
}

// SetPower records a holder's power as of the current checkpoint and adjusts
// the total in existence accordingly.
func (k Keeper) SetPower(ctx sdk.Context, addr sdk.AccAddress, power int64) sdk.Error {
	if power < 0 {
		return ErrInvalidPower(k.codespace, fmt.Sprintf("power must not be negative, got %d", power))
	}
	checkpoint := k.CurrentCheckpoint(ctx)
	old := k.PowerOfAt(ctx, addr, checkpoint)

	k.setPowerRecord(ctx, addr, checkpoint, power)
	k.setTotalRecord(ctx, checkpoint, k.TotalPowerAt(ctx, checkpoint)-old+power)
	return nil
}

// Transfer moves power between holders at the current checkpoint. The total
// in existence is unchanged; reads at earlier checkpoints are unaffected.
func (k Keeper) Transfer(ctx sdk.Context, from, to sdk.AccAddress, amount int64) sdk.Error {
	if amount <= 0 {
		return ErrInvalidPower(k.codespace, fmt.Sprintf("transfer amount must be positive, got %d", amount))
	}
	checkpoint := k.CurrentCheckpoint(ctx)
	fromPower := k.PowerOfAt(ctx, from, checkpoint)
	if fromPower < amount {
		return ErrInsufficientPower(k.codespace,
			fmt.Sprintf("holder %s has %d power, cannot transfer %d", from.String(), fromPower, amount))
	}
	toPower := k.PowerOfAt(ctx, to, checkpoint)

	k.setPowerRecord(ctx, from, checkpoint, fromPower-amount)
	k.setPowerRecord(ctx, to, checkpoint, toPower+amount)
	return nil
}

// PowerOfAt returns the holder's power as of the given checkpoint: the value
// of the latest record at or before it, zero if none.
func (k Keeper) PowerOfAt(ctx sdk.Context, addr sdk.AccAddress, checkpoint int64) int64 {
	prefix := buildPowerRecordKeyPrefix(addr)
	end := buildPowerRecordKey(addr, checkpoint+1)
	return k.latestRecord(ctx, prefix, end)
}

// TotalPowerAt returns the total power in existence as of the checkpoint.
func (k Keeper) TotalPowerAt(ctx sdk.Context, checkpoint int64) int64 {
	end := buildTotalRecordKey(checkpoint + 1)
	return k.latestRecord(ctx, PrefixForTotalRecordKey, end)
}

// PowerOf returns the holder's power at the current checkpoint.
func (k Keeper) PowerOf(ctx sdk.Context, addr sdk.AccAddress) int64 {
	return k.PowerOfAt(ctx, addr, k.CurrentCheckpoint(ctx))
}

// TotalPower returns the total power at the current checkpoint.
func (k Keeper) TotalPower(ctx sdk.Context) int64 {
	return k.TotalPowerAt(ctx, k.CurrentCheckpoint(ctx))
}

func (k Keeper) latestRecord(ctx sdk.Context, start, end []byte) int64 {
	kvStore := ctx.KVStore(k.storeKey)
	iterator := kvStore.ReverseIterator(start, end)
	defer iterator.Close()

	if !iterator.Valid() {
		return 0
	}
	return int64(binary.BigEndian.Uint64(iterator.Value()))
}

func (k Keeper) setPowerRecord(ctx sdk.Context, addr sdk.AccAddress, checkpoint, power int64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(power))
	ctx.KVStore(k.storeKey).Set(buildPowerRecordKey(addr, checkpoint), bz)
}

func (k Keeper) setTotalRecord(ctx sdk.Context, checkpoint, total int64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(total))
	ctx.KVStore(k.storeKey).Set(buildTotalRecordKey(checkpoint), bz)
}
