package oracle

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/izqui/govote/store"
	sdk "github.com/izqui/govote/types"
)

func createTestInput(t *testing.T) (sdk.Context, Keeper) {
	key := sdk.NewKVStoreKey("oracle")
	ms := store.NewCommitMultiStore(dbm.NewMemDB())
	ms.MountStore(key)
	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, time.Unix(0, 0), log.NewNopLogger())
	return ctx, NewKeeper(key, DefaultCodespace)
}

func addr(b byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, sdk.AddrLen))
}

func TestSetPowerAdjustsTotal(t *testing.T) {
	ctx, keeper := createTestInput(t)

	require.Equal(t, StartCheckpoint, keeper.CurrentCheckpoint(ctx))
	require.Equal(t, int64(0), keeper.TotalPower(ctx))

	require.NoError(t, keeper.SetPower(ctx, addr(0x01), 60))
	require.NoError(t, keeper.SetPower(ctx, addr(0x02), 40))
	require.Equal(t, int64(100), keeper.TotalPower(ctx))

	// overwriting replaces, it does not add
	require.NoError(t, keeper.SetPower(ctx, addr(0x01), 10))
	require.Equal(t, int64(10), keeper.PowerOf(ctx, addr(0x01)))
	require.Equal(t, int64(50), keeper.TotalPower(ctx))

	err := keeper.SetPower(ctx, addr(0x01), -1)
	require.Error(t, err)
	require.Equal(t, CodeInvalidPower, err.Code())
}

func TestSealedCheckpointsAreImmutable(t *testing.T) {
	ctx, keeper := createTestInput(t)

	require.NoError(t, keeper.SetPower(ctx, addr(0x01), 60))
	require.NoError(t, keeper.SetPower(ctx, addr(0x02), 40))
	sealed := keeper.CurrentCheckpoint(ctx)
	require.Equal(t, int64(2), keeper.AdvanceCheckpoint(ctx))

	// writes at the new checkpoint leave the sealed one untouched
	require.NoError(t, keeper.SetPower(ctx, addr(0x01), 5))
	require.NoError(t, keeper.SetPower(ctx, addr(0x03), 95))

	require.Equal(t, int64(60), keeper.PowerOfAt(ctx, addr(0x01), sealed))
	require.Equal(t, int64(0), keeper.PowerOfAt(ctx, addr(0x03), sealed))
	require.Equal(t, int64(100), keeper.TotalPowerAt(ctx, sealed))

	require.Equal(t, int64(5), keeper.PowerOf(ctx, addr(0x01)))
	require.Equal(t, int64(140), keeper.TotalPower(ctx))
}

func TestReadsFallBackToLatestRecord(t *testing.T) {
	ctx, keeper := createTestInput(t)

	require.NoError(t, keeper.SetPower(ctx, addr(0x01), 30))
	keeper.AdvanceCheckpoint(ctx)
	keeper.AdvanceCheckpoint(ctx)

	// no record at checkpoints 2 and 3, the checkpoint 1 value carries
	require.Equal(t, int64(30), keeper.PowerOfAt(ctx, addr(0x01), 3))
	require.Equal(t, int64(30), keeper.TotalPowerAt(ctx, 3))

	// nothing existed before the first record
	require.Equal(t, int64(0), keeper.PowerOfAt(ctx, addr(0x01), 0))
	require.Equal(t, int64(0), keeper.TotalPowerAt(ctx, 0))
}

func TestTransferPreservesTotal(t *testing.T) {
	ctx, keeper := createTestInput(t)

	require.NoError(t, keeper.SetPower(ctx, addr(0x01), 60))
	require.NoError(t, keeper.SetPower(ctx, addr(0x02), 40))

	require.NoError(t, keeper.Transfer(ctx, addr(0x01), addr(0x02), 25))
	require.Equal(t, int64(35), keeper.PowerOf(ctx, addr(0x01)))
	require.Equal(t, int64(65), keeper.PowerOf(ctx, addr(0x02)))
	require.Equal(t, int64(100), keeper.TotalPower(ctx))

	err := keeper.Transfer(ctx, addr(0x01), addr(0x02), 36)
	require.Error(t, err)
	require.Equal(t, CodeInsufficientPower, err.Code())

	err = keeper.Transfer(ctx, addr(0x01), addr(0x02), 0)
	require.Error(t, err)
	require.Equal(t, CodeInvalidPower, err.Code())
}
