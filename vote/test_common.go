package vote

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/izqui/govote/auth"
	"github.com/izqui/govote/codec"
	"github.com/izqui/govote/oracle"
	"github.com/izqui/govote/script"
	"github.com/izqui/govote/store"
	sdk "github.com/izqui/govote/types"
)

type testInput struct {
	ctx          sdk.Context
	keeper       Keeper
	oracleKeeper oracle.Keeper
	authKeeper   auth.Keeper
	executor     *script.Executor
	cdc          *codec.Codec
}

var testStartTime = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func createTestInput(t *testing.T) testInput {
	input := createTestInputNoGenesis(t)
	InitGenesis(input.ctx, input.keeper, DefaultGenesisState())
	return input
}

// createTestInputNoGenesis leaves genesis to the test, for genesis tests.
func createTestInputNoGenesis(t *testing.T) testInput {
	cdc := codec.New()
	RegisterCodec(cdc)

	keyVote := sdk.NewKVStoreKey("vote")
	keyOracle := sdk.NewKVStoreKey("oracle")
	keyAuth := sdk.NewKVStoreKey("auth")

	ms := store.NewCommitMultiStore(dbm.NewMemDB())
	ms.MountStore(keyVote)
	ms.MountStore(keyOracle)
	ms.MountStore(keyAuth)
	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, testStartTime, log.NewNopLogger())

	executor := script.NewExecutor()
	oracleKeeper := oracle.NewKeeper(keyOracle, oracle.DefaultCodespace)
	authKeeper := auth.NewKeeper(keyAuth)
	keeper := NewKeeper(cdc, keyVote, oracleKeeper, executor, DefaultCodespace)

	return testInput{
		ctx:          ctx,
		keeper:       keeper,
		oracleKeeper: oracleKeeper,
		authKeeper:   authKeeper,
		executor:     executor,
		cdc:          cdc,
	}
}

func testAddr(b byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, sdk.AddrLen))
}

// fundAndSeal assigns power at the current checkpoint and advances it, so
// that votes created afterwards snapshot the funded balances.
func fundAndSeal(t *testing.T, input testInput, powers map[byte]int64) {
	for b, power := range powers {
		require.NoError(t, input.oracleKeeper.SetPower(input.ctx, testAddr(b), power))
	}
	input.oracleKeeper.AdvanceCheckpoint(input.ctx)
}

// emptyScript is a valid script that performs no actions.
func emptyScript() []byte {
	return []byte{}
}

// markerScript encodes a single action against the marker target. The
// returned func reports how many times it ran.
func markerScript(input testInput) ([]byte, func() int) {
	target := testAddr(0xee)
	calls := 0
	input.executor.RegisterTarget(target, func(ctx sdk.Context, action script.Action) sdk.Error {
		calls++
		return nil
	})
	bz := script.Encode(script.Script{{Target: target, Payload: []byte("marker")}})
	return bz, func() int { return calls }
}

// failingScript encodes a script whose single action always fails.
func failingScript(input testInput) []byte {
	target := testAddr(0xef)
	input.executor.RegisterTarget(target, func(ctx sdk.Context, action script.Action) sdk.Error {
		return sdk.ErrInternal("boom")
	})
	return script.Encode(script.Script{{Target: target, Payload: nil}})
}

// afterVotingPeriod returns a context whose time is past the voting window
// of a vote created at the test start time.
func afterVotingPeriod(input testInput) sdk.Context {
	period := input.keeper.GetProcedure(input.ctx).VotingPeriod
	return input.ctx.WithBlockTime(testStartTime.Add(period + time.Second))
}
