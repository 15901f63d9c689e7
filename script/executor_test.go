package script

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/izqui/govote/store"
	sdk "github.com/izqui/govote/types"
)

func testContext(t *testing.T) sdk.Context {
	ms := store.NewCommitMultiStore(dbm.NewMemDB())
	require.NoError(t, ms.LoadLatestVersion())
	return sdk.NewContext(ms, time.Unix(0, 0), log.NewNopLogger())
}

func TestExecuteRunsActionsInOrder(t *testing.T) {
	ctx := testContext(t)
	executor := NewExecutor()

	var ran []string
	executor.RegisterTarget(addr(0x01), func(ctx sdk.Context, action Action) sdk.Error {
		ran = append(ran, "a:"+string(action.Payload))
		return nil
	})
	executor.RegisterTarget(addr(0x02), func(ctx sdk.Context, action Action) sdk.Error {
		ran = append(ran, "b:"+string(action.Payload))
		return nil
	})

	err := executor.Execute(ctx, Script{
		{Target: addr(0x02), Payload: []byte("1")},
		{Target: addr(0x01), Payload: []byte("2")},
		{Target: addr(0x02), Payload: []byte("3")},
	})
	require.Nil(t, err)
	require.Equal(t, []string{"b:1", "a:2", "b:3"}, ran)
}

func TestExecuteUnregisteredTargetFails(t *testing.T) {
	ctx := testContext(t)
	executor := NewExecutor()

	err := executor.Execute(ctx, Script{{Target: addr(0x09), Payload: nil}})
	require.NotNil(t, err)
	require.True(t, IsScriptExecutionFailed(err))
}

func TestExecuteAbortsAtFirstFailure(t *testing.T) {
	ctx := testContext(t)
	executor := NewExecutor()

	ran := 0
	executor.RegisterTarget(addr(0x01), func(ctx sdk.Context, action Action) sdk.Error {
		ran++
		return nil
	})
	executor.RegisterTarget(addr(0x02), func(ctx sdk.Context, action Action) sdk.Error {
		return sdk.ErrInternal("boom")
	})

	err := executor.Execute(ctx, Script{
		{Target: addr(0x01), Payload: nil},
		{Target: addr(0x02), Payload: nil},
		{Target: addr(0x01), Payload: nil},
	})
	require.NotNil(t, err)
	require.True(t, IsScriptExecutionFailed(err))
	require.Equal(t, 1, ran)
}

func TestExecuteEmptyScript(t *testing.T) {
	ctx := testContext(t)
	require.Nil(t, NewExecutor().Execute(ctx, nil))
}
