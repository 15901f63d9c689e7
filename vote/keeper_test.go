package vote

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/izqui/govote/oracle"
	"github.com/izqui/govote/script"
	sdk "github.com/izqui/govote/types"
)

func TestCreateVoteAssignsSequentialIDs(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})

	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), emptyScript(), "first")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	id, err = input.keeper.CreateVote(input.ctx, testAddr(0x02), emptyScript(), "second")
	require.NoError(t, err)
	require.Equal(t, int64(2), id)

	require.Len(t, input.keeper.GetVotes(input.ctx), 2)
}

func TestCreateVoteSnapshotsSealedCheckpoint(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})

	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), emptyScript(), "")
	require.NoError(t, err)

	v, ok := input.keeper.GetVote(input.ctx, id)
	require.True(t, ok)
	require.Equal(t, oracle.StartCheckpoint, v.SnapshotCheckpoint)
	require.Equal(t, int64(100), v.TotalPower)

	// the creator's power at the snapshot is cast as an automatic yes
	require.Equal(t, int64(30), v.Yea)
	require.Equal(t, int64(0), v.Nay)
	ballot, voted := input.keeper.GetBallot(input.ctx, id, testAddr(0x01))
	require.True(t, voted)
	require.True(t, ballot.Support)
	require.Equal(t, int64(30), ballot.Power)
}

func TestCreateVoteWithoutTotalPower(t *testing.T) {
	input := createTestInput(t)

	// nothing sealed yet, so the snapshot checkpoint holds no power
	_, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), emptyScript(), "")
	require.Error(t, err)
	require.Equal(t, CodeInvalidState, err.Code())
}

func TestCreateVoteRejectsMalformedScript(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 100})

	_, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), []byte{0x01, 0x02}, "")
	require.Error(t, err)
	require.True(t, script.IsMalformedScript(err))
}

func TestCastBallotErrors(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})

	err := input.keeper.CastBallot(input.ctx, 42, testAddr(0x02), true, false)
	require.Error(t, err)
	require.Equal(t, CodeUnknownVote, err.Code())

	id, cerr := input.keeper.CreateVote(input.ctx, testAddr(0x01), emptyScript(), "")
	require.NoError(t, cerr)

	// 0x09 held nothing when the snapshot was sealed
	err = input.keeper.CastBallot(input.ctx, id, testAddr(0x09), true, false)
	require.Error(t, err)
	require.Equal(t, CodeNoVotingPower, err.Code())

	// window elapsed
	err = input.keeper.CastBallot(afterVotingPeriod(input), id, testAddr(0x02), true, false)
	require.Error(t, err)
	require.Equal(t, CodeVoteClosed, err.Code())
}

func TestReVoteNeverDoubleCounts(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})

	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), emptyScript(), "")
	require.NoError(t, err)

	require.NoError(t, input.keeper.CastBallot(input.ctx, id, testAddr(0x02), false, false))
	v, _ := input.keeper.GetVote(input.ctx, id)
	require.Equal(t, int64(30), v.Yea)
	require.Equal(t, int64(30), v.Nay)

	// flipping the ballot moves the same power across, never adds it twice
	require.NoError(t, input.keeper.CastBallot(input.ctx, id, testAddr(0x02), true, false))
	v, _ = input.keeper.GetVote(input.ctx, id)
	require.Equal(t, int64(60), v.Yea)
	require.Equal(t, int64(0), v.Nay)

	// re-casting the same choice is a no-op on the tally
	require.NoError(t, input.keeper.CastBallot(input.ctx, id, testAddr(0x02), true, false))
	v, _ = input.keeper.GetVote(input.ctx, id)
	require.Equal(t, int64(60), v.Yea)
	require.Len(t, input.keeper.GetBallots(input.ctx, id), 2)
}

func TestSnapshotImmuneToLaterTransfers(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})

	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), emptyScript(), "")
	require.NoError(t, err)

	// 0x02 gives everything away after the snapshot was taken
	require.NoError(t, input.oracleKeeper.Transfer(input.ctx, testAddr(0x02), testAddr(0x09), 30))

	// the recipient still cannot vote
	verr := input.keeper.CastBallot(input.ctx, id, testAddr(0x09), true, false)
	require.Error(t, verr)
	require.Equal(t, CodeNoVotingPower, verr.Code())

	// and the sender still votes with its snapshot power
	require.NoError(t, input.keeper.CastBallot(input.ctx, id, testAddr(0x02), false, false))
	v, _ := input.keeper.GetVote(input.ctx, id)
	require.Equal(t, int64(30), v.Nay)
}

func TestDecisiveBallotAutoExecutes(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 40, 0x03: 30})

	scriptBz, calls := markerScript(input)
	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), scriptBz, "")
	require.NoError(t, err)
	require.Equal(t, 0, calls())

	// 30 + 40 = 70 strictly exceeds half of the 100 total
	require.NoError(t, input.keeper.CastBallot(input.ctx, id, testAddr(0x02), true, true))
	require.Equal(t, 1, calls())

	v, _ := input.keeper.GetVote(input.ctx, id)
	require.True(t, v.Executed)

	// an executed vote accepts no more ballots and no second execution
	berr := input.keeper.CastBallot(input.ctx, id, testAddr(0x03), true, false)
	require.Error(t, berr)
	require.Equal(t, CodeVoteClosed, berr.Code())

	eerr := input.keeper.ExecuteVote(input.ctx, id)
	require.Error(t, eerr)
	require.Equal(t, CodeAlreadyExecuted, eerr.Code())
	require.Equal(t, 1, calls())
}

func TestOptOutOfAutoExecute(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 40, 0x03: 30})

	scriptBz, calls := markerScript(input)
	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), scriptBz, "")
	require.NoError(t, err)

	require.NoError(t, input.keeper.CastBallot(input.ctx, id, testAddr(0x02), true, false))
	require.Equal(t, 0, calls())
	require.True(t, input.keeper.CanExecute(input.ctx, id))

	require.NoError(t, input.keeper.ExecuteVote(input.ctx, id))
	require.Equal(t, 1, calls())
}

func TestExecuteAfterWindow(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})

	scriptBz, calls := markerScript(input)
	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), scriptBz, "")
	require.NoError(t, err)

	// 30 yea of 30 cast passes support, and reaches the 20% quorum,
	// but is not decided while the window is open
	require.False(t, input.keeper.CanExecute(input.ctx, id))
	eerr := input.keeper.ExecuteVote(input.ctx, id)
	require.Error(t, eerr)
	require.Equal(t, CodeCannotExecute, eerr.Code())

	lateCtx := afterVotingPeriod(input)
	require.True(t, input.keeper.CanExecute(lateCtx, id))
	require.NoError(t, input.keeper.ExecuteVote(lateCtx, id))
	require.Equal(t, 1, calls())
}

func TestRejectedVoteCannotExecute(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 40, 0x03: 30})

	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), emptyScript(), "")
	require.NoError(t, err)
	require.NoError(t, input.keeper.CastBallot(input.ctx, id, testAddr(0x02), false, false))

	lateCtx := afterVotingPeriod(input)
	require.False(t, input.keeper.CanExecute(lateCtx, id))
	eerr := input.keeper.ExecuteVote(lateCtx, id)
	require.Error(t, eerr)
	require.Equal(t, CodeCannotExecute, eerr.Code())
}

func TestExecutionIsAtomic(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})

	// first action mints power through the oracle, second action fails
	mintTarget := testAddr(0xe1)
	input.executor.RegisterTarget(mintTarget, func(ctx sdk.Context, action script.Action) sdk.Error {
		return input.oracleKeeper.SetPower(ctx, testAddr(0x99), 777)
	})
	failTarget := testAddr(0xe2)
	input.executor.RegisterTarget(failTarget, func(ctx sdk.Context, action script.Action) sdk.Error {
		return sdk.ErrInternal("boom")
	})
	scriptBz := script.Encode(script.Script{
		{Target: mintTarget, Payload: nil},
		{Target: failTarget, Payload: nil},
	})

	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), scriptBz, "")
	require.NoError(t, err)

	lateCtx := afterVotingPeriod(input)
	eerr := input.keeper.ExecuteVote(lateCtx, id)
	require.Error(t, eerr)
	require.True(t, script.IsScriptExecutionFailed(eerr))

	// nothing the first action wrote survived, and the vote is not
	// marked executed, so execution can be retried
	require.Equal(t, int64(0), input.oracleKeeper.PowerOf(input.ctx, testAddr(0x99)))
	v, _ := input.keeper.GetVote(input.ctx, id)
	require.False(t, v.Executed)
	require.True(t, input.keeper.CanExecute(lateCtx, id))
}

func TestExecutionWritesThroughOnSuccess(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})

	mintTarget := testAddr(0xe1)
	input.executor.RegisterTarget(mintTarget, func(ctx sdk.Context, action script.Action) sdk.Error {
		return input.oracleKeeper.SetPower(ctx, testAddr(0x99), 777)
	})
	scriptBz := script.Encode(script.Script{{Target: mintTarget, Payload: nil}})

	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), scriptBz, "")
	require.NoError(t, err)

	lateCtx := afterVotingPeriod(input)
	require.NoError(t, input.keeper.ExecuteVote(lateCtx, id))

	require.Equal(t, int64(777), input.oracleKeeper.PowerOf(input.ctx, testAddr(0x99)))
	v, _ := input.keeper.GetVote(input.ctx, id)
	require.True(t, v.Executed)
}

func TestChangeProcedureAffectsFutureVotesOnly(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})

	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), emptyScript(), "")
	require.NoError(t, err)

	newSupport := sdk.NewDecWithPrec(9, 1)
	newQuorum := sdk.NewDecWithPrec(3, 1)
	require.NoError(t, input.keeper.ChangeProcedure(input.ctx, newSupport, newQuorum))

	old, _ := input.keeper.GetVote(input.ctx, id)
	require.True(t, old.SupportRequired.Equal(sdk.NewDecWithPrec(5, 1)))

	id2, err := input.keeper.CreateVote(input.ctx, testAddr(0x02), emptyScript(), "")
	require.NoError(t, err)
	fresh, _ := input.keeper.GetVote(input.ctx, id2)
	require.True(t, fresh.SupportRequired.Equal(newSupport))
	require.True(t, fresh.MinAcceptQuorum.Equal(newQuorum))
}

func TestChangeProcedureValidation(t *testing.T) {
	input := createTestInput(t)

	err := input.keeper.ChangeProcedure(input.ctx, sdk.ZeroDec(), sdk.ZeroDec())
	require.Error(t, err)
	require.Equal(t, CodeInvalidProcedure, err.Code())

	err = input.keeper.ChangeProcedure(input.ctx, sdk.NewDec(2), sdk.ZeroDec())
	require.Error(t, err)
	require.Equal(t, CodeInvalidProcedure, err.Code())

	// quorum above support is legal, it just means quorum dominates
	require.NoError(t, input.keeper.ChangeProcedure(input.ctx, sdk.NewDecWithPrec(3, 1), sdk.NewDecWithPrec(6, 1)))
}

func TestVoteScriptAccessors(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 100})

	target := testAddr(0xe1)
	input.executor.RegisterTarget(target, func(ctx sdk.Context, action script.Action) sdk.Error { return nil })
	scriptBz := script.Encode(script.Script{
		{Target: target, Payload: []byte("one")},
		{Target: target, Payload: []byte("two")},
	})

	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), scriptBz, "upgrade the fee schedule")
	require.NoError(t, err)

	metadata, merr := input.keeper.GetVoteMetadata(input.ctx, id)
	require.NoError(t, merr)
	require.Equal(t, "upgrade the fee schedule", metadata)

	count, cerr := input.keeper.GetVoteActionCount(input.ctx, id)
	require.NoError(t, cerr)
	require.Equal(t, 2, count)

	action, aerr := input.keeper.GetVoteAction(input.ctx, id, 1)
	require.NoError(t, aerr)
	require.Equal(t, []byte("two"), action.Payload)

	_, aerr = input.keeper.GetVoteAction(input.ctx, id, 2)
	require.Error(t, aerr)
}
