package vote

import (
	"testing"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

func queryRequest(t *testing.T, input testInput, params interface{}) abci.RequestQuery {
	if params == nil {
		return abci.RequestQuery{}
	}
	bz, err := input.cdc.MarshalJSON(params)
	require.NoError(t, err)
	return abci.RequestQuery{Data: bz}
}

func TestQueryVote(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})
	querier := NewQuerier(input.keeper)

	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), emptyScript(), "hello")
	require.NoError(t, err)

	bz, qerr := querier(input.ctx, []string{QueryVote}, queryRequest(t, input, QueryVoteParams{VoteID: id}))
	require.Nil(t, qerr)

	var status VoteStatus
	require.NoError(t, input.cdc.UnmarshalJSON(bz, &status))
	require.Equal(t, id, status.Vote.VoteID)
	require.True(t, status.Open)
	require.Equal(t, 0, status.ActionCount)

	_, qerr = querier(input.ctx, []string{QueryVote}, queryRequest(t, input, QueryVoteParams{VoteID: 42}))
	require.NotNil(t, qerr)
	require.Equal(t, CodeUnknownVote, qerr.Code())
}

func TestQueryVotesAndBallots(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})
	querier := NewQuerier(input.keeper)

	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), emptyScript(), "")
	require.NoError(t, err)
	require.NoError(t, input.keeper.CastBallot(input.ctx, id, testAddr(0x02), false, false))

	bz, qerr := querier(input.ctx, []string{QueryVotes}, queryRequest(t, input, nil))
	require.Nil(t, qerr)
	var statuses []VoteStatus
	require.NoError(t, input.cdc.UnmarshalJSON(bz, &statuses))
	require.Len(t, statuses, 1)

	bz, qerr = querier(input.ctx, []string{QueryBallots}, queryRequest(t, input, QueryVoteParams{VoteID: id}))
	require.Nil(t, qerr)
	var ballots []Ballot
	require.NoError(t, input.cdc.UnmarshalJSON(bz, &ballots))
	require.Len(t, ballots, 2)

	bz, qerr = querier(input.ctx, []string{QueryBallot},
		queryRequest(t, input, QueryBallotParams{VoteID: id, Voter: testAddr(0x02)}))
	require.Nil(t, qerr)
	var ballot Ballot
	require.NoError(t, input.cdc.UnmarshalJSON(bz, &ballot))
	require.False(t, ballot.Support)
	require.Equal(t, int64(30), ballot.Power)
}

func TestQueryProcedureAndCanExecute(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 60, 0x02: 40})
	querier := NewQuerier(input.keeper)

	bz, qerr := querier(input.ctx, []string{QueryProcedure}, queryRequest(t, input, nil))
	require.Nil(t, qerr)
	var procedure VotingProcedure
	require.NoError(t, input.cdc.UnmarshalJSON(bz, &procedure))
	require.Equal(t, DefaultGenesisState().Procedure, procedure)

	// 0x01 creates and auto-votes with 60 of 100, which decides the
	// vote and executes it, so can-execute reports false afterwards
	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), emptyScript(), "")
	require.NoError(t, err)

	bz, qerr = querier(input.ctx, []string{QueryCanExecute}, queryRequest(t, input, QueryVoteParams{VoteID: id}))
	require.Nil(t, qerr)
	var canExecute bool
	require.NoError(t, input.cdc.UnmarshalJSON(bz, &canExecute))
	require.False(t, canExecute)

	v, _ := input.keeper.GetVote(input.ctx, id)
	require.True(t, v.Executed)
}

func TestQueryUnknownPath(t *testing.T) {
	input := createTestInput(t)
	querier := NewQuerier(input.keeper)

	_, qerr := querier(input.ctx, []string{"nope"}, queryRequest(t, input, nil))
	require.NotNil(t, qerr)
}
