package vote

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/izqui/govote/codec"
	sdk "github.com/izqui/govote/types"
)

// query endpoints supported by the vote Querier
const (
	QueryVote       = "vote"
	QueryVotes      = "votes"
	QueryBallot     = "ballot"
	QueryBallots    = "ballots"
	QueryProcedure  = "procedure"
	QueryCanExecute = "can-execute"
	QueryAction     = "action"
	QueryMetadata   = "metadata"
)

func NewQuerier(keeper Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) (res []byte, err sdk.Error) {
		switch path[0] {
		case QueryVote:
			return queryVote(ctx, req, keeper)
		case QueryVotes:
			return queryVotes(ctx, keeper)
		case QueryBallot:
			return queryBallot(ctx, req, keeper)
		case QueryBallots:
			return queryBallots(ctx, req, keeper)
		case QueryProcedure:
			return queryProcedure(ctx, keeper)
		case QueryCanExecute:
			return queryCanExecute(ctx, req, keeper)
		case QueryAction:
			return queryAction(ctx, req, keeper)
		case QueryMetadata:
			return queryMetadata(ctx, req, keeper)
		default:
			return nil, sdk.ErrUnknownRequest("unknown vote query endpoint")
		}
	}
}

// Params for queries keyed by vote id
type QueryVoteParams struct {
	VoteID int64
}

// Params for query 'custom/vote/ballot'
type QueryBallotParams struct {
	VoteID int64
	Voter  sdk.AccAddress
}

// Params for query 'custom/vote/action'
type QueryActionParams struct {
	VoteID int64
	Index  int
}

// VoteStatus is the query answer for one vote: the stored record plus the
// lazily computed open flag and action count.
type VoteStatus struct {
	Vote        Vote `json:"vote"`
	Open        bool `json:"open"`
	ActionCount int  `json:"action_count"`
}

func (keeper Keeper) voteStatus(ctx sdk.Context, vote Vote) VoteStatus {
	count := 0
	if decoded, err := keeper.decodedScript(vote); err == nil {
		count = len(decoded)
	}
	return VoteStatus{
		Vote:        vote,
		Open:        vote.IsOpen(ctx.BlockTime()),
		ActionCount: count,
	}
}

func unmarshalParams(cdc *codec.Codec, req abci.RequestQuery, params interface{}) sdk.Error {
	if len(req.Data) == 0 {
		return sdk.ErrUnknownRequest("missing request data")
	}
	if err := cdc.UnmarshalJSON(req.Data, params); err != nil {
		return sdk.ErrUnknownRequest(sdk.AppendMsgToErr("can not unmarshal request", err.Error()))
	}
	return nil
}

func marshalResult(cdc *codec.Codec, obj interface{}) ([]byte, sdk.Error) {
	bz, err := codec.MarshalJSONIndent(cdc, obj)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}

func queryVote(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryVoteParams
	if err := unmarshalParams(keeper.cdc, req, &params); err != nil {
		return nil, err
	}

	vote, ok := keeper.GetVote(ctx, params.VoteID)
	if !ok {
		return nil, ErrUnknownVote(keeper.codespace, params.VoteID)
	}
	return marshalResult(keeper.cdc, keeper.voteStatus(ctx, vote))
}

func queryVotes(ctx sdk.Context, keeper Keeper) ([]byte, sdk.Error) {
	votes := keeper.GetVotes(ctx)
	statuses := make([]VoteStatus, 0, len(votes))
	for _, vote := range votes {
		statuses = append(statuses, keeper.voteStatus(ctx, vote))
	}
	return marshalResult(keeper.cdc, statuses)
}

func queryBallot(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryBallotParams
	if err := unmarshalParams(keeper.cdc, req, &params); err != nil {
		return nil, err
	}

	ballot, ok := keeper.GetBallot(ctx, params.VoteID, params.Voter)
	if !ok {
		return nil, sdk.ErrUnknownRequest("no ballot recorded")
	}
	return marshalResult(keeper.cdc, ballot)
}

func queryBallots(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryVoteParams
	if err := unmarshalParams(keeper.cdc, req, &params); err != nil {
		return nil, err
	}
	return marshalResult(keeper.cdc, keeper.GetBallots(ctx, params.VoteID))
}

func queryProcedure(ctx sdk.Context, keeper Keeper) ([]byte, sdk.Error) {
	return marshalResult(keeper.cdc, keeper.GetProcedure(ctx))
}

func queryCanExecute(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryVoteParams
	if err := unmarshalParams(keeper.cdc, req, &params); err != nil {
		return nil, err
	}
	return marshalResult(keeper.cdc, keeper.CanExecute(ctx, params.VoteID))
}

func queryAction(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryActionParams
	if err := unmarshalParams(keeper.cdc, req, &params); err != nil {
		return nil, err
	}

	action, err := keeper.GetVoteAction(ctx, params.VoteID, params.Index)
	if err != nil {
		return nil, err
	}
	return marshalResult(keeper.cdc, action)
}

func queryMetadata(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryVoteParams
	if err := unmarshalParams(keeper.cdc, req, &params); err != nil {
		return nil, err
	}

	metadata, err := keeper.GetVoteMetadata(ctx, params.VoteID)
	if err != nil {
		return nil, err
	}
	return marshalResult(keeper.cdc, metadata)
}
