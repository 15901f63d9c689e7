package vote

import (
	"github.com/izqui/govote/auth"
	sdk "github.com/izqui/govote/types"
)

// roles consulted on the gated operations
const (
	RoleCreateVote      = "create-vote"
	RoleChangeProcedure = "change-procedure"
)

// Handle all "vote" type messages.
func NewHandler(keeper Keeper, authKeeper auth.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case MsgCreateVote:
			return handleMsgCreateVote(ctx, keeper, authKeeper, msg)
		case MsgCastBallot:
			return handleMsgCastBallot(ctx, keeper, msg)
		case MsgExecuteVote:
			return handleMsgExecuteVote(ctx, keeper, msg)
		case MsgChangeProcedure:
			return handleMsgChangeProcedure(ctx, keeper, authKeeper, msg)
		default:
			errMsg := "Unrecognized vote msg type"
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgCreateVote(ctx sdk.Context, keeper Keeper, authKeeper auth.Keeper, msg MsgCreateVote) sdk.Result {
	if !authKeeper.IsAuthorized(ctx, RoleCreateVote, msg.Creator) {
		return sdk.ErrUnauthorized("creator lacks the create-vote role").Result()
	}

	voteID, err := keeper.CreateVote(ctx, msg.Creator, msg.Script, msg.Metadata)
	if err != nil {
		return err.Result()
	}

	voteIDBytes := keeper.cdc.MustMarshalBinaryBare(voteID)
	return sdk.Result{
		Data: voteIDBytes,
		Tags: sdk.NewTags(
			TagAction, ActionCreateVote,
			TagVoteID, voteIDBytes,
			TagVoter, []byte(msg.Creator.String()),
		),
	}
}

func handleMsgCastBallot(ctx sdk.Context, keeper Keeper, msg MsgCastBallot) sdk.Result {
	err := keeper.CastBallot(ctx, msg.VoteID, msg.Voter, msg.Support, msg.AutoExecute)
	if err != nil {
		return err.Result()
	}

	voteIDBytes := keeper.cdc.MustMarshalBinaryBare(msg.VoteID)
	return sdk.Result{
		Tags: sdk.NewTags(
			TagAction, ActionCastBallot,
			TagVoteID, voteIDBytes,
			TagVoter, []byte(msg.Voter.String()),
		),
	}
}

// anyone may trigger explicit execution of a decided vote
func handleMsgExecuteVote(ctx sdk.Context, keeper Keeper, msg MsgExecuteVote) sdk.Result {
	err := keeper.ExecuteVote(ctx, msg.VoteID)
	if err != nil {
		return err.Result()
	}

	voteIDBytes := keeper.cdc.MustMarshalBinaryBare(msg.VoteID)
	return sdk.Result{
		Tags: sdk.NewTags(
			TagAction, ActionExecuteVote,
			TagVoteID, voteIDBytes,
		),
	}
}

func handleMsgChangeProcedure(ctx sdk.Context, keeper Keeper, authKeeper auth.Keeper, msg MsgChangeProcedure) sdk.Result {
	if !authKeeper.IsAuthorized(ctx, RoleChangeProcedure, msg.From) {
		return sdk.ErrUnauthorized("caller lacks the change-procedure role").Result()
	}

	err := keeper.ChangeProcedure(ctx, msg.SupportRequired, msg.MinAcceptQuorum)
	if err != nil {
		return err.Result()
	}

	return sdk.Result{
		Tags: sdk.NewTags(
			TagAction, ActionChangeProcedure,
		),
	}
}
