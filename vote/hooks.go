package vote

import (
	sdk "github.com/izqui/govote/types"
)

// event hooks for the vote lifecycle
type VoteHooks interface {
	OnVoteCreated(ctx sdk.Context, vote Vote) error // Must be called when a vote is created
	OnVoteExecuted(ctx sdk.Context, vote Vote) error
}

func (keeper Keeper) OnVoteCreated(ctx sdk.Context, vote Vote) error {
	if keeper.hooks != nil {
		return keeper.hooks.OnVoteCreated(ctx, vote)
	}
	return nil
}

func (keeper Keeper) OnVoteExecuted(ctx sdk.Context, vote Vote) error {
	if keeper.hooks != nil {
		return keeper.hooks.OnVoteExecuted(ctx, vote)
	}
	return nil
}
