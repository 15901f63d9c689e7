package vote

import (
	"time"

	sdk "github.com/izqui/govote/types"
)

// GenesisState - all engine state that must be provided at first start
type GenesisState struct {
	StartingVoteID int64           `json:"starting_vote_id"`
	Procedure      VotingProcedure `json:"procedure"`
}

func NewGenesisState(startingVoteID int64, procedure VotingProcedure) GenesisState {
	return GenesisState{
		StartingVoteID: startingVoteID,
		Procedure:      procedure,
	}
}

func DefaultGenesisState() GenesisState {
	return GenesisState{
		StartingVoteID: 1,
		Procedure: VotingProcedure{
			SupportRequired: sdk.NewDecWithPrec(5, 1),  // 50%
			MinAcceptQuorum: sdk.NewDecWithPrec(2, 1),  // 20%
			VotingPeriod:    time.Duration(7*24) * time.Hour, // 7 days
		},
	}
}

// InitGenesis - store genesis parameters
func InitGenesis(ctx sdk.Context, keeper Keeper, data GenesisState) {
	if err := data.Procedure.validate(); err != nil {
		panic(err)
	}
	if err := keeper.SetInitialVoteID(ctx, data.StartingVoteID); err != nil {
		panic(err)
	}
	keeper.setProcedure(ctx, data.Procedure)
}

// WriteGenesis - output genesis parameters
func WriteGenesis(ctx sdk.Context, keeper Keeper) GenesisState {
	return GenesisState{
		StartingVoteID: keeper.peekNextVoteID(ctx),
		Procedure:      keeper.GetProcedure(ctx),
	}
}
