package vote

import (
	sdk "github.com/izqui/govote/types"
)

// TokenPowerOracle reports voting power as of past checkpoints. The engine
// treats it as a synchronous, side-effect-free collaborator; it never owns
// or mutates the power distribution.
type TokenPowerOracle interface {
	// CurrentCheckpoint returns the checkpoint being formed right now,
	// monotonically increasing.
	CurrentCheckpoint(ctx sdk.Context) int64

	// PowerOfAt returns the principal's power at the checkpoint, >= 0.
	PowerOfAt(ctx sdk.Context, addr sdk.AccAddress, checkpoint int64) int64

	// TotalPowerAt returns the total power in existence at the checkpoint.
	TotalPowerAt(ctx sdk.Context, checkpoint int64) int64
}
