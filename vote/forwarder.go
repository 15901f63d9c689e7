package vote

import (
	"github.com/izqui/govote/auth"
	sdk "github.com/izqui/govote/types"
)

// Forwarder lets governance-adjacent components open a vote from an
// already-encoded script without building a full creation request. It has no
// logic of its own beyond the permission check and delegation.
type Forwarder struct {
	keeper     Keeper
	authKeeper auth.Keeper
}

func NewForwarder(keeper Keeper, authKeeper auth.Keeper) Forwarder {
	return Forwarder{
		keeper:     keeper,
		authKeeper: authKeeper,
	}
}

// CanForward reports whether the sender may open votes.
func (f Forwarder) CanForward(ctx sdk.Context, sender sdk.AccAddress) bool {
	return f.authKeeper.IsAuthorized(ctx, RoleCreateVote, sender)
}

// Forward behaves exactly like CreateVote with empty metadata.
func (f Forwarder) Forward(ctx sdk.Context, sender sdk.AccAddress, scriptBz []byte) (int64, sdk.Error) {
	if !f.CanForward(ctx, sender) {
		return 0, sdk.ErrUnauthorized("sender cannot forward actions")
	}
	return f.keeper.CreateVote(ctx, sender, scriptBz, "")
}
