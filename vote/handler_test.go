package vote

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/izqui/govote/types"
)

func TestHandlerGatesVoteCreation(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 30, 0x03: 40})
	handler := NewHandler(input.keeper, input.authKeeper)

	msg := NewMsgCreateVote(testAddr(0x01), emptyScript(), "")
	res := handler(input.ctx, msg)
	require.False(t, res.IsOK())
	require.Equal(t, sdk.CodeUnauthorized, res.Code)

	input.authKeeper.Grant(input.ctx, RoleCreateVote, testAddr(0x01))
	res = handler(input.ctx, msg)
	require.True(t, res.IsOK())

	var voteID int64
	input.cdc.MustUnmarshalBinaryBare(res.Data, &voteID)
	require.Equal(t, int64(1), voteID)

	// revocation takes effect immediately
	input.authKeeper.Revoke(input.ctx, RoleCreateVote, testAddr(0x01))
	res = handler(input.ctx, msg)
	require.False(t, res.IsOK())
	require.Equal(t, sdk.CodeUnauthorized, res.Code)
}

func TestHandlerGatesProcedureChanges(t *testing.T) {
	input := createTestInput(t)
	handler := NewHandler(input.keeper, input.authKeeper)

	msg := NewMsgChangeProcedure(testAddr(0x01), sdk.NewDecWithPrec(6, 1), sdk.NewDecWithPrec(2, 1))
	res := handler(input.ctx, msg)
	require.False(t, res.IsOK())
	require.Equal(t, sdk.CodeUnauthorized, res.Code)

	input.authKeeper.Grant(input.ctx, RoleChangeProcedure, testAddr(0x01))
	res = handler(input.ctx, msg)
	require.True(t, res.IsOK())
	require.True(t, input.keeper.GetProcedure(input.ctx).SupportRequired.Equal(sdk.NewDecWithPrec(6, 1)))
}

func TestHandlerBallotAndExecutionNeedNoRole(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 40, 0x03: 30})
	handler := NewHandler(input.keeper, input.authKeeper)

	scriptBz, calls := markerScript(input)
	id, err := input.keeper.CreateVote(input.ctx, testAddr(0x01), scriptBz, "")
	require.NoError(t, err)

	res := handler(input.ctx, NewMsgCastBallot(testAddr(0x02), id, true, false))
	require.True(t, res.IsOK())

	res = handler(input.ctx, NewMsgExecuteVote(testAddr(0x09), id))
	require.True(t, res.IsOK())
	require.Equal(t, 1, calls())
}

func TestHandlerRejectsUnknownMsg(t *testing.T) {
	input := createTestInput(t)
	handler := NewHandler(input.keeper, input.authKeeper)

	res := handler(input.ctx, unknownMsg{})
	require.False(t, res.IsOK())
	require.Equal(t, sdk.CodeUnknownRequest, res.Code)
}

type unknownMsg struct{}

func (unknownMsg) Route() string                { return MsgRoute }
func (unknownMsg) Type() string                 { return "unknown" }
func (unknownMsg) ValidateBasic() sdk.Error     { return nil }
func (unknownMsg) GetSignBytes() []byte         { return nil }
func (unknownMsg) GetSigners() []sdk.AccAddress { return nil }
