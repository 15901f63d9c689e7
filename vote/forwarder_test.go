package vote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForwarder(t *testing.T) {
	input := createTestInput(t)
	fundAndSeal(t, input, map[byte]int64{0x01: 30, 0x02: 70})
	forwarder := NewForwarder(input.keeper, input.authKeeper)

	require.False(t, forwarder.CanForward(input.ctx, testAddr(0x01)))
	_, err := forwarder.Forward(input.ctx, testAddr(0x01), emptyScript())
	require.Error(t, err)

	input.authKeeper.Grant(input.ctx, RoleCreateVote, testAddr(0x01))
	require.True(t, forwarder.CanForward(input.ctx, testAddr(0x01)))

	id, err := forwarder.Forward(input.ctx, testAddr(0x01), emptyScript())
	require.NoError(t, err)

	v, ok := input.keeper.GetVote(input.ctx, id)
	require.True(t, ok)
	require.Equal(t, testAddr(0x01), v.Creator)
	require.Empty(t, v.Metadata)
}
