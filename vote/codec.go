package vote

import (
	"github.com/izqui/govote/codec"
	sdk "github.com/izqui/govote/types"
)

// generic sealed codec to be used for msg sign bytes
var msgCdc *codec.Codec

func init() {
	cdc := codec.New()
	RegisterCodec(cdc)
	msgCdc = cdc.Seal()
}

// Register concrete types on codec codec
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterInterface((*sdk.Msg)(nil), nil)

	cdc.RegisterConcrete(Vote{}, "govote/Vote", nil)
	cdc.RegisterConcrete(Ballot{}, "govote/Ballot", nil)
	cdc.RegisterConcrete(VotingProcedure{}, "govote/VotingProcedure", nil)

	cdc.RegisterConcrete(MsgCreateVote{}, "govote/MsgCreateVote", nil)
	cdc.RegisterConcrete(MsgCastBallot{}, "govote/MsgCastBallot", nil)
	cdc.RegisterConcrete(MsgExecuteVote{}, "govote/MsgExecuteVote", nil)
	cdc.RegisterConcrete(MsgChangeProcedure{}, "govote/MsgChangeProcedure", nil)
}
