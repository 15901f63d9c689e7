package vote

import (
	sdk "github.com/izqui/govote/types"
)

const MsgRoute = "vote"

//-----------------------------------------------------------
// MsgCreateVote

type MsgCreateVote struct {
	Creator  sdk.AccAddress `json:"creator"`
	Script   []byte         `json:"script"`
	Metadata string         `json:"metadata"`
}

func NewMsgCreateVote(creator sdk.AccAddress, scriptBz []byte, metadata string) MsgCreateVote {
	return MsgCreateVote{
		Creator:  creator,
		Script:   scriptBz,
		Metadata: metadata,
	}
}

func (msg MsgCreateVote) Route() string { return MsgRoute }
func (msg MsgCreateVote) Type() string  { return "create_vote" }

func (msg MsgCreateVote) ValidateBasic() sdk.Error {
	if len(msg.Creator) != sdk.AddrLen {
		return sdk.ErrUnknownRequest("invalid creator address length")
	}
	return nil
}

func (msg MsgCreateVote) GetSignBytes() []byte {
	b, err := msgCdc.MarshalJSON(msg)
	if err != nil {
		panic(err)
	}
	return sdk.MustSortJSON(b)
}

func (msg MsgCreateVote) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Creator} }

//-----------------------------------------------------------
// MsgCastBallot

type MsgCastBallot struct {
	Voter       sdk.AccAddress `json:"voter"`
	VoteID      int64          `json:"vote_id"`
	Support     bool           `json:"support"`
	AutoExecute bool           `json:"auto_execute"`
}

func NewMsgCastBallot(voter sdk.AccAddress, voteID int64, support, autoExecute bool) MsgCastBallot {
	return MsgCastBallot{
		Voter:       voter,
		VoteID:      voteID,
		Support:     support,
		AutoExecute: autoExecute,
	}
}

func (msg MsgCastBallot) Route() string { return MsgRoute }
func (msg MsgCastBallot) Type() string  { return "cast_ballot" }

func (msg MsgCastBallot) ValidateBasic() sdk.Error {
	if len(msg.Voter) != sdk.AddrLen {
		return sdk.ErrUnknownRequest("invalid voter address length")
	}
	if msg.VoteID <= 0 {
		return sdk.ErrUnknownRequest("vote id must be positive")
	}
	return nil
}

func (msg MsgCastBallot) GetSignBytes() []byte {
	b, err := msgCdc.MarshalJSON(msg)
	if err != nil {
		panic(err)
	}
	return sdk.MustSortJSON(b)
}

func (msg MsgCastBallot) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Voter} }

//-----------------------------------------------------------
// MsgExecuteVote

type MsgExecuteVote struct {
	Caller sdk.AccAddress `json:"caller"`
	VoteID int64          `json:"vote_id"`
}

func NewMsgExecuteVote(caller sdk.AccAddress, voteID int64) MsgExecuteVote {
	return MsgExecuteVote{
		Caller: caller,
		VoteID: voteID,
	}
}

func (msg MsgExecuteVote) Route() string { return MsgRoute }
func (msg MsgExecuteVote) Type() string  { return "execute_vote" }

func (msg MsgExecuteVote) ValidateBasic() sdk.Error {
	if len(msg.Caller) != sdk.AddrLen {
		return sdk.ErrUnknownRequest("invalid caller address length")
	}
	if msg.VoteID <= 0 {
		return sdk.ErrUnknownRequest("vote id must be positive")
	}
	return nil
}

func (msg MsgExecuteVote) GetSignBytes() []byte {
	b, err := msgCdc.MarshalJSON(msg)
	if err != nil {
		panic(err)
	}
	return sdk.MustSortJSON(b)
}

func (msg MsgExecuteVote) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.Caller} }

//-----------------------------------------------------------
// MsgChangeProcedure

type MsgChangeProcedure struct {
	From            sdk.AccAddress `json:"from"`
	SupportRequired sdk.Dec        `json:"support_required"`
	MinAcceptQuorum sdk.Dec        `json:"min_accept_quorum"`
}

func NewMsgChangeProcedure(from sdk.AccAddress, supportRequired, minAcceptQuorum sdk.Dec) MsgChangeProcedure {
	return MsgChangeProcedure{
		From:            from,
		SupportRequired: supportRequired,
		MinAcceptQuorum: minAcceptQuorum,
	}
}

func (msg MsgChangeProcedure) Route() string { return MsgRoute }
func (msg MsgChangeProcedure) Type() string  { return "change_procedure" }

func (msg MsgChangeProcedure) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrUnknownRequest("invalid from address length")
	}
	return nil
}

func (msg MsgChangeProcedure) GetSignBytes() []byte {
	b, err := msgCdc.MarshalJSON(msg)
	if err != nil {
		panic(err)
	}
	return sdk.MustSortJSON(b)
}

func (msg MsgChangeProcedure) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
