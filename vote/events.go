package vote

import (
	"github.com/izqui/govote/pubsub"
	sdk "github.com/izqui/govote/types"
)

const (
	VoteCreatedTopic      = pubsub.Topic("vote-created")
	BallotCastTopic       = pubsub.Topic("ballot-cast")
	VoteExecutedTopic     = pubsub.Topic("vote-executed")
	ProcedureChangedTopic = pubsub.Topic("procedure-changed")
)

type VoteCreatedEvent struct {
	VoteID   int64
	Creator  sdk.AccAddress
	Metadata string
}

func (event VoteCreatedEvent) GetTopic() pubsub.Topic {
	return VoteCreatedTopic
}

type BallotCastEvent struct {
	VoteID  int64
	Voter   sdk.AccAddress
	Support bool
	Power   int64
	Yea     int64
	Nay     int64
}

func (event BallotCastEvent) GetTopic() pubsub.Topic {
	return BallotCastTopic
}

type VoteExecutedEvent struct {
	VoteID int64
}

func (event VoteExecutedEvent) GetTopic() pubsub.Topic {
	return VoteExecutedTopic
}

type ProcedureChangedEvent struct {
	SupportRequired sdk.Dec
	MinAcceptQuorum sdk.Dec
}

func (event ProcedureChangedEvent) GetTopic() pubsub.Topic {
	return ProcedureChangedTopic
}
