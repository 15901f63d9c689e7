package vote

import (
	"time"

	sdk "github.com/izqui/govote/types"
)

//-----------------------------------------------------------
// Vote

// Vote is the central entity of the engine. Thresholds and the snapshot
// checkpoint are copied in at creation and never change afterwards, even if
// the process-wide procedure is reconfigured.
type Vote struct {
	VoteID  int64          `json:"vote_id"` //  1-based, monotonically assigned, never reused
	Creator sdk.AccAddress `json:"creator"`

	StartTime    time.Time     `json:"start_time"`    //  creation timestamp
	VotingPeriod time.Duration `json:"voting_period"` //  length of the open window

	// checkpoint captured from the oracle at creation; every power lookup
	// for this vote reads this single immutable distribution
	SnapshotCheckpoint int64 `json:"snapshot_checkpoint"`

	SupportRequired sdk.Dec `json:"support_required"`  //  fraction of votes cast, strict bound
	MinAcceptQuorum sdk.Dec `json:"min_accept_quorum"` //  fraction of total snapshot power

	Yea        int64 `json:"yea"`
	Nay        int64 `json:"nay"`
	TotalPower int64 `json:"total_power"` //  total power in existence at the snapshot

	Executed bool `json:"executed"` //  terminal, never reset

	Script   []byte `json:"script"`   //  encoded action script, possibly empty
	Metadata string `json:"metadata"` //  opaque, no semantic effect
}

// IsOpen reports whether the vote still accepts ballots: the window has not
// elapsed and the vote has not been executed. Expiry is evaluated lazily
// against the caller-visible time, there is no background closer.
func (v Vote) IsOpen(now time.Time) bool {
	return !v.Executed && now.Before(v.StartTime.Add(v.VotingPeriod))
}

// VotesCast returns the power that has been cast so far.
func (v Vote) VotesCast() int64 {
	return v.Yea + v.Nay
}

//-----------------------------------------------------------
// Ballot

// Ballot is one principal's current choice on a vote. Re-voting overwrites
// the record; Power remembers the contribution to subtract on re-vote.
type Ballot struct {
	VoteID  int64          `json:"vote_id"`
	Voter   sdk.AccAddress `json:"voter"`
	Support bool           `json:"support"`
	Power   int64          `json:"power"`
}
