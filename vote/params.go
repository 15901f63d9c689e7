package vote

import (
	"time"

	sdk "github.com/izqui/govote/types"
)

// VotingProcedure is the process-wide governance parameter set. Every vote
// snapshots its own copy at creation, so changing it never affects votes
// already created.
//
// MinAcceptQuorum <= SupportRequired is deliberately not enforced; the
// evaluator honors whatever was snapshotted per vote.
type VotingProcedure struct {
	SupportRequired sdk.Dec       `json:"support_required"`  //  minimum fraction of votes cast voting yea, exclusive bound
	MinAcceptQuorum sdk.Dec       `json:"min_accept_quorum"` //  minimum fraction of total snapshot power voting yea, inclusive bound
	VotingPeriod    time.Duration `json:"voting_period"`     //  length of the open window
}

func (vp VotingProcedure) validate() sdk.Error {
	if !vp.SupportRequired.GT(sdk.ZeroDec()) || vp.SupportRequired.GT(sdk.OneDec()) {
		return ErrInvalidProcedure(DefaultCodespace,
			"support required must be within (0, 1], got "+vp.SupportRequired.String())
	}
	if vp.MinAcceptQuorum.LT(sdk.ZeroDec()) || vp.MinAcceptQuorum.GT(sdk.OneDec()) {
		return ErrInvalidProcedure(DefaultCodespace,
			"min accept quorum must be within [0, 1], got "+vp.MinAcceptQuorum.String())
	}
	if vp.VotingPeriod <= 0 {
		return ErrInvalidProcedure(DefaultCodespace, "voting period must be positive")
	}
	return nil
}
