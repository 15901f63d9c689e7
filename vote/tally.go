package vote

import (
	"math/big"
	"time"

	sdk "github.com/izqui/govote/types"
)

// Threshold checks cross-multiply in big.Int instead of dividing, so exact
// boundary values behave exactly as specified and no rounding can be
// exploited. With pct carrying RawInt = pct * 10^Precision:
//
//	value > pct * total  <=>  value * 10^Precision > RawInt * total

// valueExceedsPct reports value > pct*total, the strict bound.
func valueExceedsPct(value, total int64, pct sdk.Dec) bool {
	lhs := new(big.Int).Mul(big.NewInt(value), big.NewInt(sdk.PrecisionUnit()))
	rhs := new(big.Int).Mul(big.NewInt(pct.RawInt()), big.NewInt(total))
	return lhs.Cmp(rhs) > 0
}

// valueReachesPct reports value >= pct*total, the inclusive bound.
func valueReachesPct(value, total int64, pct sdk.Dec) bool {
	lhs := new(big.Int).Mul(big.NewInt(value), big.NewInt(sdk.PrecisionUnit()))
	rhs := new(big.Int).Mul(big.NewInt(pct.RawInt()), big.NewInt(total))
	return lhs.Cmp(rhs) >= 0
}

// SupportPasses reports whether yea strictly exceeds the required fraction
// of votes cast. An exact tie fails.
func SupportPasses(v Vote) bool {
	return valueExceedsPct(v.Yea, v.VotesCast(), v.SupportRequired)
}

// QuorumPasses reports whether yea reaches the quorum fraction of the total
// power at the snapshot. An exact tie passes.
func QuorumPasses(v Vote) bool {
	return valueReachesPct(v.Yea, v.TotalPower, v.MinAcceptQuorum)
}

// DecidedEarly reports whether yea alone already strictly exceeds the
// support fraction of the TOTAL snapshot power. That bound is invariant to
// how the not-yet-cast power eventually splits, so the outcome can no
// longer flip and the vote is safe to execute while its window is open.
// A tie at this boundary does not decide the vote.
func DecidedEarly(v Vote) bool {
	return valueExceedsPct(v.Yea, v.TotalPower, v.SupportRequired)
}

// Passes evaluates the final tally: both thresholds must hold.
func Passes(v Vote) bool {
	return SupportPasses(v) && QuorumPasses(v)
}

// canExecuteVote is the single execution gate used by both the explicit and
// the automatic paths: not yet executed, and either decided early while
// still open, or closed by time with both thresholds passing.
func canExecuteVote(v Vote, now time.Time) bool {
	if v.Executed {
		return false
	}
	if DecidedEarly(v) {
		return true
	}
	if v.IsOpen(now) {
		return false
	}
	return Passes(v)
}
