package vote

import (
	"encoding/binary"

	sdk "github.com/izqui/govote/types"
)

const (
	voteIDLength = 8
)

var (
	PrefixForVoteKey   = []byte{0x00}
	PrefixForBallotKey = []byte{0x01}
	NextVoteIDKey      = []byte{0x02}
	ProcedureKey       = []byte{0x03}
)

func buildVoteKey(voteID int64) []byte {
	key := make([]byte, len(PrefixForVoteKey)+voteIDLength)
	copy(key, PrefixForVoteKey)
	binary.BigEndian.PutUint64(key[len(PrefixForVoteKey):], uint64(voteID))
	return key
}

func buildBallotKey(voteID int64, voter sdk.AccAddress) []byte {
	key := make([]byte, len(PrefixForBallotKey)+voteIDLength+sdk.AddrLen)
	copy(key, PrefixForBallotKey)
	binary.BigEndian.PutUint64(key[len(PrefixForBallotKey):], uint64(voteID))
	copy(key[len(PrefixForBallotKey)+voteIDLength:], voter.Bytes())
	return key
}

// all ballots of one vote share this prefix
func buildBallotKeyPrefix(voteID int64) []byte {
	key := make([]byte, len(PrefixForBallotKey)+voteIDLength)
	copy(key, PrefixForBallotKey)
	binary.BigEndian.PutUint64(key[len(PrefixForBallotKey):], uint64(voteID))
	return key
}
