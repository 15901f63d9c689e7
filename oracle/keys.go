package oracle

import (
	"encoding/binary"

	sdk "github.com/izqui/govote/types"
)

const (
	checkpointLength = 8
)

var (
	PrefixForPowerRecordKey = []byte{0x00}
	PrefixForTotalRecordKey = []byte{0x01}
	CurrentCheckpointKey    = []byte{0x02}
)

// power records are keyed holder address then checkpoint, so one holder's
// history is a contiguous ascending range
func buildPowerRecordKey(addr sdk.AccAddress, checkpoint int64) []byte {
	key := make([]byte, len(PrefixForPowerRecordKey)+sdk.AddrLen+checkpointLength)
	copy(key, PrefixForPowerRecordKey)
	copy(key[len(PrefixForPowerRecordKey):], addr.Bytes())
	binary.BigEndian.PutUint64(key[len(PrefixForPowerRecordKey)+sdk.AddrLen:], uint64(checkpoint))
	return key
}

func buildPowerRecordKeyPrefix(addr sdk.AccAddress) []byte {
	key := make([]byte, len(PrefixForPowerRecordKey)+sdk.AddrLen)
	copy(key, PrefixForPowerRecordKey)
	copy(key[len(PrefixForPowerRecordKey):], addr.Bytes())
	return key
}

func buildTotalRecordKey(checkpoint int64) []byte {
	key := make([]byte, len(PrefixForTotalRecordKey)+checkpointLength)
	copy(key, PrefixForTotalRecordKey)
	binary.BigEndian.PutUint64(key[len(PrefixForTotalRecordKey):], uint64(checkpoint))
	return key
}
