package script

import (
	"encoding/binary"

	sdk "github.com/izqui/govote/types"
)

// Wire layout per action: fixed-width target address, big-endian uint32
// payload length, then the payload. Actions are concatenated until the
// buffer is exhausted; an empty buffer is a valid zero-action script.
const (
	targetLength     = sdk.AddrLen
	payloadLenLength = 4
)

// Action is one externally-targeted call of a script.
type Action struct {
	Target  sdk.AccAddress `json:"target"`
	Payload []byte         `json:"payload"`
}

// Script is an ordered sequence of actions executed atomically.
type Script []Action

// Encode produces the compact binary representation of the script.
func Encode(s Script) []byte {
	size := 0
	for _, action := range s {
		size += targetLength + payloadLenLength + len(action.Payload)
	}

	bz := make([]byte, 0, size)
	lenBuf := make([]byte, payloadLenLength)
	for _, action := range s {
		bz = append(bz, action.Target.Bytes()...)
		binary.BigEndian.PutUint32(lenBuf, uint32(len(action.Payload)))
		bz = append(bz, lenBuf...)
		bz = append(bz, action.Payload...)
	}
	return bz
}

// Decode parses the binary representation back into a Script. Any truncation
// (short target, short length prefix, payload shorter than its declared
// length) is rejected, never padded or silently dropped.
func Decode(bz []byte) (Script, sdk.Error) {
	var s Script
	for len(bz) > 0 {
		if len(bz) < targetLength+payloadLenLength {
			return nil, ErrMalformedScript(DefaultCodespace, "truncated action header")
		}
		target := make(sdk.AccAddress, targetLength)
		copy(target, bz[:targetLength])
		payloadLen := binary.BigEndian.Uint32(bz[targetLength : targetLength+payloadLenLength])
		bz = bz[targetLength+payloadLenLength:]

		if uint64(len(bz)) < uint64(payloadLen) {
			return nil, ErrMalformedScript(DefaultCodespace, "truncated action payload")
		}
		payload := make([]byte, payloadLen)
		copy(payload, bz[:payloadLen])
		bz = bz[payloadLen:]

		s = append(s, Action{Target: target, Payload: payload})
	}
	return s, nil
}
