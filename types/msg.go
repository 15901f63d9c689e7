package types

import (
	"encoding/json"

	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
)

// Msg is a serialized operation request routed to a module handler.
type Msg interface {
	// Route returns the name of the module the message is routed to.
	Route() string

	// Type returns a human-readable string for the message.
	Type() string

	// ValidateBasic does a stateless validity check.
	ValidateBasic() Error

	// GetSignBytes returns the canonical byte representation of the Msg.
	GetSignBytes() []byte

	// GetSigners returns the addresses that must authorize the Msg.
	GetSigners() []AccAddress
}

// Handler processes one Msg to completion.
type Handler func(ctx Context, msg Msg) Result

// Querier serves read-only queries by path.
type Querier func(ctx Context, path []string, req abci.RequestQuery) ([]byte, Error)

//----------------------------------------
// Result

// Result is the union of a handler's outcome.
type Result struct {
	Code      CodeType
	Codespace CodespaceType
	Data      []byte
	Log       string
	Tags      Tags
}

func (res Result) IsOK() bool {
	return res.Code == CodeOK
}

//----------------------------------------
// Tags

// Tags are key-value metadata attached to a Result for observers.
type Tags []cmn.KVPair

func NewTags(tags ...interface{}) Tags {
	var ret Tags
	if len(tags)%2 != 0 {
		panic("odd number of tag arguments")
	}
	for i := 0; i < len(tags); i += 2 {
		ret = append(ret, MakeTag(tags[i].(string), toBytes(tags[i+1])))
	}
	return ret
}

func (t Tags) AppendTag(k string, v []byte) Tags {
	return append(t, MakeTag(k, v))
}

func MakeTag(k string, v []byte) cmn.KVPair {
	return cmn.KVPair{Key: []byte(k), Value: v}
}

func toBytes(v interface{}) []byte {
	switch x := v.(type) {
	case []byte:
		return x
	case string:
		return []byte(x)
	default:
		panic("tag value must be string or []byte")
	}
}

//----------------------------------------
// sign bytes

// MustSortJSON canonicalizes a JSON document by sorting its keys; panics on
// malformed input. Used for deterministic Msg sign bytes.
func MustSortJSON(toSortJSON []byte) []byte {
	var c interface{}
	if err := json.Unmarshal(toSortJSON, &c); err != nil {
		panic(err)
	}
	js, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}
	return js
}
