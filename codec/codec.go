package codec

import (
	"bytes"
	"encoding/json"

	amino "github.com/tendermint/go-amino"
)

// amino codec to be used throughout the engine
type Codec = amino.Codec

func New() *Codec {
	return amino.NewCodec()
}

// MarshalJSONIndent provides an auxiliary function to return Proto3 JSON
// marshaled and indented bytes.
func MarshalJSONIndent(cdc *Codec, obj interface{}) ([]byte, error) {
	bz, err := cdc.MarshalJSON(obj)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err = json.Indent(&out, bz, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
