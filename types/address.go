package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// AddrLen is the fixed width of account addresses, on the wire and in store keys.
const AddrLen = 20

// AccAddress identifies a token holder or an action target.
type AccAddress []byte

// AccAddressFromHex creates an AccAddress from a hex string.
func AccAddressFromHex(address string) (AccAddress, error) {
	if len(address) == 0 {
		return nil, errors.New("decoding hex address failed: must not be empty")
	}
	bz, err := hex.DecodeString(strings.TrimPrefix(address, "0x"))
	if err != nil {
		return nil, err
	}
	if len(bz) != AddrLen {
		return nil, errors.Errorf("address length should be %d bytes, got %d", AddrLen, len(bz))
	}
	return AccAddress(bz), nil
}

func (aa AccAddress) Bytes() []byte { return aa }

func (aa AccAddress) Empty() bool { return len(aa) == 0 }

func (aa AccAddress) Equals(aa2 AccAddress) bool {
	return bytes.Equal(aa.Bytes(), aa2.Bytes())
}

func (aa AccAddress) String() string {
	return strings.ToUpper(hex.EncodeToString(aa))
}

// Marshal needed for protobuf compatibility
func (aa AccAddress) Marshal() ([]byte, error) {
	return aa, nil
}

// Unmarshal needed for protobuf compatibility
func (aa *AccAddress) Unmarshal(data []byte) error {
	*aa = data
	return nil
}

// Marshals to JSON using hex
func (aa AccAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(aa.String())
}

// Unmarshals from JSON assuming hex encoding
func (aa *AccAddress) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	aa2, err := AccAddressFromHex(s)
	if err != nil {
		return err
	}
	*aa = aa2
	return nil
}
