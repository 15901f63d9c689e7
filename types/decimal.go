package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NOTE: never use new(Dec) or else we will panic unmarshalling into the
// nil embedded int64
type Dec struct {
	int64 `json:"int"`
}

// number of decimal places
const (
	Precision = 8
)

var precisionReuse = func() int64 {
	p := int64(1)
	for i := 0; i < Precision; i++ {
		p *= 10
	}
	return p
}()

var precisionMultipliers []int64

// Set precision multipliers
func init() {
	precisionMultipliers = make([]int64, Precision+1)
	m := precisionReuse
	for i := 0; i <= Precision; i++ {
		precisionMultipliers[i] = m
		m /= 10
	}
}

func precisionInt() int64 {
	return precisionReuse
}

// nolint - common values
func ZeroDec() Dec { return Dec{0} }
func OneDec() Dec  { return Dec{precisionInt()} }

// get the precision multiplier
func precisionMultiplier(prec int64) int64 {
	if prec > Precision {
		panic(fmt.Sprintf("too much precision, maximum %v, provided %v", Precision, prec))
	}
	return precisionMultipliers[prec]
}

//______________________________________________________________________________________________

// create a new Dec from integer assuming whole number
func NewDec(i int64) Dec {
	return NewDecWithPrec(i, 0)
}

// create a new Dec from integer with decimal place at prec
// CONTRACT: prec <= Precision
func NewDecWithPrec(i, prec int64) Dec {
	if i == 0 {
		return Dec{0}
	}
	c := i * precisionMultiplier(prec)
	if c/i != precisionMultiplier(prec) {
		panic("Int overflow")
	}
	return Dec{c}
}

// create a decimal from an input decimal string.
// valid must come in the form:
//   (-) whole integers (.) decimal integers
//
// NOTE - An error will return if more decimal places
// are provided in the string than the constant Precision.
func NewDecFromStr(str string) (d Dec, err Error) {
	if len(str) == 0 {
		return d, ErrUnknownRequest("decimal string is empty")
	}

	// first extract any negative symbol
	neg := false
	if str[0] == '-' {
		neg = true
		str = str[1:]
	}

	if len(str) == 0 {
		return d, ErrUnknownRequest("decimal string is empty")
	}

	strs := strings.Split(str, ".")
	lenDecs := 0
	combinedStr := strs[0]
	if len(strs) == 2 {
		lenDecs = len(strs[1])
		if lenDecs == 0 || len(combinedStr) == 0 {
			return d, ErrUnknownRequest("bad decimal length")
		}
		combinedStr = combinedStr + strs[1]
	} else if len(strs) > 2 {
		return d, ErrUnknownRequest("too many periods to be a decimal string")
	}

	if lenDecs > Precision {
		return d, ErrUnknownRequest(
			fmt.Sprintf("too much precision, maximum %v, len decimal %v", Precision, lenDecs))
	}

	// add some extra zero's to correct to the Precision factor
	zerosToAdd := Precision - lenDecs
	zeros := fmt.Sprintf(`%0`+strconv.Itoa(zerosToAdd)+`s`, "")
	combinedStr = combinedStr + zeros

	combined, parseErr := strconv.ParseInt(combinedStr, 10, 64)
	if parseErr != nil {
		return d, ErrUnknownRequest(fmt.Sprintf("bad string to integer conversion, combinedStr: %v, error: %v", combinedStr, parseErr))
	}
	if neg {
		combined = -combined
	}
	return Dec{combined}, nil
}

//______________________________________________________________________________________________
//nolint
func (d Dec) IsZero() bool      { return d.int64 == 0 }
func (d Dec) Equal(d2 Dec) bool { return d.int64 == d2.int64 }
func (d Dec) GT(d2 Dec) bool    { return d.int64 > d2.int64 }
func (d Dec) GTE(d2 Dec) bool   { return d.int64 >= d2.int64 }
func (d Dec) LT(d2 Dec) bool    { return d.int64 < d2.int64 }
func (d Dec) LTE(d2 Dec) bool   { return d.int64 <= d2.int64 }

// RawInt exposes the scaled integer representation (value * 10^Precision).
// Threshold comparisons cross-multiply on this to stay exact.
func (d Dec) RawInt() int64 { return d.int64 }

// PrecisionUnit is the scale factor of RawInt.
func PrecisionUnit() int64 { return precisionReuse }

// addition
func (d Dec) Add(d2 Dec) Dec {
	c := d.int64 + d2.int64
	if (c > d.int64) != (d2.int64 > 0) {
		panic("Int overflow")
	}
	return Dec{c}
}

// subtraction
func (d Dec) Sub(d2 Dec) Dec {
	c := d.int64 - d2.int64
	if (c < d.int64) != (d2.int64 > 0) {
		panic("Int overflow")
	}
	return Dec{c}
}

func (d Dec) String() string {
	s := strconv.FormatInt(d.int64, 10)
	bz := []byte(s)
	var bzWDec []byte
	inputSize := len(bz)
	// case 1, purely decimal
	if inputSize <= Precision {
		bzWDec = make([]byte, Precision+2)
		// 0. prefix
		bzWDec[0] = byte('0')
		bzWDec[1] = byte('.')
		// set relevant digits to 0
		for i := 0; i < Precision-inputSize; i++ {
			bzWDec[i+2] = byte('0')
		}
		// set last few digits
		copy(bzWDec[2+(Precision-inputSize):], bz)
	} else {
		// inputSize + 1 to account for the decimal point that is being added
		bzWDec = make([]byte, inputSize+1)
		copy(bzWDec, bz[:inputSize-Precision])
		bzWDec[inputSize-Precision] = byte('.')
		copy(bzWDec[inputSize-Precision+1:], bz[inputSize-Precision:])
	}
	return string(bzWDec)
}

//___________________________________________________________________________________

func (d Dec) MarshalAmino() (int64, error) {
	return d.int64, nil
}

func (d *Dec) UnmarshalAmino(v int64) (err error) {
	d.int64 = v
	return nil
}

func (d Dec) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatInt(d.int64, 10)), nil
}

func (d *Dec) UnmarshalText(text []byte) error {
	v, err := strconv.ParseInt(string(text), 10, 64)
	d.int64 = v
	return err
}

// MarshalJSON marshals the decimal
func (d Dec) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON defines custom decoding scheme
func (d *Dec) UnmarshalJSON(bz []byte) error {
	var text string
	err := json.Unmarshal(bz, &text)
	if err != nil {
		return err
	}
	newDec, err2 := NewDecFromStr(text)
	if err2 != nil {
		return err2
	}
	d.int64 = newDec.int64
	return nil
}

//___________________________________________________________________________________
// helpers

// minimum decimal between two
func MinDec(d1, d2 Dec) Dec {
	if d1.LT(d2) {
		return d1
	}
	return d2
}

// maximum decimal between two
func MaxDec(d1, d2 Dec) Dec {
	if d1.LT(d2) {
		return d2
	}
	return d1
}
