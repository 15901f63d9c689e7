package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDecFromStr(t *testing.T) {
	cases := []struct {
		input   string
		wantErr bool
		want    Dec
	}{
		{"0", false, ZeroDec()},
		{"1", false, OneDec()},
		{"0.5", false, NewDecWithPrec(5, 1)},
		{"0.00000001", false, NewDecWithPrec(1, 8)},
		{"-0.5", false, NewDecWithPrec(-5, 1)},
		{"", true, Dec{}},
		{".", true, Dec{}},
		{"0.5.5", true, Dec{}},
		{"hello", true, Dec{}},
		// more fractional digits than the precision carries
		{"0.000000001", true, Dec{}},
	}

	for _, tc := range cases {
		d, err := NewDecFromStr(tc.input)
		if tc.wantErr {
			require.NotNil(t, err, "input %q", tc.input)
			continue
		}
		require.Nil(t, err, "input %q", tc.input)
		require.True(t, d.Equal(tc.want), "input %q got %s", tc.input, d.String())
	}
}

func TestDecStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00000000", "1.00000000", "0.50000000", "42.12345678"} {
		d, err := NewDecFromStr(s)
		require.Nil(t, err)
		require.Equal(t, s, d.String())
	}
}

func TestDecArithmeticAndComparison(t *testing.T) {
	half := NewDecWithPrec(5, 1)
	quarter := NewDecWithPrec(25, 2)

	require.True(t, half.Add(quarter).Equal(NewDecWithPrec(75, 2)))
	require.True(t, half.Sub(quarter).Equal(quarter))
	require.True(t, half.GT(quarter))
	require.True(t, quarter.LT(half))
	require.True(t, half.GTE(half))
	require.True(t, half.LTE(half))
	require.True(t, ZeroDec().IsZero())

	require.True(t, MinDec(half, quarter).Equal(quarter))
	require.True(t, MaxDec(half, quarter).Equal(half))
}

func TestDecJSONRoundTrip(t *testing.T) {
	d := NewDecWithPrec(5, 1)
	bz, err := json.Marshal(d)
	require.NoError(t, err)

	var back Dec
	require.NoError(t, json.Unmarshal(bz, &back))
	require.True(t, d.Equal(back))
}
