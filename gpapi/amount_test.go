package gpapi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToNumeric(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"10", "1000"},
		{"10.5", "1050"},
		{"0.05", "005"},
		{"1234.567", "123457"},
		{"-3.10", "310"},
	}

	for _, c := range cases {
		d := decimal.RequireFromString(c.in)
		require.Equal(t, c.expected, toNumeric(&d), c.in)
	}

	require.Nil(t, toNumeric(nil))
}

func TestOpt(t *testing.T) {
	require.Nil(t, opt(""))
	require.Equal(t, "x", opt("x"))
}
