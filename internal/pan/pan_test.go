package pan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1234", "****"},
		{"123456789", "*****6789"},
		{"4111111111111111", "411111******1111"},
		{"4111 1111-1111 1111", "411111******1111"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Mask(c.in), "Mask(%q)", c.in)
	}
}

func TestDigits(t *testing.T) {
	require.Equal(t, "15551234567", Digits("+1 (555) 123-4567"))
	require.Equal(t, "", Digits("abc"))
}
