package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{hc: MakeCode(0, 0), expect: "\"\""},
		{hc: MakeCode(1, 0), expect: "\"0\""},
		{hc: MakeCode(3, 0x5), expect: "\"101\""},
		{hc: MakeCode(4, 0x3), expect: "\"0011\""},
	}
	for _, row := range testData {
		actual := row.hc.String()
		if actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCode_Append(t *testing.T) {
	var hc Code
	hc = hc.Append(1).Append(0).Append(1).Append(1)
	require.Equal(t, MakeCode(4, 0xb), hc)
	require.Equal(t, uint(1), hc.Bit(0))
	require.Equal(t, uint(0), hc.Bit(1))
	require.Equal(t, uint(1), hc.Bit(3))
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0xb) // 1011
	require.True(t, hc.HasPrefix(Code{}))
	require.True(t, hc.HasPrefix(MakeCode(1, 1)))
	require.True(t, hc.HasPrefix(MakeCode(3, 0x5)))
	require.True(t, hc.HasPrefix(hc))
	require.False(t, hc.HasPrefix(MakeCode(1, 0)))
	require.False(t, hc.HasPrefix(MakeCode(2, 0x3)))
	require.False(t, hc.HasPrefix(MakeCode(5, 0x16)))
}

func TestParseCode(t *testing.T) {
	hc, err := ParseCode("0011")
	require.NoError(t, err)
	require.Equal(t, MakeCode(4, 0x3), hc)
	require.Equal(t, "0011", hc.Digits())

	_, err = ParseCode("01x")
	require.Error(t, err)

	long := make([]byte, maxBitsPerCode+1)
	for i := range long {
		long[i] = '1'
	}
	_, err = ParseCode(string(long))
	require.Error(t, err)
}
