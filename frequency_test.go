package huffman

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountFrequencies(t *testing.T) {
	freq, err := CountFrequencies("hello")
	require.NoError(t, err)
	require.Equal(t, 4, freq.Len())
	require.Equal(t, uint64(5), freq.Total())
	require.Equal(t, uint64(2), freq.Count('l'))
	require.Equal(t, uint64(0), freq.Count('z'))
	require.Equal(t, []Symbol{'e', 'h', 'l', 'o'}, freq.Symbols())

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\t'e': 1\n",
		"\t'h': 1\n",
		"\t'l': 2\n",
		"\t'o': 1\n",
		"}\n",
	}, "")
	var buf strings.Builder
	_, _ = freq.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	freq, err := CountFrequencies("")
	require.NoError(t, err)
	require.Equal(t, 0, freq.Len())
	require.Equal(t, uint64(0), freq.Total())
}

func TestCountFrequencies_Multibyte(t *testing.T) {
	freq, err := CountFrequencies("ééa")
	require.NoError(t, err)
	require.Equal(t, uint64(2), freq.Count('é'))
	require.Equal(t, uint64(1), freq.Count('a'))
}

func TestCountFrequencies_Errors(t *testing.T) {
	_, err := CountFrequencies("ab\xffc")
	require.True(t, errors.Is(err, ErrInvalidUTF8), "got %v", err)

	_, err = CountFrequencies("ab\x17c")
	require.True(t, errors.Is(err, ErrReservedSymbol), "got %v", err)

	// a literal U+FFFD is valid input
	freq, err := CountFrequencies("�")
	require.NoError(t, err)
	require.Equal(t, uint64(1), freq.Count(0xFFFD))
}

func TestSymbol_String(t *testing.T) {
	require.Equal(t, "ETB", Sentinel.String())
	require.Equal(t, "'a'", Symbol('a').String())
	require.Equal(t, "<invalid>", InvalidSymbol.String())
	require.Equal(t, "#2", (firstSyntheticSymbol + 2).String())
	require.True(t, (firstSyntheticSymbol + 2).IsSynthetic())
	require.False(t, Symbol('a').IsSynthetic())
	require.False(t, InvalidSymbol.IsSynthetic())
}
