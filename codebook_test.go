package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeBook(t *testing.T) {
	cb := NewCodeBook(BuildTrie(FrequencyTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}))

	expectDump := strings.Join([]string{
		"CodeBook{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 5\n",
		"\tSentinel() = \"11000\"\n",
		"\tLookup('a') = \"11001\"\n",
		"\tLookup('b') = \"1101\"\n",
		"\tLookup('c') = \"100\"\n",
		"\tLookup('d') = \"101\"\n",
		"\tLookup('e') = \"111\"\n",
		"\tLookup('f') = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = cb.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if _, found := cb.Lookup(Sentinel); found {
		t.Errorf("Lookup(Sentinel) should not find the sentinel codeword")
	}
	if _, found := cb.Lookup('z'); found {
		t.Errorf("Lookup('z') found a codeword for an absent symbol")
	}
	if n := cb.Len(); n != 6 {
		t.Errorf("expected 6 symbols, got %d", n)
	}
}

func TestCodeBook_Degenerate(t *testing.T) {
	cb := NewCodeBook(BuildTrie(FrequencyTable{}))
	require.Equal(t, 0, cb.Len())
	require.Equal(t, MakeCode(1, 0), cb.Sentinel())
	require.Equal(t, byte(1), cb.MinSize())
	require.Equal(t, byte(1), cb.MaxSize())

	cb = NewCodeBook(BuildTrie(FrequencyTable{'x': 100}))
	require.Equal(t, MakeCode(1, 0), cb.Sentinel())
	hc, found := cb.Lookup('x')
	require.True(t, found)
	require.Equal(t, MakeCode(1, 1), hc)
}

func TestCodeBook_PrefixFree(t *testing.T) {
	corpora := []string{
		"",
		"a",
		"aaab",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
		"Ünïcødé ✓ text — with ♥ and 漢字 mixed in",
		strings.Repeat("fibonacci", 3) + "a" + "bb" + "ccc" + "ddddd" + "eeeeeeee" + "fffffffffffff",
	}
	for _, corpus := range corpora {
		freq, err := CountFrequencies(corpus)
		require.NoError(t, err)
		cb := NewCodeBook(BuildTrie(freq))

		codes := []Code{cb.Sentinel()}
		for _, sym := range cb.Symbols() {
			hc, _ := cb.Lookup(sym)
			codes = append(codes, hc)
		}
		require.Len(t, codes, freq.Len()+1)

		for i, a := range codes {
			require.NotZero(t, a.Size, "corpus %q: empty codeword", corpus)
			for j, b := range codes {
				if i == j {
					continue
				}
				require.False(t, a.HasPrefix(b), "corpus %q: %v is a prefix of %v", corpus, b, a)
			}
		}
	}
}

func TestCodeBook_MarshalJSON(t *testing.T) {
	cb := NewCodeBook(BuildTrie(FrequencyTable{'a': 3, 'b': 1}))

	raw, err := cb.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"codes":{"a":"1","b":"01"},"sentinel":"00"}`, string(raw))
}
