package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Trie is a Huffman trie.  Leaves are labelled by natural symbols (code
// points, including Sentinel) and internal nodes by synthetic symbols.
//
// A Trie is immutable once built and may be read from multiple goroutines.
type Trie struct {
	weights map[Symbol]uint64
	merges  []merge
	root    symbolAndFreq
}

// merge records the two children of one internal node.  The internal node's
// synthetic symbol is firstSyntheticSymbol plus its index in Trie.merges.
type merge struct {
	left   Symbol
	right  Symbol
	weight uint64
}

// BuildTrie constructs the Huffman trie for the given frequency table.  The
// Sentinel symbol is added with a weight of 1; freq itself must not contain
// it.  Symbols with a count of 0 are left out.
//
// Nodes are merged lowest weight first.  Ties are broken by comparing
// symbols as unsigned integers: leaves order by ascending code point, and
// because synthetic symbols are negative, every internal node orders after
// every leaf of equal weight, and internal nodes order among themselves by
// creation.  The first node popped becomes the left child.
//
func BuildTrie(freq FrequencyTable) *Trie {
	_, hasSentinel := freq[Sentinel]
	assert.Assertf(!hasSentinel, "frequency table contains the reserved symbol %v", Sentinel)

	weights := make(map[Symbol]uint64, len(freq)+1)
	nodes := make([]symbolAndFreq, 0, len(freq)+1)
	nodes = append(nodes, symbolAndFreq{Sentinel, 1})
	weights[Sentinel] = 1
	for symbol, count := range freq {
		assert.Assertf(symbol >= 0 && symbol <= MaxSymbol, "invalid symbol %d", int32(symbol))
		if count == 0 {
			continue
		}
		nodes = append(nodes, symbolAndFreq{symbol, count})
		weights[symbol] = count
	}

	// Step 1: build a minheap.

	h := freqHeap{nodes}
	h.Init()

	// Step 2: pop two nodes, merge them into a new internal node labelled
	// by the next synthetic symbol, and push that back.  A tree with n
	// leaves has exactly n-1 internal nodes.

	merges := make([]merge, 0, h.Len()-1)
	nextSyntheticSymbol := firstSyntheticSymbol

	for h.Len() > 1 {
		x := heap.Pop(&h).(symbolAndFreq)
		y := heap.Pop(&h).(symbolAndFreq)

		freqSum := x.freq + y.freq
		assert.Assertf(freqSum >= x.freq, "weight overflow merging %v and %v", x.symbol, y.symbol)

		merges = append(merges, merge{x.symbol, y.symbol, freqSum})
		heap.Push(&h, symbolAndFreq{nextSyntheticSymbol, freqSum})
		nextSyntheticSymbol++
	}

	root := heap.Pop(&h).(symbolAndFreq)

	return &Trie{
		weights: weights,
		merges:  merges,
		root:    root,
	}
}

// Root returns the symbol labelling the root node.  It is a synthetic symbol
// unless the trie holds only the Sentinel leaf.
func (t *Trie) Root() Symbol {
	return t.root.symbol
}

// Len returns the number of leaves, including the Sentinel.
func (t *Trie) Len() int {
	return len(t.weights)
}

// Weight returns the weight of the node labelled by sym, or 0 if no such
// node exists.
func (t *Trie) Weight(sym Symbol) uint64 {
	if sym.IsSynthetic() {
		if m, found := t.merge(sym); found {
			return m.weight
		}
		return 0
	}
	return t.weights[sym]
}

// Children returns the left and right children of the internal node
// labelled by sym.  If sym does not label an internal node, ok is false.
func (t *Trie) Children(sym Symbol) (left Symbol, right Symbol, ok bool) {
	m, found := t.merge(sym)
	if !found {
		return InvalidSymbol, InvalidSymbol, false
	}
	return m.left, m.right, true
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Trie) Depth() int {
	var depth int
	t.walk(func(_ Symbol, path Code) {
		if int(path.Size) > depth {
			depth = int(path.Size)
		}
	})
	return depth
}

// Dump writes a programmer-readable debugging dump of the trie to the given
// writer: one line per internal node, in the order they were merged.
func (t *Trie) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Trie{\n")
	fmt.Fprintf(&buf, "\tRoot() = %v\n", t.root.symbol)
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.root.freq)
	for index, m := range t.merges {
		sym := firstSyntheticSymbol + Symbol(index)
		fmt.Fprintf(&buf, "\t%v = {%v:%d, %v:%d}\n", sym, m.left, t.Weight(m.left), m.right, t.Weight(m.right))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Trie) merge(sym Symbol) (merge, bool) {
	if !sym.IsSynthetic() {
		return merge{}, false
	}
	index := int64(sym) - int64(firstSyntheticSymbol)
	if index >= int64(len(t.merges)) {
		return merge{}, false
	}
	return t.merges[index], true
}

// walk visits every leaf in depth-first, left-to-right order, passing the
// leaf's symbol and its root-to-leaf path.  A root that is itself a leaf is
// given the path "0", so that even a trie of one leaf yields a non-empty
// codeword.
//
// The walk uses an explicit stack rather than recursion.
//
func (t *Trie) walk(visit func(sym Symbol, path Code)) {
	if !t.root.symbol.IsSynthetic() {
		visit(t.root.symbol, MakeCode(1, 0))
		return
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// path always holds the bits leading to the item on top of the stack.

	type stackItem struct {
		s Symbol
		x byte
	}

	stack := make([]stackItem, 0, log2uint64(uint64(len(t.weights))))
	var path Code

	stackPush := func(symbol Symbol) {
		stack = append(stack, stackItem{s: symbol, x: 0})
	}

	stackPop := func() {
		stack = stack[:len(stack)-1]
		if len(stack) != 0 {
			path.Size--
			path.Bits >>= 1
		}
	}

	processChild := func(child Symbol, bit uint) {
		childPath := path.Append(bit)
		if child.IsSynthetic() {
			stackPush(child)
			path = childPath
			return
		}
		visit(child, childPath)
	}

	// And now the tree-walking loop.
	stackPush(t.root.symbol)
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		m, _ := t.merge(top.s)
		switch x {
		case 0:
			processChild(m.left, 0)
		case 1:
			processChild(m.right, 1)
		case 2:
			stackPop()
		}
	}
}

// type symbolAndFreq + type freqHeap {{{

type symbolAndFreq struct {
	symbol Symbol
	freq   uint64
}

type freqHeap struct {
	list []symbolAndFreq
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return uint32(a.symbol) < uint32(b.symbol)
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(symbolAndFreq))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
