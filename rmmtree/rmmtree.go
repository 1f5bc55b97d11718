// Package rmmtree implements a range min-max tree over a balanced-parentheses
// bit sequence, built in parallel, and the forward-search navigation that a
// succinct ordered-tree representation needs. The structure follows
// Fuentes-Sepulveda et al., "Efficient Parallel Construction of Succinct
// Trees" (the rmM-tree of Navarro and Sadakane, chunk size 256, arity 2).
package rmmtree

import (
	"encoding/binary"
	"fmt"
	"math"
	"runtime"
	"unsafe"

	"SuccinctBP/bits"
	"SuccinctBP/tables"
	"SuccinctBP/utils"

	"github.com/zeebo/xxh3"
)

// ChunkSize is the number of bits summarized by one leaf.
const ChunkSize = 256

// debugChecks enables the optional well-formedness assertion at construction.
const debugChecks = false

// Tree is the immutable index: one int16 summary per leaf chunk (prefix
// excess) plus min/max/min-count summaries for every node of an implicit
// complete binary tree laid out breadth-first over a flat array. Internal
// nodes occupy [0, inner); leaf c sits at inner+c. Nodes whose subtree covers
// no populated leaf hold (min, max) = (MaxInt16, MinInt16) so that interval
// containment tests never match them.
type Tree struct {
	b   *bits.BitArray
	lut *tables.Lookup

	chunks int
	height int
	inner  int

	excess    []int16 // global excess at the end of each chunk
	mins      []int16 // minimum excess inside each node's range
	maxs      []int16 // maximum excess inside each node's range
	minCounts []int16 // occurrences of the minimum inside each node's range
}

// New builds the index over b using the given number of construction workers
// (0 or less means runtime.NumCPU()). The sequence must be longer than one
// chunk, and small enough that global excess values fit the int16 summaries.
// The caller is responsible for supplying well-formed balanced parentheses.
func New(b *bits.BitArray, workers int) (*Tree, error) {
	n := b.Len()
	if n <= ChunkSize {
		return nil, fmt.Errorf("input size %d does not exceed the chunk size %d", n, ChunkSize)
	}
	if n/2 > math.MaxInt16 {
		return nil, fmt.Errorf("input size %d overflows int16 summaries (max %d bits)", n, 2*math.MaxInt16)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	chunks := (n + ChunkSize - 1) / ChunkSize
	if workers > chunks {
		workers = chunks
	}
	height := ceilLog2(chunks)
	inner := 1<<height - 1

	t := &Tree{
		b:         b,
		lut:       tables.Get(),
		chunks:    chunks,
		height:    height,
		inner:     inner,
		excess:    make([]int16, chunks),
		mins:      make([]int16, inner+chunks),
		maxs:      make([]int16, inner+chunks),
		minCounts: make([]int16, inner+chunks),
	}
	t.build(workers)

	if debugChecks {
		assertWellFormed(b)
	}
	return t, nil
}

// Bits returns the underlying bit sequence.
func (t *Tree) Bits() *bits.BitArray {
	return t.b
}

// Chunks returns the number of leaf chunks.
func (t *Tree) Chunks() int {
	return t.chunks
}

// size is the number of populated nodes in the flat array.
func (t *Tree) size() int {
	return t.inner + t.chunks
}

// Fingerprint digests the four summary arrays. Two trees built over the same
// sequence fingerprint identically regardless of worker count.
func (t *Tree) Fingerprint() uint64 {
	h := xxh3.New()
	buf := make([]byte, 2)
	for _, arr := range [][]int16{t.excess, t.mins, t.maxs, t.minCounts} {
		for _, v := range arr {
			binary.LittleEndian.PutUint16(buf, uint16(v))
			h.Write(buf)
		}
	}
	return h.Sum64()
}

// ByteSize returns the resident size estimate of the index in bytes, not
// counting the bit sequence itself.
func (t *Tree) ByteSize() int {
	size := int(unsafe.Sizeof(*t))
	size += len(t.excess) * 2
	size += len(t.mins) * 2
	size += len(t.maxs) * 2
	size += len(t.minCounts) * 2
	return size
}

// MemDetailed returns a per-array memory report.
func (t *Tree) MemDetailed() utils.MemReport {
	return utils.MemReport{
		Name:       "rmmtree",
		TotalBytes: t.ByteSize(),
		Children: []utils.MemReport{
			{Name: "header", TotalBytes: int(unsafe.Sizeof(*t))},
			{Name: "excess", TotalBytes: len(t.excess) * 2},
			{Name: "mins", TotalBytes: len(t.mins) * 2},
			{Name: "maxs", TotalBytes: len(t.maxs) * 2},
			{Name: "min_counts", TotalBytes: len(t.minCounts) * 2},
		},
	}
}

func ceilLog2(x int) int {
	h := 0
	for 1<<h < x {
		h++
	}
	return h
}

func assertWellFormed(b *bits.BitArray) {
	excess := 0
	for i := 0; i < b.Len(); i++ {
		if b.At(i) {
			excess++
		} else {
			excess--
		}
		if excess < 0 {
			panic(fmt.Sprintf("malformed parentheses: excess negative at position %d", i))
		}
	}
	if excess != 0 {
		panic(fmt.Sprintf("malformed parentheses: final excess %d", excess))
	}
}
