package rmmtree

import (
	"math/rand"
	"strings"

	"SuccinctBP/bits"
)

// genBalanced produces a random well-formed parentheses sequence of n bits.
func genBalanced(n int, seed int64) *bits.BitArray {
	if n%2 != 0 {
		panic("genBalanced: odd length")
	}
	rng := rand.New(rand.NewSource(seed))
	b := bits.NewBitArray(n)
	opens, excess := n/2, 0
	for i := 0; i < n; i++ {
		remaining := n - i
		var open bool
		switch {
		case excess == 0:
			open = true
		case opens == 0 || excess >= remaining:
			open = false
		default:
			open = rng.Intn(2) == 0
		}
		if open {
			b.Set(i, true)
			opens--
			excess++
		} else {
			excess--
		}
	}
	return b
}

// naiveExcess returns the inclusive prefix excess of every position.
func naiveExcess(b *bits.BitArray) []int {
	out := make([]int, b.Len())
	excess := 0
	for i := 0; i < b.Len(); i++ {
		if b.At(i) {
			excess++
		} else {
			excess--
		}
		out[i] = excess
	}
	return out
}

// naiveFindClose matches parentheses with an explicit stack. Positions that
// do not hold an open get -1.
func naiveFindClose(b *bits.BitArray) []int {
	out := make([]int, b.Len())
	for i := range out {
		out[i] = -1
	}
	var stack []int
	for i := 0; i < b.Len(); i++ {
		if b.At(i) {
			stack = append(stack, i)
		} else {
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out[j] = i
		}
	}
	return out
}

// rightComb builds a right-leaning comb of exactly n bits: a spine of nodes
// each carrying one leaf child, topped up with leaf pairs at the root level.
func rightComb(n int) *bits.BitArray {
	var sb strings.Builder
	depth := (n - 2) / 4
	for i := 0; i < depth; i++ {
		sb.WriteString("(()")
	}
	sb.WriteString("()")
	for i := 0; i < depth; i++ {
		sb.WriteByte(')')
	}
	for sb.Len() < n {
		sb.WriteString("()")
	}
	return mustParens(sb.String())
}

func mustParens(s string) *bits.BitArray {
	b, err := bits.NewFromParentheses(s)
	if err != nil {
		panic(err)
	}
	return b
}
