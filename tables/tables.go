// Package tables holds the byte-indexed lookup tables used by the forward
// search over a parentheses sequence. A byte is always read LSB-first, and
// excess bookkeeping follows the search convention: consuming a 1-bit (open)
// moves the tracked value by -1, a 0-bit (close) by +1, and a match is the
// first position where the value reaches zero.
package tables

import (
	"sync"
)

// Lookup bundles the two tables. Both are indexed by raw byte value; NearFwdPos
// additionally by a biased starting excess e in [0, 16] (true value e-8).
type Lookup struct {
	// NearFwdPos[e<<8|b] is the first bit position x in [0, 8) at which the
	// running value, starting at e-8, reaches zero while scanning byte b
	// LSB-first. A value >= 8 means the byte cannot resolve the search.
	NearFwdPos [17 * 256]int8

	// WordSum[b] is the net parenthesis excess of byte b, 2*popcount(b) - 8.
	// Subtracting it advances the tracked search value across a whole byte.
	WordSum [256]int8
}

var (
	once   sync.Once
	lookup *Lookup
)

// Get returns the process-wide tables, building them on first use.
func Get() *Lookup {
	once.Do(func() {
		lookup = build()
	})
	return lookup
}

func build() *Lookup {
	t := &Lookup{}
	for b := 0; b < 256; b++ {
		sum := int8(0)
		for x := 0; x < 8; x++ {
			if b>>x&1 == 1 {
				sum++
			} else {
				sum--
			}
		}
		t.WordSum[b] = sum

		for e := 0; e <= 16; e++ {
			v := e - 8
			pos := int8(8)
			for x := 0; x < 8; x++ {
				if b>>x&1 == 1 {
					v--
				} else {
					v++
				}
				if v == 0 {
					pos = int8(x)
					break
				}
			}
			t.NearFwdPos[e<<8|b] = pos
		}
	}
	return t
}
