package bits

import (
	"fmt"
	"strings"
)

// NewFromParentheses builds a BitArray from a parentheses string, '(' as 1
// and ')' as 0. It rejects any other character; it does not check balance.
func NewFromParentheses(text string) (*BitArray, error) {
	b := NewBitArray(len(text))
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			b.words[i/64] |= uint64(1) << (i % 64)
		case ')':
		default:
			return nil, fmt.Errorf("invalid parentheses character %q at position %d", text[i], i)
		}
	}
	return b, nil
}

// ToParentheses renders the bit sequence back as a parentheses string.
func (b *BitArray) ToParentheses() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.At(i) {
			sb.WriteByte('(')
		} else {
			sb.WriteByte(')')
		}
	}
	return sb.String()
}
