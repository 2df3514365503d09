package batch

import "math/bits"

// Bitset is a packed bit array, one bit per row, used for both the
// null/valid mask and a kernel's per-batch pass mask.
type Bitset struct {
	words []uint64
	n     int
}

// NewBitset returns a Bitset sized to hold n bits, all initially clear.
func NewBitset(n int) *Bitset {
	return &Bitset{words: make([]uint64, wordsFor(n)), n: n}
}

func wordsFor(n int) int {
	return (n + 63) / 64
}

// Reset clears all bits and resizes the bitset to hold n bits, reusing
// the backing array when it is already large enough.
func (b *Bitset) Reset(n int) {
	w := wordsFor(n)
	if cap(b.words) >= w {
		b.words = b.words[:w]
	} else {
		b.words = make([]uint64, w)
	}
	for i := range b.words {
		b.words[i] = 0
	}
	b.n = n
}

// Len returns the number of bits this bitset addresses.
func (b *Bitset) Len() int { return b.n }

// Set marks bit i as 1.
func (b *Bitset) Set(i int) {
	b.words[i/64] |= 1 << uint(i%64)
}

// Clear marks bit i as 0.
func (b *Bitset) Clear(i int) {
	b.words[i/64] &^= 1 << uint(i%64)
}

// Get reports whether bit i is set.
func (b *Bitset) Get(i int) bool {
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

// CountSet returns the number of set bits in the first n bits.
func (b *Bitset) CountSet(n int) int {
	count := 0
	full := n / 64
	for i := 0; i < full; i++ {
		count += bits.OnesCount64(b.words[i])
	}
	if rem := n % 64; rem > 0 {
		mask := uint64(1)<<uint(rem) - 1
		count += bits.OnesCount64(b.words[full] & mask)
	}
	return count
}
