package pattern

import (
	"math/bits"
	"unicode/utf8"

	"github.com/hideo55/go-popcount"
)

const pageWords = 4 // 4 × 64 bits = 256 code points per page

// CharSet is a set of code points.
// It's a two-level page table:
//   - top[hi] = page index (1..NumPages), or 0 meaning "page absent",
//     where hi is the code point shifted right by 8
//   - pages is a flat array of NumPages 256-bit pages
//
// Membership tests are O(1) with two slice reads. A CharSet is built once and
// treated as immutable afterwards; copies share their pages.
type CharSet struct {
	top   []uint16
	pages []uint64 // flat: NumPages*4
}

// Add inserts c. Negative or otherwise invalid code points are ignored.
func (s *CharSet) Add(c rune) {
	if c < 0 || c > utf8.MaxRune {
		return
	}
	pi := s.ensurePage(int(c >> 8))
	base := int(pi-1) * pageWords
	lo := uint(c & 0xFF)
	s.pages[base+int(lo>>6)] |= 1 << (lo & 63)
}

// Contains reports whether c is a member of s.
func (s CharSet) Contains(c rune) bool {
	if c < 0 {
		return false
	}
	hi := int(c >> 8)
	if hi >= len(s.top) {
		return false
	}
	pi := s.top[hi]
	if pi == 0 {
		return false
	}
	base := int(pi-1) * pageWords
	lo := uint(c & 0xFF)
	return s.pages[base+int(lo>>6)]&(1<<(lo&63)) != 0
}

// Len returns the number of members.
func (s CharSet) Len() int {
	var n uint64
	for _, w := range s.pages {
		n += popcount.Count(w)
	}
	return int(n)
}

// Empty is true for a set without members.
func (s CharSet) Empty() bool {
	for _, w := range s.pages {
		if w != 0 {
			return false
		}
	}
	return true
}

// Runes returns the members of s in ascending order.
func (s CharSet) Runes() []rune {
	runes := make([]rune, 0, s.Len())
	for hi, pi := range s.top {
		if pi == 0 {
			continue
		}
		base := int(pi-1) * pageWords
		for w := 0; w < pageWords; w++ {
			word := s.pages[base+w]
			for word != 0 {
				b := bits.TrailingZeros64(word)
				runes = append(runes, rune(hi<<8|w<<6|b))
				word &= word - 1
			}
		}
	}
	return runes
}

// NumPages returns the number of allocated pages.
func (s CharSet) NumPages() int { return len(s.pages) / pageWords }

// ensurePage ensures that the page for high bits hi exists.
// Returns the 1-based page index.
func (s *CharSet) ensurePage(hi int) uint16 {
	if hi >= len(s.top) {
		s.top = append(s.top, make([]uint16, hi+1-len(s.top))...)
	}
	pi := s.top[hi]
	if pi != 0 {
		return pi
	}
	s.pages = append(s.pages, make([]uint64, pageWords)...)
	pi = uint16(len(s.pages) / pageWords)
	s.top[hi] = pi
	return pi
}
