// Package analytics computes letter-frequency statistics over sanitized text.
package analytics

import (
	"fmt"
	"sort"
)

// AlphabetSize is the number of tracked letters: the case-folded Latin
// alphabet a-z. Characters outside it are ignored by counting.
const AlphabetSize = 26

// LetterCounts holds one count per lowercase Latin letter. Index 0 is 'a'.
// The zero value is a valid all-zero tally.
type LetterCounts [AlphabetSize]int64

// Counter tallies letter frequencies. It holds no state, so a single
// instance is safely shared across concurrent workers.
type Counter struct{}

// Count returns the per-letter frequencies of text. Only lowercase a-z is
// counted; the input is expected to be sanitized already, but uppercase and
// non-letter bytes are simply ignored rather than erroring.
func (c *Counter) Count(text string) LetterCounts {
	var counts LetterCounts
	for i := 0; i < len(text); i++ {
		if ch := text[i]; ch >= 'a' && ch <= 'z' {
			counts[ch-'a']++
		}
	}
	return counts
}

// Merge aggregates partial tallies into a single total by pointwise
// summation. Summation is commutative and associative, so the order in which
// partials arrive never changes the result.
func Merge(partials []LetterCounts) LetterCounts {
	var total LetterCounts
	for _, p := range partials {
		for i, n := range p {
			total[i] += n
		}
	}
	return total
}

// Add accumulates other into c in place.
func (c *LetterCounts) Add(other LetterCounts) {
	for i, n := range other {
		c[i] += n
	}
}

// Get returns the count for letter, which must be in 'a'..'z'.
func (c LetterCounts) Get(letter byte) int64 {
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return c[letter-'a']
}

// Total returns the sum of all letter counts.
func (c LetterCounts) Total() int64 {
	var sum int64
	for _, n := range c {
		sum += n
	}
	return sum
}

// Distinct returns how many letters occur at least once.
func (c LetterCounts) Distinct() int {
	distinct := 0
	for _, n := range c {
		if n > 0 {
			distinct++
		}
	}
	return distinct
}

// ToMap converts the tally to a letter->count map for serialization.
// Letters with a zero count are included so consumers always see 26 entries.
func (c LetterCounts) ToMap() map[string]int64 {
	m := make(map[string]int64, AlphabetSize)
	for i, n := range c {
		m[string(rune('a'+i))] = n
	}
	return m
}

// FromMap rebuilds a tally from a serialized letter->count map. Keys outside
// a-z are ignored.
func FromMap(m map[string]int64) LetterCounts {
	var counts LetterCounts
	for k, v := range m {
		if len(k) == 1 && k[0] >= 'a' && k[0] <= 'z' {
			counts[k[0]-'a'] = v
		}
	}
	return counts
}

// TopLetters returns the n most frequent letters as "letter:count" strings,
// sorted by count descending with ties broken alphabetically. Letters that
// never occur are excluded.
func TopLetters(counts LetterCounts, n int) []string {
	type kv struct {
		letter byte
		count  int64
	}

	ss := make([]kv, 0, AlphabetSize)
	for i, v := range counts {
		if v > 0 {
			ss = append(ss, kv{letter: byte('a' + i), count: v})
		}
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].count != ss[j].count {
			return ss[i].count > ss[j].count
		}
		return ss[i].letter < ss[j].letter
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	top := make([]string, limit)
	for i := 0; i < limit; i++ {
		top[i] = fmt.Sprintf("%c:%d", ss[i].letter, ss[i].count)
	}
	return top
}
