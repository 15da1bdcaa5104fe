// file: internal/trigram/trigram.go
// version: 1.0.0
// guid: 4f8a2b6c-9d3e-4a1f-b5c7-2e8d0a6f4b9c

// Package trigram computes fuzzy similarity between strings from their
// trigram (3-character substring) decomposition, modeled on the PostgreSQL
// pg_trgm extension, and locates approximate occurrences of a short
// pattern inside a longer text.
package trigram

// Trigram is a sequence of exactly three Unicode code points. A fixed-size
// rune array keeps map hashing and equality cheap and guarantees that
// multi-byte encodings are never split mid-character.
type Trigram [3]rune

// String returns the trigram's characters as a string.
func (t Trigram) String() string {
	return string(t[:])
}

// Multiset maps each distinct trigram of a string to its occurrence count.
// Every count present is at least 1.
type Multiset map[Trigram]int

// Total returns the number of trigrams in the multiset counting
// multiplicity. For a multiset built by Extract this is always the rune
// length of the source string plus one.
func (m Multiset) Total() int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}

// Shared returns the size of the multiset intersection with o: the
// per-trigram minimum of the two counts, summed over all distinct
// trigrams. Repeated trigrams count as many times as they appear on both
// sides.
func (m Multiset) Shared(o Multiset) int {
	if len(o) < len(m) {
		m, o = o, m
	}
	shared := 0
	for t, c := range m {
		if oc := o[t]; oc < c {
			shared += oc
		} else {
			shared += c
		}
	}
	return shared
}

// Extract returns the trigram multiset of s. The string is padded with two
// leading and one trailing space before windowing, so string edges
// contribute signal and every input, including the empty string, yields at
// least one trigram. Extract does not fold case; callers wanting
// case-insensitive comparison normalize their input first.
func Extract(s string) Multiset {
	return extract(pad([]rune(s)))
}

// extract counts every contiguous 3-rune window of an already padded
// rune sequence.
func extract(padded []rune) Multiset {
	m := make(Multiset, len(padded)-2)
	for i := 0; i+3 <= len(padded); i++ {
		m[Trigram{padded[i], padded[i+1], padded[i+2]}]++
	}
	return m
}

// pad wraps rs in the boundary markers: two leading spaces and one
// trailing space.
func pad(rs []rune) []rune {
	padded := make([]rune, 0, len(rs)+3)
	padded = append(padded, ' ', ' ')
	padded = append(padded, rs...)
	padded = append(padded, ' ')
	return padded
}
