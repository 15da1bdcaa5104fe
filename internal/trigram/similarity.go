// file: internal/trigram/similarity.go
// version: 1.0.0
// guid: 8c1d5e2f-3a7b-4c9d-8e0f-6b4a2c8d1e7f

package trigram

import "unicode"

// Similarity returns the similarity of a and b as a Jaccard-style index
// over their trigram multisets: shared / (totalA + totalB - shared), where
// shared counts trigrams common to both sides with multiplicity. The
// result is in [0, 1], symmetric in its arguments, and 1.0 exactly when
// the padded trigram decompositions are identical; in particular
// Similarity(s, s) == 1 for every s including the empty string.
//
// Both inputs are lowercased before extraction, so comparison is
// case-insensitive.
func Similarity(a, b string) float64 {
	ta := extract(pad(fold([]rune(a))))
	tb := extract(pad(fold([]rune(b))))
	return score(ta, tb)
}

// score computes the multiset Jaccard index of two extracted multisets.
func score(a, b Multiset) float64 {
	shared := a.Shared(b)
	denom := a.Total() + b.Total() - shared
	if denom <= 0 {
		// Boundary padding yields at least one trigram per input, so a
		// zero denominator means the extractor is broken.
		panic("trigram: zero denominator in similarity")
	}
	return float64(shared) / float64(denom)
}

// fold lowercases rs in place one rune at a time. Per-rune folding
// preserves rune counts, so offsets into the folded text line up with the
// original.
func fold(rs []rune) []rune {
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}
