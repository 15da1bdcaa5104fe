// file: internal/trigram/finder.go
// version: 1.0.0
// guid: 2e9b7c4d-6f1a-4e8b-a3c5-9d0e7f2b5a8c

package trigram

// DefaultThreshold is a practical similarity cutoff for FindWords. It
// matches the value commonly used with pg_trgm's % operator.
const DefaultThreshold = 0.3

// windowSlack bounds how far candidate window lengths may deviate from the
// needle length. Windows both shorter and longer than the needle are
// tried, so matches with a few insertions or deletions are still found,
// while the scan stays linear in the haystack length.
const windowSlack = 2

// Match is one approximate occurrence of a needle inside a haystack.
// Start and End are rune offsets into the haystack (End exclusive); Text
// is the matched span with its original casing; Score is the similarity
// between the needle and that span. A Match is immutable once yielded.
type Match struct {
	Start int
	End   int
	Text  string
	Score float64
}

// Matches is a lazy iterator over approximate occurrences of a needle in
// a haystack. Each call to FindWords creates an independent iterator;
// consuming one is a single forward scan that advances only as far as
// Next is asked to go.
//
//	it := trigram.FindWords("cat", "the cat sat", trigram.DefaultThreshold)
//	for it.Next() {
//		m := it.Match()
//		fmt.Println(m.Start, m.End, m.Text, m.Score)
//	}
type Matches struct {
	needle    Multiset
	orig      []rune // haystack with original casing, for Match.Text
	folded    []rune // lowercased haystack, same rune offsets
	threshold float64
	minLen    int
	maxLen    int

	pos        int   // next start offset to evaluate
	best       Match // representative of the open candidate cluster
	clusterEnd int   // exclusive end of the union of cluster candidates
	open       bool
	cur        Match
	done       bool
}

// FindWords returns a lazy iterator over the approximate occurrences of
// needle within haystack whose similarity reaches threshold. Windows with
// lengths near the needle's rune length are slid across the haystack and
// scored with the Similarity formula; overlapping qualifying windows are
// merged into a single Match per contiguous region, keeping the highest
// scoring window (ties broken by earliest start, then shortest span).
// Matches are yielded in ascending start order.
//
// Both strings are lowercased once up front. An empty needle or an empty
// haystack produces an already exhausted iterator.
func FindWords(needle, haystack string, threshold float64) *Matches {
	orig := []rune(haystack)
	folded := fold(append([]rune(nil), orig...))
	n := fold([]rune(needle))

	it := &Matches{
		orig:      orig,
		folded:    folded,
		threshold: threshold,
	}
	if len(n) == 0 || len(folded) == 0 {
		it.done = true
		return it
	}

	it.needle = extract(pad(n))
	it.minLen = len(n) - windowSlack
	if it.minLen < 1 {
		it.minLen = 1
	}
	it.maxLen = len(n) + windowSlack
	return it
}

// Next advances the iterator to the next match, returning false when the
// scan is complete. The haystack is examined only as far as needed to
// prove that the returned match cannot be extended by a later overlapping
// window.
func (it *Matches) Next() bool {
	if it.done {
		return false
	}
	for it.pos < len(it.folded) {
		if it.open && it.pos >= it.clusterEnd {
			// Every window from here on starts at or past the cluster's
			// end, so the cluster is final.
			it.cur = it.finalize()
			return true
		}
		it.scanAt(it.pos)
		it.pos++
	}
	it.done = true
	if it.open {
		it.cur = it.finalize()
		return true
	}
	return false
}

// Match returns the match found by the last successful call to Next.
func (it *Matches) Match() Match {
	return it.cur
}

// Collect consumes the remainder of the iterator and returns the matches
// in order. It materializes everything left, so prefer Next when only a
// prefix of the results is needed.
func (it *Matches) Collect() []Match {
	var out []Match
	for it.Next() {
		out = append(out, it.Match())
	}
	return out
}

// scanAt scores every candidate window starting at the given offset and
// folds qualifying ones into the open cluster.
func (it *Matches) scanAt(start int) {
	maxLen := it.maxLen
	if rem := len(it.folded) - start; rem < maxLen {
		maxLen = rem
	}
	for l := it.minLen; l <= maxLen; l++ {
		end := start + l
		win := extract(pad(it.folded[start:end]))
		s := score(it.needle, win)
		if s < it.threshold {
			continue
		}
		it.add(Match{Start: start, End: end, Score: s})
	}
}

// add merges a qualifying candidate into the open cluster, or opens a new
// one. Candidates arrive in ascending start order, and scanAt is only
// invoked at offsets before clusterEnd while a cluster is open, so every
// candidate seen here overlaps the cluster.
func (it *Matches) add(c Match) {
	if !it.open {
		it.open = true
		it.best = c
		it.clusterEnd = c.End
		return
	}
	if c.End > it.clusterEnd {
		it.clusterEnd = c.End
	}
	if better(c, it.best) {
		it.best = c
	}
}

// finalize closes the open cluster and returns its representative match
// with the matched text sliced from the original haystack.
func (it *Matches) finalize() Match {
	m := it.best
	m.Text = string(it.orig[m.Start:m.End])
	it.open = false
	return m
}

// better reports whether a should replace b as a cluster's
// representative: higher score wins, then earlier start, then shorter
// span.
func better(a, b Match) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End < b.End
}
