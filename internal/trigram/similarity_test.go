// file: internal/trigram/similarity_test.go
// version: 1.0.0
// guid: 1a6c8e3b-7f2d-4a9c-b8e1-5d0f3a7c9b2e

package trigram

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-12

// TestSimilarityKnownValues pins the score down for pairs whose value is
// derived by hand from the formula shared / (totalA + totalB - shared)
// over padded trigram multisets. The first five pairs agree with the
// answers the Postgres pg_trgm similarity function gives.
func TestSimilarityKnownValues(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"a", "ab", 0.25},
		{"foo", "food", 0.5},
		{"bar", "barred", 0.375},
		{"ing bear", "ing boar", 0.5},
		{"dancing bear", "dancing boar", 0.625},
		// shared 8, totals 10 and 11
		{"rustacean", "crustacean", 8.0 / 13.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), epsilon,
			"Similarity(%q, %q)", tt.a, tt.b)
		assert.InDelta(t, tt.want, Similarity(tt.b, tt.a), epsilon,
			"Similarity(%q, %q)", tt.b, tt.a)
	}
}

func TestSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "ab", "abc", "abcd", "hello world", "日本語"} {
		assert.Equal(t, 1.0, Similarity(s, s), "Similarity(%q, %q)", s, s)
	}
}

func TestSimilarityNothingInCommon(t *testing.T) {
	for _, a := range []string{"abc", "abcd"} {
		for _, b := range []string{"def", "efgh"} {
			assert.Equal(t, 0.0, Similarity(a, b), "Similarity(%q, %q)", a, b)
			assert.Equal(t, 0.0, Similarity(b, a), "Similarity(%q, %q)", b, a)
		}
	}
}

func TestSimilarityEmptyStrings(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("", "nonempty"))
	assert.Equal(t, 0.0, Similarity("nonempty", ""))
}

func TestSimilarityCaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("A", "a"))
	assert.Equal(t, 1.0, Similarity("Rustacean", "rustacean"))
	assert.Equal(t, 1.0, Similarity("HELLO WORLD", "hello world"))
}

func TestSimilarityUnicode(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("日本語", "日本語"))
	assert.Equal(t, 0.0, Similarity("日本語", "abc"))
}

// TestSimilarityProperties checks symmetry and the [0, 1] range over
// random string pairs.
func TestSimilarityProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []rune("abcdeABCDE 日本")
	randString := func() string {
		rs := make([]rune, rng.Intn(12))
		for i := range rs {
			rs[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(rs)
	}
	for i := 0; i < 500; i++ {
		a, b := randString(), randString()
		ab, ba := Similarity(a, b), Similarity(b, a)
		if ab != ba {
			t.Fatalf("Similarity(%q, %q) = %v, reversed = %v", a, b, ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Fatalf("Similarity(%q, %q) = %v, out of [0, 1]", a, b, ab)
		}
	}
}

func BenchmarkSimilarity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Similarity("dancing bear", "dancing boar")
	}
}
