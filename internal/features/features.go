// Package features turns token streams into hashed sparse count vectors.
package features

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/twmb/murmur3"

	"GoText/internal/analysis"
)

// Vector is a sparse vector with ascending indices.
type Vector struct {
	Indices []int     `json:"indices"`
	Values  []float32 `json:"values"`
	// Labels holds the tokens hashed to each index, joined by "+", when the
	// hasher was created with WithLabels.
	Labels []string `json:"labels,omitempty"`
}

// Validate checks the structural invariants of v.
func (v *Vector) Validate() error {
	if len(v.Indices) != len(v.Values) {
		return errors.Errorf("indices and values differ in length: %d != %d", len(v.Indices), len(v.Values))
	}
	if v.Labels != nil && len(v.Labels) != len(v.Indices) {
		return errors.Errorf("labels and indices differ in length: %d != %d", len(v.Labels), len(v.Indices))
	}
	for i := 1; i < len(v.Indices); i++ {
		if v.Indices[i] <= v.Indices[i-1] {
			return errors.Errorf("indices not strictly ascending at %d", i)
		}
	}
	return nil
}

// Len returns the number of non-zero entries.
func (v *Vector) Len() int { return len(v.Indices) }

// Hasher maps tokens to buckets with murmur3 and counts them.
type Hasher struct {
	buckets uint64
	labels  bool
}

// Option configures a Hasher.
type Option func(h *Hasher) error

// WithLabels records which tokens were hashed to each index.
func WithLabels() Option {
	return func(h *Hasher) error {
		h.labels = true
		return nil
	}
}

// NewHasher creates a Hasher with the given number of buckets.
func NewHasher(buckets int, opts ...Option) (*Hasher, error) {
	if buckets <= 0 || uint64(buckets) > 1<<32 {
		return nil, errors.Wrapf(analysis.ErrInvalidArgument, "buckets must be in [1, 2^32], got %d", buckets)
	}
	h := &Hasher{buckets: uint64(buckets)}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, errors.Wrap(err, "failed to apply option")
		}
	}
	return h, nil
}

// Index returns the bucket of token.
func (h *Hasher) Index(token string) int {
	return int(uint64(murmur3.Sum32([]byte(token))) % h.buckets)
}

// Vectorize drains it and returns the token counts per bucket. Removed
// tokens are skipped.
func (h *Hasher) Vectorize(it analysis.Iterator) (*Vector, error) {
	counts := make(map[string]int)
	for it.Next() {
		tok := it.Token()
		if tok.Removed {
			continue
		}
		counts[tok.Value]++
	}
	if err := it.Err(); err != nil {
		return nil, errors.Wrap(err, "vectorize")
	}

	// Sort tokens for deterministic labels.
	tokens := make([]string, 0, len(counts))
	for tok := range counts {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)

	scores := make(map[int]float32, len(counts))
	names := make(map[int][]string)
	for _, tok := range tokens {
		idx := h.Index(tok)
		scores[idx] += float32(counts[tok])
		if h.labels {
			names[idx] = append(names[idx], tok)
		}
	}

	v := &Vector{Indices: make([]int, 0, len(scores))}
	for idx := range scores {
		v.Indices = append(v.Indices, idx)
	}
	sort.Ints(v.Indices)
	v.Values = make([]float32, len(v.Indices))
	if h.labels {
		v.Labels = make([]string, len(v.Indices))
	}
	for i, idx := range v.Indices {
		v.Values[i] = scores[idx]
		if h.labels {
			v.Labels[i] = strings.Join(names[idx], "+")
		}
	}

	if err := v.Validate(); err != nil {
		return nil, errors.Wrap(err, "generated invalid vector")
	}
	return v, nil
}
