package domain

import (
	"fmt"
	"math"
)

// TraitSpace is the fixed, ordered set of identity dimensions. Every
// vector in the system is expressed in this space, using this ordering.
// The ordering comes from the catalog's trait columns and does not
// change after load.
type TraitSpace struct {
	dims  []string
	index map[string]int
}

// NewTraitSpace builds a trait space from an ordered dimension list.
func NewTraitSpace(dims []string) (*TraitSpace, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("trait space needs at least one dimension")
	}
	index := make(map[string]int, len(dims))
	for i, name := range dims {
		if name == "" {
			return nil, fmt.Errorf("trait space dimension %d has an empty name", i)
		}
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("duplicate trait space dimension %q", name)
		}
		index[name] = i
	}
	owned := make([]string, len(dims))
	copy(owned, dims)
	return &TraitSpace{dims: owned, index: index}, nil
}

// Dim returns the cardinality D of the space.
func (s *TraitSpace) Dim() int { return len(s.dims) }

// Dimensions returns the ordered dimension names.
func (s *TraitSpace) Dimensions() []string {
	out := make([]string, len(s.dims))
	copy(out, s.dims)
	return out
}

// Index returns the position of a dimension name within the space.
func (s *TraitSpace) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// NewVector returns a zero vector of the space's dimensionality.
func (s *TraitSpace) NewVector() Vector { return make(Vector, len(s.dims)) }

// Vector is a non-negative trait-weight vector. All vectors in one
// process share the same length D; passing mismatched lengths to any
// operation is a programming error and panics rather than degrading.
type Vector []float64

// Add returns the elementwise sum of v and other as a new vector.
func (v Vector) Add(other Vector) Vector {
	mustSameDim(len(v), len(other))
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + other[i]
	}
	return out
}

// Dot returns the dot product of v and other.
func (v Vector) Dot(other Vector) float64 {
	mustSameDim(len(v), len(other))
	var sum float64
	for i := range v {
		sum += v[i] * other[i]
	}
	return sum
}

// Magnitude returns the Euclidean norm of v.
func (v Vector) Magnitude() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// IsZero reports whether every component of v is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Cosine returns the cosine similarity dot(a,b) / (|a|*|b|). When either
// vector has zero magnitude the result is 0 by policy, not an error.
func Cosine(a, b Vector) float64 {
	mustSameDim(len(a), len(b))
	magA := a.Magnitude()
	magB := b.Magnitude()
	if magA == 0 || magB == 0 {
		return 0
	}
	return a.Dot(b) / (magA * magB)
}

// DominantTraits returns the dimension names holding the maximum value
// of v, in trait-space order. A zero vector ties every dimension.
func DominantTraits(space *TraitSpace, v Vector) []string {
	mustSameDim(space.Dim(), len(v))
	max := v[0]
	for _, x := range v[1:] {
		if x > max {
			max = x
		}
	}
	var dominant []string
	for i, x := range v {
		if x == max {
			dominant = append(dominant, space.dims[i])
		}
	}
	return dominant
}

func mustSameDim(a, b int) {
	if a != b {
		panic(fmt.Sprintf("trait vector dimension mismatch: %d vs %d", a, b))
	}
}
