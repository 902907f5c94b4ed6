// Package random provides uniform index sampling backed by a source of
// randomness suitable for security-sensitive use.
//
// The source is modelled as an injected capability, the Generator interface,
// so that production code uses the operating system CSPRNG while tests can
// substitute a deterministic implementation.
//
// Draws are made with replacement by default: two indices of the same batch
// may be equal. The distinct mode draws without replacement, in which case
// the batch size must not exceed the sequence length.
package random

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/xerrors"
)

// ErrInvalidArgument is returned when a draw is requested over an empty
// sequence or for less than one index.
var ErrInvalidArgument = xerrors.New("invalid sampling argument")

// ErrConfiguration is returned when a distinct draw requests more indices
// than the sequence holds.
var ErrConfiguration = xerrors.New("invalid sampling configuration")

// Generator produces uniform random integers.
type Generator interface {
	// Intn returns a uniform random integer in [0, n). n must be positive.
	Intn(n int) (int, error)
}

// CryptographicRandomGenerator is a cryptographically secure random
// generator.
//
// - implements random.Generator
type CryptographicRandomGenerator struct{}

// Intn implements random.Generator. It returns a uniform integer in [0, n)
// read from the operating system CSPRNG.
func (crg CryptographicRandomGenerator) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, xerrors.Errorf("expect positive bound but found %d: %w",
			n, ErrInvalidArgument)
	}

	value, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, xerrors.Errorf("couldn't read the random source: %v", err)
	}

	return int(value.Int64()), nil
}

// Draw returns k indices in [0, n), each drawn uniformly at random from the
// generator. When distinct is set the indices are pairwise different and
// uniform among the k-subsets of [0, n), which requires k <= n.
func Draw(gen Generator, k, n int, distinct bool) ([]int, error) {
	if n <= 0 {
		return nil, xerrors.Errorf("sequence length must be positive but "+
			"found %d: %w", n, ErrInvalidArgument)
	}

	if k < 1 {
		return nil, xerrors.Errorf("expect at least one index but found %d: %w",
			k, ErrInvalidArgument)
	}

	if distinct && k > n {
		return nil, xerrors.Errorf("cannot draw %d distinct indices out of "+
			"%d: %w", k, n, ErrConfiguration)
	}

	if distinct {
		return drawDistinct(gen, k, n)
	}

	indices := make([]int, k)

	for i := range indices {
		index, err := gen.Intn(n)
		if err != nil {
			return nil, xerrors.Errorf("couldn't draw index: %v", err)
		}

		indices[i] = index
	}

	return indices, nil
}

// drawDistinct draws k distinct indices with a partial Fisher-Yates shuffle
// of the identity permutation.
func drawDistinct(gen Generator, k, n int) ([]int, error) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for i := 0; i < k; i++ {
		offset, err := gen.Intn(n - i)
		if err != nil {
			return nil, xerrors.Errorf("couldn't draw index: %v", err)
		}

		perm[i], perm[i+offset] = perm[i+offset], perm[i]
	}

	return perm[:k], nil
}
