// Package random provides the uniform random source used for secret numbers,
// computer moves, word and question selection, and letter shuffling.
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source draws uniform integers and permutations.
type Source interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Shuffle permutes n elements uniformly using swap.
	Shuffle(n int, swap func(i, j int))
}

type cryptoSource struct{}

// NewCrypto returns a Source backed by crypto/rand. It is safe for concurrent use
// and may be shared across sessions.
func NewCrypto() Source {
	return cryptoSource{}
}

func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: IntN called with empty range %d", n))
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("random: crypto source failed: %v", err))
	}
	return int(v.Int64())
}

func (s cryptoSource) Shuffle(n int, swap func(i, j int)) {
	fisherYates(s, n, swap)
}

type seededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeeded returns a deterministic PCG-backed Source. Calls are serialized
// so one instance can be shared.
func NewSeeded(seed uint64) Source {
	return &seededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: IntN called with empty range %d", n))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func (s *seededSource) Shuffle(n int, swap func(i, j int)) {
	fisherYates(s, n, swap)
}

func fisherYates(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		swap(i, j)
	}
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
