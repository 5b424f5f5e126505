/* random.go
 * Contains the random source used for every draw made while building and playing a bracket
 */

package bracket

import (
	"math/rand"
	"time"
)

// RandomSource is the single source of randomness for shuffles, strength jitter, chances and penalties.
// *rand.Rand satisfies it, tests supply scripted sequences
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// NewRandomSource returns a seeded source. A seed of 0 uses the current time
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffle is a Fisher-Yates shuffle drawing from rng
func shuffle[T any](rng RandomSource, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
