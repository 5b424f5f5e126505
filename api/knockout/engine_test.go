/* engine_test.go
 * Contains unit tests for engine.go functions
 */

package knockout

import (
	"math/rand"
	"testing"
	"worldcup-sim/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws. Once a queue runs out it keeps returning the fallback
type scriptedSource struct {
	ints          []int
	floats        []float64
	fallbackFloat float64
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return s.fallbackFloat
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

var (
	strong = shared.Team{ID: "BRA", Name: "Brazil", Stars: 5}
	weak   = shared.Team{ID: "NZL", Name: "New Zealand", Stars: 1}
)

// region goalCap tests

func TestGoalCap(t *testing.T) {
	assert.Equal(t, 4, goalCap(70.5))
	assert.Equal(t, 3, goalCap(70))
	assert.Equal(t, 3, goalCap(50.1))
	assert.Equal(t, 2, goalCap(50))
	assert.Equal(t, 2, goalCap(15))
}

// endregion

// region SimulateMatch tests

func TestSimulateMatch_GoalsClampedToCap(t *testing.T) {
	// Zero jitter and every chance converted: 75 strength caps at 4, 15 strength caps at 2
	rng := &scriptedSource{fallbackFloat: 0}

	result := SimulateMatch(strong, weak, rng)

	assert.Equal(t, 4, result.GoalsHome)
	assert.Equal(t, 2, result.GoalsAway)
	assert.False(t, result.WentToPenalties)
}

func TestSimulateMatch_JitterRaisesCap(t *testing.T) {
	// 3 stars is 45 strength, jitter of 0.5*40 takes it to 65 and a cap of 3
	three := shared.Team{ID: "JPN", Name: "Japan", Stars: 3}
	rng := &scriptedSource{floats: []float64{0.5, 0}, fallbackFloat: 0}

	result := SimulateMatch(three, weak, rng)

	assert.Equal(t, 3, result.GoalsHome)
	assert.Equal(t, 2, result.GoalsAway)
}

func TestSimulateMatch_GoallessGoesToPenalties(t *testing.T) {
	// No chance is converted, home takes 3 penalties and the coin sends away one lower
	rng := &scriptedSource{ints: []int{0}, fallbackFloat: 0.99}

	result := SimulateMatch(strong, weak, rng)

	assert.Equal(t, 0, result.GoalsHome)
	assert.Equal(t, 0, result.GoalsAway)
	assert.True(t, result.WentToPenalties)
	assert.Equal(t, 3, result.PenaltyHome)
	assert.Equal(t, 2, result.PenaltyAway)
}

func TestSimulateMatch_PenaltiesAwayOneHigher(t *testing.T) {
	floats := append(repeat(0.99, 22), 0.1)
	rng := &scriptedSource{ints: []int{2}, floats: floats, fallbackFloat: 0.99}

	result := SimulateMatch(strong, weak, rng)

	assert.True(t, result.WentToPenalties)
	assert.Equal(t, 5, result.PenaltyHome)
	assert.Equal(t, 6, result.PenaltyAway)
}

func TestSimulateMatch_HomeFourPenaltiesNeverLevel(t *testing.T) {
	for _, coin := range []float64{0.1, 0.9} {
		floats := append(repeat(0.99, 22), coin)
		rng := &scriptedSource{ints: []int{1}, floats: floats, fallbackFloat: 0.99}

		result := SimulateMatch(strong, weak, rng)

		assert.Equal(t, 4, result.PenaltyHome)
		if coin < 0.5 {
			assert.Equal(t, 5, result.PenaltyAway)
		} else {
			assert.Equal(t, 3, result.PenaltyAway)
		}
	}
}

func TestSimulateMatch_NeverDraws(t *testing.T) {
	rng := rand.New(rand.NewSource(2026))
	teams := []shared.Team{
		{ID: "a", Stars: 1}, {ID: "b", Stars: 2}, {ID: "c", Stars: 3}, {ID: "d", Stars: 4}, {ID: "e", Stars: 5},
	}

	for i := 0; i < 2000; i++ {
		home, away := teams[i%5], teams[(i/5)%5]
		result := SimulateMatch(home, away, rng)

		require.NoError(t, result.Validate())
		assert.LessOrEqual(t, result.GoalsHome, 4)
		assert.LessOrEqual(t, result.GoalsAway, 4)
		if result.GoalsHome == result.GoalsAway {
			assert.True(t, result.WentToPenalties)
			assert.NotEqual(t, result.PenaltyHome, result.PenaltyAway)
			assert.GreaterOrEqual(t, result.PenaltyHome, 3)
			assert.LessOrEqual(t, result.PenaltyHome, 5)
			assert.Equal(t, 1, abs(result.PenaltyHome-result.PenaltyAway))
		} else {
			assert.False(t, result.WentToPenalties)
		}
	}
}

// endregion

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
