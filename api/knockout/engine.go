/* engine.go
 * Contains the match engine used for every fixture the human does not play
 */

package knockout

import (
	"worldcup-sim/api/bracket"
	"worldcup-sim/api/shared"
)

const (
	starWeight     = 15
	strengthJitter = 40
	numChances     = 10
)

// SimulateMatch plays a match between two computer controlled teams. It never returns a draw, level scores are
// settled with a shootout
// Preconditions: Receives both teams and the random source
// Postconditions: Returns a decisive MatchResult
func SimulateMatch(home shared.Team, away shared.Team, rng bracket.RandomSource) bracket.MatchResult {
	homeScore := strength(home, rng)
	awayScore := strength(away, rng)
	homeCap, awayCap := goalCap(homeScore), goalCap(awayScore)
	homeChance, awayChance := homeScore*0.5/100, awayScore*0.5/100

	var result bracket.MatchResult
	for i := 0; i < numChances; i++ {
		// Both sides draw every chance so the sequence consumed does not depend on the caps
		homeScores := rng.Float64() < homeChance
		awayScores := rng.Float64() < awayChance
		if homeScores && result.GoalsHome < homeCap {
			result.GoalsHome++
		}
		if awayScores && result.GoalsAway < awayCap {
			result.GoalsAway++
		}
	}

	if result.GoalsHome == result.GoalsAway {
		result.PenaltyHome, result.PenaltyAway = shootout(rng)
		result.WentToPenalties = true
	}
	return result
}

// strength is stars*15 plus up to 40 points of jitter
func strength(team shared.Team, rng bracket.RandomSource) float64 {
	return float64(team.Stars*starWeight) + rng.Float64()*strengthJitter
}

// goalCap is the most goals a side with the given strength can score
func goalCap(score float64) int {
	switch {
	case score > 70:
		return 4
	case score > 50:
		return 3
	default:
		return 2
	}
}

// shootout returns home penalties of 3-5 and away penalties one either side, never level
func shootout(rng bracket.RandomSource) (int, int) {
	home := 3 + rng.Intn(3)
	up := rng.Float64() < 0.5

	if home == 4 {
		if up {
			return home, 5
		}
		return home, 3
	}
	if up {
		return home, home + 1
	}
	return home, home - 1
}
