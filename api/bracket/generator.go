/* generator.go
 * Contains the logic for turning final group standings into the initial knockout bracket
 */

package bracket

import (
	"errors"
	"fmt"
	"sort"
	"worldcup-sim/api/shared"
)

const (
	NumGroups     = 12
	NumQualified  = 24
	NumByes       = 8
	numRoundOf32s = 16
)

var ErrMalformedStandings = errors.New("malformed group standings")

// Generate builds the bracket from 12 completed groups.
// Preconditions: Receives the group tables, the human controlled team and the random source for the draw
// Postconditions: Returns a bracket where the top 8 group winners have byes into the Round of 16 and the other 16
// qualifiers are drawn into the Round of 32, or ErrMalformedStandings with nothing built
func Generate(groups []shared.GroupStanding, human shared.Team, rng RandomSource) (*Bracket, error) {
	winners, runnersUp, err := qualifiers(groups)
	if err != nil {
		return nil, err
	}
	if len(winners)+len(runnersUp) != NumQualified {
		return nil, fmt.Errorf("%w: %d teams qualified, expected %d", ErrMalformedStandings, len(winners)+len(runnersUp), NumQualified)
	}

	humanQualified := false
	for _, e := range append(append([]shared.StandingEntry(nil), winners...), runnersUp...) {
		if e.Team.ID == human.ID {
			humanQualified = true
			break
		}
	}
	if !humanQualified {
		return nil, fmt.Errorf("%w: %s did not finish in the top two of its group", ErrMalformedStandings, human.Name)
	}

	rankWinners(winners)

	byes := make([]shared.Team, 0, NumByes)
	for _, e := range winners[:NumByes] {
		byes = append(byes, e.Team)
	}

	field := make([]shared.Team, 0, numRoundOf32s)
	for _, e := range winners[NumByes:] {
		field = append(field, e.Team)
	}
	for _, e := range runnersUp {
		field = append(field, e.Team)
	}

	shuffle(rng, field)
	drawnByes := append([]shared.Team(nil), byes...)
	shuffle(rng, drawnByes)

	b := &Bracket{
		Rounds: make(map[Round][]*Match, len(Rounds)),
		Byes:   byes,
	}

	r32 := make([]*Match, 0, RoundOf32.Size())
	for i := 0; i < len(field); i += 2 {
		home, away := field[i], field[i+1]
		r32 = append(r32, &Match{
			ID:    matchID(RoundOf32, len(r32)),
			Round: RoundOf32,
			Home:  &home,
			Away:  &away,
		})
	}
	b.Rounds[RoundOf32] = r32

	r16 := make([]*Match, 0, RoundOf16.Size())
	for i := range drawnByes {
		feeder := i
		home := drawnByes[i]
		r16 = append(r16, &Match{
			ID:        matchID(RoundOf16, i),
			Round:     RoundOf16,
			Home:      &home,
			FeedsFrom: &feeder,
		})
	}
	b.Rounds[RoundOf16] = r16

	for _, round := range []Round{QuarterFinal, SemiFinal, Final} {
		matches := make([]*Match, round.Size())
		for i := range matches {
			matches[i] = &Match{ID: matchID(round, i), Round: round}
		}
		b.Rounds[round] = matches
	}

	return b, nil
}

// qualifiers splits the group tables into winners and runners-up, validating each group
func qualifiers(groups []shared.GroupStanding) ([]shared.StandingEntry, []shared.StandingEntry, error) {
	if len(groups) != NumGroups {
		return nil, nil, fmt.Errorf("%w: expected %d groups but got %d", ErrMalformedStandings, NumGroups, len(groups))
	}

	seen := make(map[string]string)
	var winners, runnersUp []shared.StandingEntry
	for _, group := range groups {
		if len(group.Entries) < 2 {
			return nil, nil, fmt.Errorf("%w: group %s has %d ranked teams, at least 2 are required", ErrMalformedStandings, group.Group, len(group.Entries))
		}

		var first, second []shared.StandingEntry
		for _, e := range group.Entries {
			if e.Team.ID == "" {
				return nil, nil, fmt.Errorf("%w: group %s has a team without an id", ErrMalformedStandings, group.Group)
			}
			if other, ok := seen[e.Team.ID]; ok {
				return nil, nil, fmt.Errorf("%w: %s appears in group %s and group %s", ErrMalformedStandings, e.Team.Name, other, group.Group)
			}
			seen[e.Team.ID] = group.Group

			switch e.GroupPosition {
			case 1:
				first = append(first, e)
			case 2:
				second = append(second, e)
			}
		}
		if len(first) != 1 || len(second) != 1 {
			return nil, nil, fmt.Errorf("%w: group %s needs exactly one winner and one runner-up", ErrMalformedStandings, group.Group)
		}
		winners = append(winners, first[0])
		runnersUp = append(runnersUp, second[0])
	}
	return winners, runnersUp, nil
}

// rankWinners orders group winners by points, then goal difference, then goals scored
func rankWinners(winners []shared.StandingEntry) {
	sort.SliceStable(winners, func(i, j int) bool {
		a, b := winners[i], winners[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		return a.GoalsFor > b.GoalsFor
	})
}

// RankedWinners returns the group winners in bye order without modifying the input
func RankedWinners(groups []shared.GroupStanding) ([]shared.StandingEntry, error) {
	winners, _, err := qualifiers(groups)
	if err != nil {
		return nil, err
	}
	rankWinners(winners)
	return winners, nil
}

func matchID(round Round, index int) string {
	return fmt.Sprintf("%s-%d", round, index+1)
}
