/* input_processing.go
 * Contains the logic for processing user input: resolving team names and parsing match scores
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"worldcup-sim/api/bracket"
	"worldcup-sim/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var ErrInvalidTeam = errors.New("not a valid team")

// CheckTeamName resolves a user supplied team name or code to a valid team.
// Preconditions: receives the user's input and the list of valid teams
// Postconditions: returns the matched team, or an error if nothing matches
func CheckTeamName(input string, validTeams []shared.Team) (shared.Team, error) {
	query := strings.ToLower(strings.TrimSpace(input))
	if query == "" {
		return shared.Team{}, fmt.Errorf("team name cannot be empty: %w", ErrInvalidTeam)
	}

	// Convert team names to lowercase for better matching
	lookup := make(map[string]shared.Team)
	var validTeamsLower []string
	for _, team := range validTeams {
		// Three letter codes are matched exactly
		if strings.ToLower(team.ID) == query {
			return team, nil
		}
		lower := strings.ToLower(team.Name)
		lookup[lower] = team
		validTeamsLower = append(validTeamsLower, lower)
	}

	fuzzyResults := fuzzy.RankFind(query, validTeamsLower)
	if len(fuzzyResults) == 0 {
		return shared.Team{}, fmt.Errorf("'%s' is %w", input, ErrInvalidTeam)
	}

	// If there are multiple matches, check to see if theres an exact match with the input
	for _, result := range fuzzyResults {
		if result.Target == query {
			return lookup[result.Target], nil
		}
	}

	// If no exact match was found, take the best ranked match
	sort.Sort(fuzzyResults)
	return lookup[fuzzyResults[0].Target], nil
}

// ScoreInput is a result entered from the human's point of view
type ScoreInput struct {
	For              int
	Against          int
	PenaltiesFor     int
	PenaltiesAgainst int
	Penalties        bool
}

// ParseResult parses a result entered as "2-1", or a level score followed by a shootout, e.g. "1-1 4-3" or "1-1 (4-3)".
// Preconditions: receives the arguments after the command, the human's goals come first
// Postconditions: returns the ScoreInput, or an error if the input is malformed or cannot decide the match
func ParseResult(args []string) (ScoreInput, error) {
	joined := strings.Join(args, " ")
	joined = strings.NewReplacer("(", " ", ")", " ", "pens", " ", "p", " ", ":", "-").Replace(joined)
	parts := strings.Fields(joined)

	if len(parts) == 0 || len(parts) > 2 {
		return ScoreInput{}, fmt.Errorf("expected a score like 2-1 or 1-1 4-3 but got '%s'", strings.Join(args, " "))
	}

	var input ScoreInput
	var err error
	input.For, input.Against, err = parsePair(parts[0])
	if err != nil {
		return ScoreInput{}, err
	}

	if len(parts) == 2 {
		if input.For != input.Against {
			return ScoreInput{}, fmt.Errorf("penalties are only taken when the score is level")
		}
		input.PenaltiesFor, input.PenaltiesAgainst, err = parsePair(parts[1])
		if err != nil {
			return ScoreInput{}, err
		}
		input.Penalties = true
	}

	if input.For == input.Against && !input.Penalties {
		return ScoreInput{}, fmt.Errorf("knockout matches cannot end in a draw, add the shootout score e.g. %d-%d 4-3", input.For, input.Against)
	}
	if input.Penalties && input.PenaltiesFor == input.PenaltiesAgainst {
		return ScoreInput{}, fmt.Errorf("a shootout cannot finish level")
	}
	return input, nil
}

// parsePair parses "x-y" into two non-negative integers
func parsePair(s string) (int, int, error) {
	left, right, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid score format: %s", s)
	}
	a, err := strconv.Atoi(left)
	if err != nil || a < 0 {
		return 0, 0, fmt.Errorf("invalid score format: %s", s)
	}
	b, err := strconv.Atoi(right)
	if err != nil || b < 0 {
		return 0, 0, fmt.Errorf("invalid score format: %s", s)
	}
	return a, b, nil
}

// ToMatchResult orients a ScoreInput to the fixture, home goals first
func (s ScoreInput) ToMatchResult(humanIsHome bool) bracket.MatchResult {
	if humanIsHome {
		return bracket.MatchResult{
			GoalsHome:       s.For,
			GoalsAway:       s.Against,
			PenaltyHome:     s.PenaltiesFor,
			PenaltyAway:     s.PenaltiesAgainst,
			WentToPenalties: s.Penalties,
		}
	}
	return bracket.MatchResult{
		GoalsHome:       s.Against,
		GoalsAway:       s.For,
		PenaltyHome:     s.PenaltiesAgainst,
		PenaltyAway:     s.PenaltiesFor,
		WentToPenalties: s.Penalties,
	}
}
