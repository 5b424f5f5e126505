/* models.go
 * This file contains the structs that make up a knockout bracket: rounds, matches and results
 */

package bracket

import (
	"errors"
	"fmt"
	"worldcup-sim/api/shared"
)

// Round identifies a knockout round
type Round string

const (
	RoundOf32    Round = "r32"
	RoundOf16    Round = "r16"
	QuarterFinal Round = "qf"
	SemiFinal    Round = "sf"
	Final        Round = "final"
)

// Rounds is the fixed order of play
var Rounds = []Round{RoundOf32, RoundOf16, QuarterFinal, SemiFinal, Final}

// roundSizes holds the number of matches in each round
var roundSizes = map[Round]int{
	RoundOf32:    8,
	RoundOf16:    8,
	QuarterFinal: 4,
	SemiFinal:    2,
	Final:        1,
}

// Label returns the display name of the round
func (r Round) Label() string {
	switch r {
	case RoundOf32:
		return "Round of 32"
	case RoundOf16:
		return "Round of 16"
	case QuarterFinal:
		return "Quarter Final"
	case SemiFinal:
		return "Semi Final"
	case Final:
		return "Final"
	}
	return string(r)
}

// Next returns the round played after r, or false when r is the final
func (r Round) Next() (Round, bool) {
	for i, round := range Rounds {
		if round == r && i+1 < len(Rounds) {
			return Rounds[i+1], true
		}
	}
	return "", false
}

// Size returns the number of matches in the round
func (r Round) Size() int {
	return roundSizes[r]
}

var (
	ErrResultAlreadySet = errors.New("match already has a result")
	ErrMatchNotPlayed   = errors.New("match has not been played")
	ErrInvalidResult    = errors.New("invalid match result")
)

// MatchResult is the final score of a match. Penalty fields are only meaningful when WentToPenalties is set
type MatchResult struct {
	GoalsHome       int  `json:"goalsHome"`
	GoalsAway       int  `json:"goalsAway"`
	PenaltyHome     int  `json:"penaltyHome,omitempty"`
	PenaltyAway     int  `json:"penaltyAway,omitempty"`
	WentToPenalties bool `json:"wentToPenalties"`
}

// Validate checks the result produces a winner. Knockout matches cannot end level
func (r MatchResult) Validate() error {
	if r.GoalsHome < 0 || r.GoalsAway < 0 || r.PenaltyHome < 0 || r.PenaltyAway < 0 {
		return fmt.Errorf("%w: scores cannot be negative", ErrInvalidResult)
	}
	if r.GoalsHome != r.GoalsAway {
		if r.WentToPenalties {
			return fmt.Errorf("%w: penalties are only taken when the score is level", ErrInvalidResult)
		}
		return nil
	}
	if !r.WentToPenalties {
		return fmt.Errorf("%w: %d-%d needs a penalty shootout", ErrInvalidResult, r.GoalsHome, r.GoalsAway)
	}
	if r.PenaltyHome == r.PenaltyAway {
		return fmt.Errorf("%w: shootout cannot finish level (%d-%d)", ErrInvalidResult, r.PenaltyHome, r.PenaltyAway)
	}
	return nil
}

// HomeWins reports whether the home side won the match
func (r MatchResult) HomeWins() bool {
	if r.WentToPenalties {
		return r.PenaltyHome > r.PenaltyAway
	}
	return r.GoalsHome > r.GoalsAway
}

// String formats the result as "2-1" or "1-1 (4-3 pens)"
func (r MatchResult) String() string {
	if r.WentToPenalties {
		return fmt.Sprintf("%d-%d (%d-%d pens)", r.GoalsHome, r.GoalsAway, r.PenaltyHome, r.PenaltyAway)
	}
	return fmt.Sprintf("%d-%d", r.GoalsHome, r.GoalsAway)
}

// Match is a single fixture. Home and Away stay nil until the feeding matches resolve
type Match struct {
	ID     string       `json:"id"`
	Round  Round        `json:"round"`
	Home   *shared.Team `json:"home"`
	Away   *shared.Team `json:"away"`
	Result *MatchResult `json:"result"`
	// FeedsFrom is the index of the Round of 32 match whose winner takes the away slot
	FeedsFrom *int `json:"feedsFrom,omitempty"`
}

// IsPlaceholder reports whether no team has been assigned to the match yet
func (m *Match) IsPlaceholder() bool {
	return m.Home == nil && m.Away == nil
}

// IsReady reports whether both teams are known and the match is unplayed
func (m *Match) IsReady() bool {
	return m.Home != nil && m.Away != nil && m.Result == nil
}

// Involves reports whether the team with the given id plays in this match
func (m *Match) Involves(teamID string) bool {
	return (m.Home != nil && m.Home.ID == teamID) || (m.Away != nil && m.Away.ID == teamID)
}

// SetResult attaches a result. Results are write-once
func (m *Match) SetResult(result MatchResult) error {
	if m.Result != nil {
		return fmt.Errorf("%w: %s", ErrResultAlreadySet, m.ID)
	}
	if m.Home == nil || m.Away == nil {
		return fmt.Errorf("%w: %s does not have two teams", ErrInvalidResult, m.ID)
	}
	if err := result.Validate(); err != nil {
		return err
	}
	m.Result = &result
	return nil
}

// Winner returns the team that won the match
func (m *Match) Winner() (shared.Team, error) {
	if m.Result == nil || m.Home == nil || m.Away == nil {
		return shared.Team{}, fmt.Errorf("%w: %s", ErrMatchNotPlayed, m.ID)
	}
	if m.Result.HomeWins() {
		return *m.Home, nil
	}
	return *m.Away, nil
}

// Loser returns the team that lost the match
func (m *Match) Loser() (shared.Team, error) {
	if m.Result == nil || m.Home == nil || m.Away == nil {
		return shared.Team{}, fmt.Errorf("%w: %s", ErrMatchNotPlayed, m.ID)
	}
	if m.Result.HomeWins() {
		return *m.Away, nil
	}
	return *m.Home, nil
}

func (m *Match) clone() *Match {
	c := &Match{ID: m.ID, Round: m.Round, Home: m.Home, Away: m.Away}
	if m.Result != nil {
		result := *m.Result
		c.Result = &result
	}
	if m.FeedsFrom != nil {
		idx := *m.FeedsFrom
		c.FeedsFrom = &idx
	}
	return c
}

// Bracket maps each round to its ordered matches. Byes holds the teams that skipped the Round of 32
type Bracket struct {
	Rounds map[Round][]*Match `json:"rounds"`
	Byes   []shared.Team      `json:"byes"`
}

// Matches returns the matches of a round in bracket order
func (b Bracket) Matches(round Round) []*Match {
	return b.Rounds[round]
}

// Clone returns a deep copy of the bracket. Teams are immutable and shared
func (b *Bracket) Clone() Bracket {
	c := Bracket{
		Rounds: make(map[Round][]*Match, len(b.Rounds)),
		Byes:   append([]shared.Team(nil), b.Byes...),
	}
	for round, matches := range b.Rounds {
		copied := make([]*Match, len(matches))
		for i, m := range matches {
			copied[i] = m.clone()
		}
		c.Rounds[round] = copied
	}
	return c
}
