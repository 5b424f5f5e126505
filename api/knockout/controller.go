/* controller.go
 * Contains the knockout controller. It owns the bracket for one session, takes the human's results, simulates every
 * other fixture and moves the tournament round by round until the human is champion or eliminated
 */

package knockout

import (
	"errors"
	"fmt"
	"sync"
	"worldcup-sim/api/bracket"
	"worldcup-sim/api/shared"
)

// State is the controller's position in the tournament. Every round is a state, plus the two terminal states
type State string

const (
	StateChampion   State = "champion"
	StateEliminated State = "eliminated"
)

// IsTerminal reports whether the tournament is over for the human
func (s State) IsTerminal() bool {
	return s == StateChampion || s == StateEliminated
}

var (
	ErrNoActiveHumanMatch = errors.New("no active match for the human team in this round")
	ErrRoundNotComplete   = errors.New("round is not complete")
	ErrTournamentOver     = errors.New("tournament is over")
)

// Outcome is what the presentation layer shows once the tournament ends
type Outcome struct {
	State        State         `json:"state"`
	Human        shared.Team   `json:"human"`
	Champion     *shared.Team  `json:"champion,omitempty"`
	EliminatedIn bracket.Round `json:"eliminatedIn,omitempty"`
}

// Controller is the state machine for a single tournament session. It is the only writer of its bracket
type Controller struct {
	mu      sync.Mutex
	bracket *bracket.Bracket
	human   shared.Team
	rng     bracket.RandomSource
	current bracket.Round
	state   State

	// simulate plays every fixture the human is not in
	simulate func(home shared.Team, away shared.Team, rng bracket.RandomSource) bracket.MatchResult

	eliminatedIn bracket.Round
}

// NewController takes ownership of a freshly generated bracket. If the human has a bye the Round of 32 is played
// out and the controller starts in the Round of 16
func NewController(b *bracket.Bracket, human shared.Team, rng bracket.RandomSource) (*Controller, error) {
	if b == nil || len(b.Matches(bracket.RoundOf32)) != bracket.RoundOf32.Size() {
		return nil, fmt.Errorf("bracket has not been generated")
	}
	c := &Controller{
		bracket:  b,
		human:    human,
		rng:      rng,
		simulate: SimulateMatch,
		current:  bracket.RoundOf32,
		state:    State(bracket.RoundOf32),
	}
	if err := c.autoAdvance(); err != nil {
		return nil, err
	}
	return c, nil
}

// SubmitHumanResult attaches the human's result to their match in the current round. A loss ends the tournament,
// a win simulates every other match in the round
// Preconditions: Receives the result oriented to the match (GoalsHome belongs to the home team)
// Postconditions: Returns nil once the round has been updated, or an error with the bracket untouched
func (c *Controller) SubmitHumanResult(result bracket.MatchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.IsTerminal() {
		return ErrTournamentOver
	}

	match := c.humanMatch()
	if match == nil || match.Result != nil {
		return fmt.Errorf("%w: %s in the %s", ErrNoActiveHumanMatch, c.human.Name, c.current.Label())
	}
	if err := match.SetResult(result); err != nil {
		return err
	}

	winner, err := match.Winner()
	if err != nil {
		return err
	}
	if winner.ID != c.human.ID {
		c.state = StateEliminated
		c.eliminatedIn, _ = eliminationRound(c.bracket, c.human)
		return nil
	}

	if err := c.simulateRound(c.current); err != nil {
		return err
	}
	return c.autoAdvance()
}

// AdvanceRound moves the winners of the current round into the next one. On the final it ends the tournament
func (c *Controller) AdvanceRound() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.advance(); err != nil {
		return err
	}
	return c.autoAdvance()
}

func (c *Controller) advance() error {
	if c.state.IsTerminal() {
		return ErrTournamentOver
	}
	if !c.isRoundComplete(c.current) {
		return fmt.Errorf("%w: %s", ErrRoundNotComplete, c.current.Label())
	}

	next, ok := c.current.Next()
	if !ok {
		winner, err := c.bracket.Matches(bracket.Final)[0].Winner()
		if err != nil {
			return err
		}
		if winner.ID == c.human.ID {
			c.state = StateChampion
		} else {
			c.state = StateEliminated
			c.eliminatedIn, _ = eliminationRound(c.bracket, c.human)
		}
		return nil
	}

	// Collect every winner before writing so a failure leaves the next round untouched
	matches := c.bracket.Matches(c.current)
	winners := make([]*shared.Team, len(matches))
	for i, m := range matches {
		if m.IsPlaceholder() {
			continue
		}
		winner, err := m.Winner()
		if err != nil {
			return err
		}
		winners[i] = &winner
	}

	nextMatches := c.bracket.Matches(next)
	if c.current == bracket.RoundOf32 {
		for _, m := range nextMatches {
			if m.FeedsFrom == nil || *m.FeedsFrom < 0 || *m.FeedsFrom >= len(winners) {
				return fmt.Errorf("%s is not linked to a %s match", m.ID, bracket.RoundOf32.Label())
			}
		}
		for _, m := range nextMatches {
			m.Away = winners[*m.FeedsFrom]
		}
	} else {
		if len(winners) != 2*len(nextMatches) {
			return fmt.Errorf("%s has %d matches, cannot feed %d in the %s", c.current.Label(), len(winners), len(nextMatches), next.Label())
		}
		for i, m := range nextMatches {
			m.Home = winners[2*i]
			m.Away = winners[2*i+1]
		}
	}

	c.current = next
	c.state = State(next)
	return nil
}

// autoAdvance plays out rounds the human has no stake in. It runs after every mutating call
func (c *Controller) autoAdvance() error {
	for !c.state.IsTerminal() && c.humanMatch() == nil {
		if err := c.simulateRound(c.current); err != nil {
			return err
		}
		if err := c.advance(); err != nil {
			return err
		}
	}
	return nil
}

// simulateRound plays every ready match in the round except the human's
func (c *Controller) simulateRound(round bracket.Round) error {
	for _, m := range c.bracket.Matches(round) {
		if !m.IsReady() || m.Involves(c.human.ID) {
			continue
		}
		if err := m.SetResult(c.simulate(*m.Home, *m.Away, c.rng)); err != nil {
			return fmt.Errorf("failed to simulate %s: %w", m.ID, err)
		}
	}
	return nil
}

// humanMatch returns the human's match in the current round, or nil if they are not in it
func (c *Controller) humanMatch() *bracket.Match {
	for _, m := range c.bracket.Matches(c.current) {
		if m.Involves(c.human.ID) {
			return m
		}
	}
	return nil
}

// IsRoundComplete reports whether every match in the round has been played or was never reachable
func (c *Controller) IsRoundComplete(round bracket.Round) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isRoundComplete(round)
}

func (c *Controller) isRoundComplete(round bracket.Round) bool {
	for _, m := range c.bracket.Matches(round) {
		if m.Result == nil && !m.IsPlaceholder() {
			return false
		}
	}
	return true
}

// HumanMatch returns a copy of the human's match in the current round
func (c *Controller) HumanMatch() (bracket.Match, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.humanMatch()
	if m == nil {
		return bracket.Match{}, false
	}
	return *m, true
}

// CurrentRound returns the round being played, or the last round reached once the tournament is over
func (c *Controller) CurrentRound() bracket.Round {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// State returns the controller's state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Human returns the human controlled team
func (c *Controller) Human() shared.Team {
	return c.human
}

// Snapshot returns a deep copy of the bracket for rendering
func (c *Controller) Snapshot() bracket.Bracket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bracket.Clone()
}

// Outcome reports the human's result. Champion is set whenever the final has been decided
func (c *Controller) Outcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	outcome := Outcome{State: c.state, Human: c.human}
	if final := c.bracket.Matches(bracket.Final); len(final) == 1 {
		if winner, err := final[0].Winner(); err == nil {
			outcome.Champion = &winner
		}
	}
	if c.state == StateEliminated {
		outcome.EliminatedIn = c.eliminatedIn
	}
	return outcome
}

// EliminationRound scans the played rounds in order for the first match the human lost
func (c *Controller) EliminationRound() (bracket.Round, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return eliminationRound(c.bracket, c.human)
}

func eliminationRound(b *bracket.Bracket, human shared.Team) (bracket.Round, bool) {
	for _, round := range bracket.Rounds {
		for _, m := range b.Matches(round) {
			if m.Result == nil || !m.Involves(human.ID) {
				continue
			}
			if winner, err := m.Winner(); err == nil && winner.ID != human.ID {
				return round, true
			}
		}
	}
	return "", false
}
