/* api.go
 * This file contains the public methods for interacting with this package. The bot and web server should only call
 * the functions in this file, not the bracket, knockout or store packages directly
 * Authors: Zachary Bower
 */

package api

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"worldcup-sim/api/bracket"
	"worldcup-sim/api/knockout"
	"worldcup-sim/api/logic"
	"worldcup-sim/api/shared"
	"worldcup-sim/api/store"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// API provides methods for running knockout sessions and reading the leaderboard
type API struct {
	Store store.Interface

	// Seed fixes the random source of every new session. Zero seeds from the clock
	Seed int64

	mu       sync.Mutex
	sessions map[string]*session
}

// session is one user's tournament. Only the outcome is persisted once it ends
type session struct {
	runID      string
	user       shared.User
	controller *knockout.Controller
	recorded   bool
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string, edition string, seed int64) (*API, error) {
	if dbName == "" || edition == "" {
		return nil, fmt.Errorf("dbName and edition are required")
	}

	s, err := store.NewStore(dbName, mongoURI, edition)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store: s,
		Seed:  seed,
	}, nil
}

// getSession returns the user's session. Callers must hold a.mu
func (a *API) getSession(userID string) (*session, error) {
	if a.sessions == nil {
		a.sessions = make(map[string]*session)
	}
	sess, ok := a.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

// StartTournament generates a new bracket for the user with the team they picked.
// Preconditions: Receives the user and a team name or code, fuzzy matched against the qualified teams
// Postconditions: Returns the new session, or an error if the user already has a tournament running or the team
// did not make the knockout stage
func (a *API) StartTournament(user shared.User, teamQuery string) (SessionView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if sess, err := a.getSession(user.UserID); err == nil && !sess.controller.State().IsTerminal() {
		return SessionView{}, fmt.Errorf("%w: %s are playing in the %s, use $restart to start again", ErrSessionActive, sess.controller.Human().Name, sess.controller.CurrentRound().Label())
	}

	sess, err := a.start(user, teamQuery)
	if err != nil {
		return SessionView{}, err
	}
	a.sessions[user.UserID] = sess
	return a.view(sess), nil
}

// start builds a session from the stored group standings without registering it. Callers must hold a.mu
func (a *API) start(user shared.User, teamQuery string) (*session, error) {
	err := a.Store.EnsureGroupStandings()
	if err != nil {
		return nil, err
	}

	groups, err := a.Store.FetchGroupStandings()
	if err != nil {
		return nil, err
	}

	validTeams, err := a.Store.GetValidTeams()
	if err != nil {
		return nil, err
	}

	teamQuery = strings.NewReplacer("\"", "", "“", "", "”", "").Replace(teamQuery)
	human, err := logic.CheckTeamName(teamQuery, validTeams)
	if err != nil {
		return nil, err
	}

	rng := bracket.NewRandomSource(a.Seed)
	b, err := bracket.Generate(groups, human, rng)
	if err != nil {
		return nil, err
	}

	controller, err := knockout.NewController(b, human, rng)
	if err != nil {
		return nil, err
	}

	sess := &session{
		runID:      uuid.NewString(),
		user:       user,
		controller: controller,
	}
	log.Printf("started run %s for %s with %s", sess.runID, user.Username, human.Name)
	return sess, nil
}

// SubmitResult records the user's result in their current match.
// Preconditions: Receives the user and the score from the user's point of view (their goals first)
// Postconditions: Returns the updated session, or an error if there is no match to play. A finished tournament is
// stored as an outcome
func (a *API) SubmitResult(user shared.User, input logic.ScoreInput) (SessionView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sess, err := a.getSession(user.UserID)
	if err != nil {
		return SessionView{}, err
	}

	match, ok := sess.controller.HumanMatch()
	if !ok {
		if sess.controller.State().IsTerminal() {
			return SessionView{}, knockout.ErrTournamentOver
		}
		return SessionView{}, knockout.ErrNoActiveHumanMatch
	}

	humanIsHome := match.Home != nil && match.Home.ID == sess.controller.Human().ID
	err = sess.controller.SubmitHumanResult(input.ToMatchResult(humanIsHome))
	if err != nil {
		return SessionView{}, err
	}

	a.recordIfFinished(sess)
	return a.view(sess), nil
}

// Advance moves the user's tournament on to the next round once their match has been played
// Preconditions: Receives the user
// Postconditions: Returns the updated session, or an error if the round is not complete or the tournament is over
func (a *API) Advance(user shared.User) (SessionView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sess, err := a.getSession(user.UserID)
	if err != nil {
		return SessionView{}, err
	}

	err = sess.controller.AdvanceRound()
	if err != nil {
		return SessionView{}, err
	}

	a.recordIfFinished(sess)
	return a.view(sess), nil
}

// Restart throws away the user's tournament and draws a new bracket with the same team. An unfinished run is not
// recorded. If the new bracket cannot be drawn the old tournament is kept
func (a *API) Restart(user shared.User) (SessionView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	old, err := a.getSession(user.UserID)
	if err != nil {
		return SessionView{}, err
	}

	sess, err := a.start(user, old.controller.Human().ID)
	if err != nil {
		return SessionView{}, err
	}
	a.sessions[user.UserID] = sess
	return a.view(sess), nil
}

// Snapshot returns a copy of the user's tournament
func (a *API) Snapshot(user shared.User) (SessionView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sess, err := a.getSession(user.UserID)
	if err != nil {
		return SessionView{}, err
	}
	a.recordIfFinished(sess)
	return a.view(sess), nil
}

// GetBracket renders every round the user's tournament has reached
// Preconditions: Receives the user
// Postconditions: Returns the rounds as discord formatted text, or an error if the user has no tournament
func (a *API) GetBracket(user shared.User) (string, error) {
	view, err := a.Snapshot(user)
	if err != nil {
		return "", err
	}

	var res strings.Builder
	for _, round := range bracket.Rounds {
		res.WriteString(logic.RenderRound(round, view.Bracket.Matches(round), view.Human.ID))
		if round == view.Round {
			break
		}
	}
	return res.String(), nil
}

// GetTeams gets a list of all the teams that qualified for the knockout stage
func (a *API) GetTeams() ([]shared.Team, error) {
	err := a.Store.EnsureGroupStandings()
	if err != nil {
		return nil, err
	}

	groups, err := a.Store.FetchGroupStandings()
	if err != nil {
		return nil, err
	}
	return store.QualifiedTeams(groups), nil
}

// recordIfFinished stores the outcome of a finished run once. A failed write is retried the next time the session
// is read. Callers must hold a.mu
func (a *API) recordIfFinished(sess *session) {
	if sess.recorded || !sess.controller.State().IsTerminal() {
		return
	}

	outcome := sess.controller.Outcome()
	record := store.OutcomeRecord{
		RunID:        sess.runID,
		Edition:      a.Store.GetEdition(),
		UserID:       sess.user.UserID,
		Username:     sess.user.Username,
		TeamID:       outcome.Human.ID,
		TeamName:     outcome.Human.Name,
		State:        string(outcome.State),
		RoundReached: string(sess.controller.CurrentRound()),
		FinishedAt:   time.Now().UTC(),
	}
	if outcome.State == knockout.StateEliminated && outcome.EliminatedIn != "" {
		record.RoundReached = string(outcome.EliminatedIn)
	}
	if outcome.Champion != nil {
		record.ChampionName = outcome.Champion.Name
	}

	if err := a.Store.StoreOutcome(record); err != nil {
		log.Printf("failed to store outcome for run %s: %v", sess.runID, err)
		return
	}
	sess.recorded = true
}

// view copies a session for the caller. The human's match points into the copied bracket
func (a *API) view(sess *session) SessionView {
	c := sess.controller
	v := SessionView{
		RunID:   sess.runID,
		User:    sess.user,
		Human:   c.Human(),
		State:   c.State(),
		Round:   c.CurrentRound(),
		Bracket: c.Snapshot(),
	}

	for _, m := range v.Bracket.Matches(v.Round) {
		if m.Involves(v.Human.ID) {
			v.HumanMatch = m
			break
		}
	}
	if v.State.IsTerminal() {
		outcome := c.Outcome()
		v.Outcome = &outcome
	}
	return v
}

// GenerateLeaderboard contains the logic required to generate a leaderboard.
// Preconditions: Receives receiver pointer to api
// Postconditions: Generates the leaderboard, updates it in the DB and returns nil, or returns an error if it occurs
func (a *API) GenerateLeaderboard() error {
	outcomes, err := a.Store.GetAllOutcomes()
	if err != nil {
		return err
	}

	leaderboard := store.Leaderboard{
		Edition:   a.Store.GetEdition(),
		UpdatedAt: time.Now().UTC(),
		Entries:   logic.ScoreOutcomes(outcomes),
	}

	err = a.Store.StoreLeaderboard(leaderboard)
	if err != nil {
		return err
	}
	return nil
}

// GetLeaderboardEntries fetches the stored leaderboard entries in ranked order
func (a *API) GetLeaderboardEntries() ([]store.LeaderboardEntry, error) {
	entries, err := a.Store.FetchLeaderboardFromDB()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []store.LeaderboardEntry{}, nil
	}
	return entries, err
}

// GetLeaderboard fetches the leaderboard from the db and generates a response string
// Preconditions: Receives receiver pointer to api
// Postconditions: Returns a string with the summary of the leaderboard for this edition
func (a *API) GetLeaderboard() (string, error) {
	// Fetch leaderboard from DB
	entries, err := a.Store.FetchLeaderboardFromDB()
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	if len(entries) == 0 {
		return "No tournaments have been finished yet", nil
	}

	// Generate Response string
	var response strings.Builder
	response.WriteString("The best managers are:\n")
	for i, entry := range entries {
		response.WriteString(fmt.Sprintf("%d. %s, %d points, %d titles from %d runs (best: %s)\n", i+1, entry.Username, entry.Score, entry.Titles, entry.Runs, entry.BestFinish))
	}

	return response.String(), nil
}
