/* sessions.go
 * Contains the HTTP handlers for tournament sessions, teams and the leaderboard
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"worldcup-sim/api/api"
	"worldcup-sim/api/bracket"
	"worldcup-sim/api/knockout"
	"worldcup-sim/api/logic"
	"worldcup-sim/api/shared"
)

// writeJSON encodes body as the response with the given status
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("failed to encode response:", err)
	}
}

// statusFor maps api errors onto HTTP status codes. Anything unrecognised is a 500 and is logged, not returned
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, api.ErrNoSession):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, api.ErrSessionActive),
		errors.Is(err, knockout.ErrTournamentOver),
		errors.Is(err, knockout.ErrRoundNotComplete),
		errors.Is(err, knockout.ErrNoActiveHumanMatch),
		errors.Is(err, bracket.ErrResultAlreadySet):
		return http.StatusConflict, err.Error()
	case errors.Is(err, logic.ErrInvalidTeam),
		errors.Is(err, bracket.ErrMalformedStandings),
		errors.Is(err, bracket.ErrInvalidResult):
		return http.StatusUnprocessableEntity, err.Error()
	}
	log.Println(err)
	return http.StatusInternalServerError, "internal server error"
}

func writeError(w http.ResponseWriter, err error) {
	status, msg := statusFor(err)
	writeJSON(w, status, errorResponse{Error: msg})
}

// userFromRequest builds the user from the path. The username defaults to the id
func userFromRequest(r *http.Request, username string) shared.User {
	userID := r.PathValue("userID")
	if username == "" {
		username = userID
	}
	return shared.User{UserID: userID, Username: username}
}

// StartSessionHandler HTTP endpoint that draws a new bracket for the user
// Preconditions: Receives a JSON body with the team to manage
// Postconditions: Responds 201 with the session, or an error status
func (s *Server) StartSessionHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("failed to decode start request:", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	view, err := s.api.StartTournament(userFromRequest(r, req.Username), req.Team)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// GetSessionHandler HTTP endpoint that returns a snapshot of the user's tournament
func (s *Server) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.api.Snapshot(userFromRequest(r, ""))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SubmitResultHandler HTTP endpoint that records the user's result in their current match
// Preconditions: Receives a JSON body such as {"score": "1-1 4-3"}, the user's goals first
// Postconditions: Responds 200 with the updated session, 422 if the score cannot decide the match
func (s *Server) SubmitResultHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req resultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("failed to decode result request:", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	input, err := logic.ParseResult(strings.Fields(req.Score))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	view, err := s.api.SubmitResult(userFromRequest(r, ""), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// AdvanceHandler HTTP endpoint that moves the user's tournament on to the next round
func (s *Server) AdvanceHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.api.Advance(userFromRequest(r, ""))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// RestartHandler HTTP endpoint that redraws the user's bracket with the same team
func (s *Server) RestartHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.api.Restart(userFromRequest(r, ""))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// TeamsHandler HTTP endpoint that lists the teams in the knockout stage
func (s *Server) TeamsHandler(w http.ResponseWriter, r *http.Request) {
	teams, err := s.api.GetTeams()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teamsResponse{Teams: teams})
}

// LeaderboardHandler HTTP endpoint that regenerates and returns the leaderboard
func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.api.GenerateLeaderboard(); err != nil {
		writeError(w, err)
		return
	}

	entries, err := s.api.GetLeaderboardEntries()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leaderboardResponse{Edition: s.api.Store.GetEdition(), Entries: entries})
}
