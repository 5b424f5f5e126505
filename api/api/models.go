/* models.go
 * This file contain the interfaces, structs and helper functions that are used by api consumers
 * Authors: Zachary Bower
 */

package api

import (
	"errors"
	"worldcup-sim/api/bracket"
	"worldcup-sim/api/knockout"
	"worldcup-sim/api/shared"
)

var (
	ErrNoSession     = errors.New("no tournament in progress")
	ErrSessionActive = errors.New("a tournament is already in progress")
)

// SessionView is a read only copy of a user's tournament, safe to hand to the bot and web layers
type SessionView struct {
	RunID      string            `json:"runId"`
	User       shared.User       `json:"user"`
	Human      shared.Team       `json:"human"`
	State      knockout.State    `json:"state"`
	Round      bracket.Round     `json:"round"`
	HumanMatch *bracket.Match    `json:"humanMatch,omitempty"`
	Bracket    bracket.Bracket   `json:"bracket"`
	Outcome    *knockout.Outcome `json:"outcome,omitempty"`
}

// Finished reports whether the tournament is over for the user
func (v SessionView) Finished() bool {
	return v.State.IsTerminal()
}
