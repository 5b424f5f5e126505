/* models.go
 * This file contain the structs that relate to DB objects
 * Authors: Zachary Bower
 */

package store

import (
	"time"
	"worldcup-sim/api/shared"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StandingsDoc is the final group stage tables for one edition
type StandingsDoc struct {
	Edition   string                 `bson:"edition,omitempty"`
	Groups    []shared.GroupStanding `bson:"groups,omitempty"`
	UpdatedAt time.Time              `bson:"updated_at,omitempty"`
}

// OutcomeRecord is how a finished tournament session is stored. Only the result is kept, never the bracket
type OutcomeRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	RunID        string             `bson:"run_id,omitempty"`
	Edition      string             `bson:"edition,omitempty"`
	UserID       string             `bson:"userid,omitempty"`
	Username     string             `bson:"username,omitempty"`
	TeamID       string             `bson:"team_id,omitempty"`
	TeamName     string             `bson:"team_name,omitempty"`
	State        string             `bson:"state,omitempty"`         // "champion" or "eliminated"
	RoundReached string             `bson:"round_reached,omitempty"` // last round played, e.g. "qf"
	ChampionName string             `bson:"champion_name,omitempty"`
	FinishedAt   time.Time          `bson:"finished_at,omitempty"`
}

type LeaderboardEntry struct {
	UserID     string `bson:"userid,omitempty" json:"userId"`
	Username   string `bson:"username,omitempty" json:"username"`
	Score      int    `bson:"score" json:"score"`
	Titles     int    `bson:"titles" json:"titles"`
	Runs       int    `bson:"runs" json:"runs"`
	BestFinish string `bson:"best_finish,omitempty" json:"bestFinish,omitempty"`
}

type Leaderboard struct {
	Edition   string             `bson:"edition,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty"`
	Entries   []LeaderboardEntry `bson:"entries"`
}
