/* models.go
 * This file contain the structs that are shared between sub packages
 * Authors: Zachary Bower
 */

package shared

type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Team is a national side. Stars (1-5) is the strength proxy used by the match engine
type Team struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	FlagCode string `bson:"flag_code,omitempty" json:"flagCode,omitempty"`
	Stars    int    `bson:"stars" json:"stars"`
}

// StandingEntry is one team's final line in a group table
type StandingEntry struct {
	Team          Team `bson:"team" json:"team"`
	Points        int  `bson:"points" json:"points"`
	GoalsFor      int  `bson:"goals_for" json:"goalsFor"`
	GoalsAgainst  int  `bson:"goals_against" json:"goalsAgainst"`
	GroupPosition int  `bson:"group_position" json:"groupPosition"` // 1 = winner, 2 = runner-up
}

// GoalDifference returns goals for minus goals against
func (e StandingEntry) GoalDifference() int {
	return e.GoalsFor - e.GoalsAgainst
}

// GroupStanding is a completed group table, e.g. Group "A"
type GroupStanding struct {
	Group   string          `bson:"group" json:"group"`
	Entries []StandingEntry `bson:"entries" json:"entries"`
}
