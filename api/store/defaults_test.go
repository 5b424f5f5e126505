/* defaults_test.go
 * Checks the default standings can seed a tournament
 */

package store

import (
	"math/rand"
	"testing"
	"worldcup-sim/api/bracket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGroupStandings_GenerateBracket(t *testing.T) {
	groups := DefaultGroupStandings()
	teams := TeamsFromStandings(groups)
	require.Len(t, teams, 48)

	human := groups[0].Entries[0].Team
	b, err := bracket.Generate(groups, human, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Len(t, b.Byes, bracket.NumByes)
}

func TestDefaultGroupStandings_ByeOrder(t *testing.T) {
	winners, err := bracket.RankedWinners(DefaultGroupStandings())
	require.NoError(t, err)

	var top []string
	for _, w := range winners[:bracket.NumByes] {
		top = append(top, w.Team.ID)
	}
	assert.Equal(t, []string{"GER", "BRA", "ESP", "ARG", "ENG", "NED", "FRA", "USA"}, top)
}

func TestDefaultGroupStandings_StarsInRange(t *testing.T) {
	for _, team := range TeamsFromStandings(DefaultGroupStandings()) {
		assert.GreaterOrEqual(t, team.Stars, 1, team.Name)
		assert.LessOrEqual(t, team.Stars, 5, team.Name)
	}
}

func TestQualifiedTeams_Defaults(t *testing.T) {
	teams := QualifiedTeams(DefaultGroupStandings())

	assert.Len(t, teams, 24)
	ids := make(map[string]bool)
	for _, team := range teams {
		ids[team.ID] = true
	}
	assert.True(t, ids["MEX"])
	assert.True(t, ids["KOR"])
	assert.False(t, ids["RSA"])
	assert.False(t, ids["ITA"])
}
