/* scoring_test.go
 * Contains unit tests for scoring.go functions
 */

package logic

import (
	"testing"
	"worldcup-sim/api/bracket"
	"worldcup-sim/api/shared"
	"worldcup-sim/api/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region ScoreOutcomes tests

func TestRunScore(t *testing.T) {
	assert.Equal(t, 1, RunScore(store.CreateSampleOutcome("1", "a", "eliminated", "r32")))
	assert.Equal(t, 3, RunScore(store.CreateSampleOutcome("1", "a", "eliminated", "qf")))
	assert.Equal(t, 5, RunScore(store.CreateSampleOutcome("1", "a", "eliminated", "final")))
	assert.Equal(t, ChampionPoints, RunScore(store.CreateSampleOutcome("1", "a", "champion", "final")))
	assert.Equal(t, 0, RunScore(store.CreateSampleOutcome("1", "a", "eliminated", "groups")))
}

func TestScoreOutcomes_AggregatesPerUser(t *testing.T) {
	outcomes := []store.OutcomeRecord{
		store.CreateSampleOutcome("1", "alice", "eliminated", "r16"),
		store.CreateSampleOutcome("1", "alice", "champion", "final"),
		store.CreateSampleOutcome("2", "bob", "eliminated", "sf"),
		store.CreateSampleOutcome("2", "bob", "eliminated", "qf"),
		store.CreateSampleOutcome("3", "carol", "eliminated", "r32"),
	}

	entries := ScoreOutcomes(outcomes)

	require.Len(t, entries, 3)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, 9, entries[0].Score)
	assert.Equal(t, 1, entries[0].Titles)
	assert.Equal(t, 2, entries[0].Runs)
	assert.Equal(t, "Champion", entries[0].BestFinish)

	assert.Equal(t, "bob", entries[1].Username)
	assert.Equal(t, 7, entries[1].Score)
	assert.Equal(t, 0, entries[1].Titles)
	assert.Equal(t, "Semi Final", entries[1].BestFinish)

	assert.Equal(t, "carol", entries[2].Username)
	assert.Equal(t, 1, entries[2].Score)
	assert.Equal(t, "Round of 32", entries[2].BestFinish)
}

func TestScoreOutcomes_TieBreaks(t *testing.T) {
	outcomes := []store.OutcomeRecord{
		// 7 points from one title
		store.CreateSampleOutcome("1", "zed", "champion", "final"),
		// 7 points from two runs without a title
		store.CreateSampleOutcome("2", "amy", "eliminated", "sf"),
		store.CreateSampleOutcome("2", "amy", "eliminated", "qf"),
		// 7 points from three runs
		store.CreateSampleOutcome("3", "ben", "eliminated", "sf"),
		store.CreateSampleOutcome("3", "ben", "eliminated", "r16"),
		store.CreateSampleOutcome("3", "ben", "eliminated", "r32"),
	}

	entries := ScoreOutcomes(outcomes)

	require.Len(t, entries, 3)
	assert.Equal(t, "zed", entries[0].Username)
	assert.Equal(t, "amy", entries[1].Username)
	assert.Equal(t, "ben", entries[2].Username)
}

func TestScoreOutcomes_Empty(t *testing.T) {
	entries := ScoreOutcomes(nil)

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

// endregion

// region RenderRound tests

func TestRenderRound(t *testing.T) {
	arg := shared.Team{ID: "ARG", Name: "Argentina"}
	fra := shared.Team{ID: "FRA", Name: "France"}
	cro := shared.Team{ID: "CRO", Name: "Croatia"}
	played := &bracket.Match{ID: "sf-1", Round: bracket.SemiFinal, Home: &arg, Away: &fra}
	require.NoError(t, played.SetResult(bracket.MatchResult{GoalsHome: 3, GoalsAway: 3, PenaltyHome: 4, PenaltyAway: 2, WentToPenalties: true}))
	pending := &bracket.Match{ID: "sf-2", Round: bracket.SemiFinal, Home: &cro}

	out := RenderRound(bracket.SemiFinal, []*bracket.Match{played, pending}, "ARG")

	assert.Equal(t, "**Semi Final**\n**Argentina** 3-3 (4-2 pens) France\nCroatia vs TBD\n", out)
}

// endregion
