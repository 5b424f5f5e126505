/* scoring.go
 * Contains the logic for turning finished tournament runs into leaderboard entries, and for rendering rounds as text
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"sort"
	"strings"
	"worldcup-sim/api/bracket"
	"worldcup-sim/api/shared"
	"worldcup-sim/api/store"
)

// Points awarded for how far a run got. A run that lifts the trophy gets ChampionPoints instead of the final's value
var stagePoints = map[bracket.Round]int{
	bracket.RoundOf32:    1,
	bracket.RoundOf16:    2,
	bracket.QuarterFinal: 3,
	bracket.SemiFinal:    4,
	bracket.Final:        5,
}

const (
	ChampionPoints = 7
	championLabel  = "Champion"
)

// RunScore returns the points a single finished run is worth
func RunScore(record store.OutcomeRecord) int {
	if record.State == "champion" {
		return ChampionPoints
	}
	return stagePoints[bracket.Round(record.RoundReached)]
}

// finishRank orders finishes so that a deeper run ranks higher
func finishRank(record store.OutcomeRecord) int {
	if record.State == "champion" {
		return len(bracket.Rounds)
	}
	for i, round := range bracket.Rounds {
		if string(round) == record.RoundReached {
			return i
		}
	}
	return -1
}

func finishLabel(record store.OutcomeRecord) string {
	if record.State == "champion" {
		return championLabel
	}
	return bracket.Round(record.RoundReached).Label()
}

// ScoreOutcomes aggregates every finished run into one leaderboard entry per user
// Preconditions: receives the outcome records for an edition
// Postconditions: returns the entries sorted by score, then titles, then fewest runs, then username
func ScoreOutcomes(outcomes []store.OutcomeRecord) []store.LeaderboardEntry {
	byUser := make(map[string]*store.LeaderboardEntry)
	bestRank := make(map[string]int)

	for _, outcome := range outcomes {
		entry, ok := byUser[outcome.UserID]
		if !ok {
			entry = &store.LeaderboardEntry{UserID: outcome.UserID, Username: outcome.Username}
			byUser[outcome.UserID] = entry
			bestRank[outcome.UserID] = -2
		}

		entry.Runs++
		entry.Score += RunScore(outcome)
		if outcome.State == "champion" {
			entry.Titles++
		}
		if outcome.Username != "" {
			entry.Username = outcome.Username
		}
		if rank := finishRank(outcome); rank > bestRank[outcome.UserID] {
			bestRank[outcome.UserID] = rank
			entry.BestFinish = finishLabel(outcome)
		}
	}

	entries := make([]store.LeaderboardEntry, 0, len(byUser))
	for _, entry := range byUser {
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Titles != b.Titles {
			return a.Titles > b.Titles
		}
		if a.Runs != b.Runs {
			return a.Runs < b.Runs
		}
		return a.Username < b.Username
	})
	return entries
}

// RenderRound formats every match of a round, one per line. The human's team is shown in bold
// Preconditions: receives the round, its matches and the human's team id
// Postconditions: returns a discord markdown friendly block of text
func RenderRound(round bracket.Round, matches []*bracket.Match, humanID string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%s**\n", round.Label()))

	for _, match := range matches {
		home := teamLabel(match.Home, humanID)
		away := teamLabel(match.Away, humanID)

		if match.Result == nil {
			sb.WriteString(fmt.Sprintf("%s vs %s\n", home, away))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s %s %s\n", home, match.Result.String(), away))
	}
	return sb.String()
}

func teamLabel(team *shared.Team, humanID string) string {
	if team == nil {
		return "TBD"
	}
	if team.ID == humanID {
		return fmt.Sprintf("**%s**", team.Name)
	}
	return team.Name
}
