/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"worldcup-sim/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	EnsureGroupStandings() error
	FetchGroupStandings() ([]shared.GroupStanding, error)
	StoreGroupStandings(groups []shared.GroupStanding) error
	GetValidTeams() ([]shared.Team, error)
	StoreOutcome(record OutcomeRecord) error
	GetAllOutcomes() ([]OutcomeRecord, error)
	StoreLeaderboard(leaderboard Leaderboard) error
	FetchLeaderboardFromDB() ([]LeaderboardEntry, error)

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetEdition() string
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetEdition returns the tournament edition the store is scoped to
func (s *Store) GetEdition() string {
	return s.Edition
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
