/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"worldcup-sim/api/shared"
	"worldcup-sim/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	// Storage for mock data
	Groups      []shared.GroupStanding
	Outcomes    []store.OutcomeRecord
	Leaderboard *store.Leaderboard

	// Error injection for testing error paths
	EnsureGroupStandingsError error
	FetchGroupStandingsError  error
	GetValidTeamsError        error
	StoreOutcomeError         error
	GetAllOutcomesError       error
	StoreLeaderboardError     error
	FetchLeaderboardError     error

	// Database and edition info
	Edition  string
	Database interface{ Name() string }
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// NewMockStore creates a new MockStore seeded with the default group standings
func NewMockStore(edition string) *MockStore {
	return &MockStore{
		Groups:   store.DefaultGroupStandings(),
		Edition:  edition,
		Database: &mockDatabase{name: "test_db"},
	}
}

// EnsureGroupStandings mock implementation
func (m *MockStore) EnsureGroupStandings() error {
	if m.EnsureGroupStandingsError != nil {
		return m.EnsureGroupStandingsError
	}
	if len(m.Groups) == 0 {
		m.Groups = store.DefaultGroupStandings()
	}
	return nil
}

// FetchGroupStandings mock implementation
func (m *MockStore) FetchGroupStandings() ([]shared.GroupStanding, error) {
	if m.FetchGroupStandingsError != nil {
		return nil, m.FetchGroupStandingsError
	}
	if len(m.Groups) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return m.Groups, nil
}

// StoreGroupStandings mock implementation
func (m *MockStore) StoreGroupStandings(groups []shared.GroupStanding) error {
	m.Groups = groups
	return nil
}

// GetValidTeams mock implementation
func (m *MockStore) GetValidTeams() ([]shared.Team, error) {
	if m.GetValidTeamsError != nil {
		return nil, m.GetValidTeamsError
	}
	groups, err := m.FetchGroupStandings()
	if err != nil {
		return nil, err
	}
	return store.TeamsFromStandings(groups), nil
}

// StoreOutcome mock implementation
func (m *MockStore) StoreOutcome(record store.OutcomeRecord) error {
	if m.StoreOutcomeError != nil {
		return m.StoreOutcomeError
	}
	m.Outcomes = append(m.Outcomes, record)
	return nil
}

// GetAllOutcomes mock implementation
func (m *MockStore) GetAllOutcomes() ([]store.OutcomeRecord, error) {
	if m.GetAllOutcomesError != nil {
		return nil, m.GetAllOutcomesError
	}
	return m.Outcomes, nil
}

// StoreLeaderboard mock implementation
func (m *MockStore) StoreLeaderboard(leaderboard store.Leaderboard) error {
	if m.StoreLeaderboardError != nil {
		return m.StoreLeaderboardError
	}
	m.Leaderboard = &leaderboard
	return nil
}

// FetchLeaderboardFromDB mock implementation
func (m *MockStore) FetchLeaderboardFromDB() ([]store.LeaderboardEntry, error) {
	if m.FetchLeaderboardError != nil {
		return nil, m.FetchLeaderboardError
	}
	if m.Leaderboard == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.Leaderboard.Entries, nil
}

// Implement getter methods for StoreInterface
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return m.Database
}

func (m *MockStore) GetEdition() string {
	return m.Edition
}

// mockClient implements minimal client interface
type mockClient struct{}

func (mc *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}
