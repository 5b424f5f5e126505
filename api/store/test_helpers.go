/* test_helpers.go
 * Contains test helper functions for store package tests
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"time"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewStore("test_worldcup", mongoURI, "TestEdition")
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateSampleOutcome creates sample OutcomeRecord data for testing.
func CreateSampleOutcome(userID, username, state, roundReached string) OutcomeRecord {
	return OutcomeRecord{
		RunID:        "run-" + userID,
		Edition:      "TestEdition",
		UserID:       userID,
		Username:     username,
		TeamID:       "ARG",
		TeamName:     "Argentina",
		State:        state,
		RoundReached: roundReached,
		FinishedAt:   time.Date(2026, 7, 19, 20, 0, 0, 0, time.UTC),
	}
}
