/* outcomes.go
 * Contains the methods for interacting with the outcomes collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// StoreOutcome records a finished tournament run
// Preconditions: Receives an OutcomeRecord with a user id and state
// Postconditions: Inserts the record and returns nil, or an error if it occurs
func (s *Store) StoreOutcome(record OutcomeRecord) error {
	if record.UserID == "" || record.State == "" {
		return fmt.Errorf("outcome requires a user id and state")
	}
	if record.Edition == "" {
		record.Edition = s.Edition
	}
	if record.FinishedAt.IsZero() {
		record.FinishedAt = time.Now()
	}

	_, err := s.Collections.Outcomes.InsertOne(context.TODO(), record)
	if err != nil {
		return fmt.Errorf("failed to insert outcome: %w", err)
	}
	return nil
}

// GetAllOutcomes returns every finished run for the edition. Used in leaderboard calculations
// Preconditions: Receives receiver pointer for Store
// Postconditions: Returns slice of OutcomeRecords or an error if it occurs
func (s *Store) GetAllOutcomes() ([]OutcomeRecord, error) {
	filter := bson.D{{Key: "edition", Value: s.Edition}}

	cursor, err := s.Collections.Outcomes.Find(context.TODO(), filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching outcomes from db: %w", err)
	}

	// Unpack the cursor into a slice
	var results []OutcomeRecord
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of outcomes: %w", err)
	}

	return results, nil
}
