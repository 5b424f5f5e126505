/* store.go
 * Contains the store struct and NewStore function. The methods for this package were split into three files:
 * group_standings, outcomes and leaderboard. Each of these files contain methods for interacting with that
 * part of the database. Bracket state is never written here, a tournament only lives for one session
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections holds the collections used by the store
type Collections struct {
	GroupStandings *mongo.Collection
	Outcomes       *mongo.Collection
	Leaderboard    *mongo.Collection
}

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Edition     string
	Collections Collections
}

// Function for initialsing Store. Sets the edition and initialises db connection
// Preconditions: Receives strings containing the following: dbName, mongoURI and edition (e.g. WorldCup2026)
// Postconditions: Sets collection values, and returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string, edition string) (*Store, error) {
	if edition == "" {
		return nil, fmt.Errorf("edition cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	return &Store{
		Client:   client,
		Database: db,
		Edition:  edition,
		Collections: Collections{
			GroupStandings: db.Collection("group_standings"),
			Outcomes:       db.Collection("outcomes"),
			Leaderboard:    db.Collection("leaderboard"),
		},
	}, nil
}
