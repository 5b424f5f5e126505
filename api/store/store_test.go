/* store_test.go
 * Contains unit tests for store.go and store_interface.go
 * Authors: Zachary Bower
 */

package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// newMockStore wires every collection to the mtest collection
func newMockStore(mt *mtest.T) *Store {
	return &Store{
		Client:   mt.Client,
		Database: mt.DB,
		Edition:  "TestEdition",
		Collections: Collections{
			GroupStandings: mt.Coll,
			Outcomes:       mt.Coll,
			Leaderboard:    mt.Coll,
		},
	}
}

// toDoc converts a value into a bson.D so it can be used in a mock cursor response
func toDoc(t *testing.T, v interface{}) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func TestStore_GetEdition(t *testing.T) {
	s := &Store{Edition: "WorldCup2026"}
	assert.Equal(t, "WorldCup2026", s.GetEdition())
}

func TestStore_GetClient(t *testing.T) {
	s := &Store{Client: nil}
	result := s.GetClient()

	// Just test that method exists and returns (even if nil)
	_ = result
}

func TestNewStore_EmptyEdition(t *testing.T) {
	store, err := NewStore("test_db", "mongodb://localhost:27017", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "edition cannot be empty")
	assert.Nil(t, store)
}

func TestNewStore_Collections(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("collections are named", func(mt *mtest.T) {
		s := newMockStore(mt)
		assert.IsType(t, &mongo.Collection{}, s.Collections.Outcomes)
		assert.Equal(t, "TestEdition", s.GetEdition())
	})
}

// Integration test for NewStore
func TestNewStore_Integration(t *testing.T) {
	mongoURI := os.Getenv("MONGO_TEST_URI")
	if mongoURI == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	store, cleanup, err := CreateTestStore(mongoURI)
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, store.EnsureGroupStandings())
	teams, err := store.GetValidTeams()
	require.NoError(t, err)
	assert.Len(t, teams, 48)
}
