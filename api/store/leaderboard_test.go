/* leaderboard_test.go
 * Contains unit tests for leaderboard.go
 */

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// region FetchLeaderboardFromDB tests

func TestFetchLeaderboardFromDB_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("successfully fetches leaderboard", func(mt *mtest.T) {
		store := newMockStore(mt)

		leaderboardDoc := mtest.CreateCursorResponse(0, "test.leaderboard", mtest.FirstBatch, bson.D{
			{Key: "edition", Value: "TestEdition"},
			{Key: "updated_at", Value: time.Now()},
			{Key: "entries", Value: bson.A{
				bson.D{
					{Key: "userid", Value: "user1"},
					{Key: "username", Value: "TestUser1"},
					{Key: "score", Value: 10},
					{Key: "titles", Value: 1},
					{Key: "runs", Value: 2},
					{Key: "best_finish", Value: "champion"},
				},
				bson.D{
					{Key: "userid", Value: "user2"},
					{Key: "username", Value: "TestUser2"},
					{Key: "score", Value: 3},
					{Key: "titles", Value: 0},
					{Key: "runs", Value: 1},
					{Key: "best_finish", Value: "qf"},
				},
			}},
		})
		mt.AddMockResponses(leaderboardDoc)

		entries, err := store.FetchLeaderboardFromDB()
		require.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "user1", entries[0].UserID)
		assert.Equal(t, 10, entries[0].Score)
		assert.Equal(t, 1, entries[0].Titles)
		assert.Equal(t, "qf", entries[1].BestFinish)
	})
}

func TestFetchLeaderboardFromDB_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when no leaderboard found", func(mt *mtest.T) {
		store := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.leaderboard", mtest.FirstBatch))

		entries, err := store.FetchLeaderboardFromDB()
		assert.Equal(t, mongo.ErrNoDocuments, err)
		assert.Nil(t, entries)
	})
}

func TestFetchLeaderboardFromDB_DatabaseError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error on database failure", func(mt *mtest.T) {
		store := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "database error",
		}))

		entries, err := store.FetchLeaderboardFromDB()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch leaderboard from database")
		assert.Nil(t, entries)
	})
}

// endregion

// region StoreLeaderboard tests

func TestStoreLeaderboard_InsertNew(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("successfully inserts new leaderboard", func(mt *mtest.T) {
		store := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.leaderboard", mtest.FirstBatch))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := store.StoreLeaderboard(Leaderboard{
			UpdatedAt: time.Now(),
			Entries:   []LeaderboardEntry{{UserID: "user1", Username: "TestUser1", Score: 7, Titles: 1, Runs: 1}},
		})
		assert.NoError(t, err)
	})
}

func TestStoreLeaderboard_UpdateExisting(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("successfully updates existing leaderboard", func(mt *mtest.T) {
		store := newMockStore(mt)
		existing := bson.D{{Key: "edition", Value: "TestEdition"}, {Key: "entries", Value: bson.A{}}}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.leaderboard", mtest.FirstBatch, existing))
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		err := store.StoreLeaderboard(Leaderboard{
			Edition: "TestEdition",
			Entries: []LeaderboardEntry{{UserID: "user1", Score: 2}},
		})
		assert.NoError(t, err)
	})
}

func TestStoreLeaderboard_Empty(t *testing.T) {
	store := &Store{Edition: "TestEdition"}

	err := store.StoreLeaderboard(Leaderboard{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "leaderboard is empty")
}

func TestStoreLeaderboard_LookupFails(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when FindOne fails", func(mt *mtest.T) {
		store := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "lookup failed",
		}))

		err := store.StoreLeaderboard(Leaderboard{Entries: []LeaderboardEntry{{UserID: "user1"}}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "lookup for existing record failed")
	})
}

func TestStoreLeaderboard_UpdateFails(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when update fails", func(mt *mtest.T) {
		store := newMockStore(mt)
		existing := bson.D{{Key: "edition", Value: "TestEdition"}}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.leaderboard", mtest.FirstBatch, existing))
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "update failed",
		}))

		err := store.StoreLeaderboard(Leaderboard{Entries: []LeaderboardEntry{{UserID: "user1"}}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "leaderboard update failed")
	})
}

// endregion
