/* group_standings.go
 * Contains the methods for interacting with the group_standings collection. The standings are produced by the group
 * stage and are read only as far as the knockout stage is concerned
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
	"worldcup-sim/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FetchGroupStandings returns the final group tables for the store's edition
// Preconditions: Receives receiver pointer for Store which contains DB information such as database name, collection and edition
// Postconditions: Returns the group tables, mongo.ErrNoDocuments if none are stored, or another error if it occurs
func (s *Store) FetchGroupStandings() ([]shared.GroupStanding, error) {
	opts := options.FindOne()

	var res StandingsDoc
	err := s.Collections.GroupStandings.FindOne(context.TODO(), bson.D{{Key: "edition", Value: s.Edition}}, opts).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching group standings from db: %w", err)
	}

	return res.Groups, nil
}

// StoreGroupStandings inserts or replaces the group tables for the store's edition
// Preconditions: Receives slice of group standings with at least one group
// Postconditions: Updates the data stored in the db, returns error message if the operation was unsuccessful
func (s *Store) StoreGroupStandings(groups []shared.GroupStanding) error {
	if len(groups) == 0 {
		return fmt.Errorf("group standings input has length 0, requires at least 1")
	}

	// Attempt to find an existing document
	var raw bson.M
	err := s.Collections.GroupStandings.FindOne(context.TODO(), bson.M{"edition": s.Edition}).Decode(&raw)
	notFound := errors.Is(err, mongo.ErrNoDocuments)

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing record failed: %w", err)
	}

	doc := StandingsDoc{
		Edition:   s.Edition,
		Groups:    groups,
		UpdatedAt: time.Now(),
	}

	log.Println("updating group standings in db")
	if notFound {
		_, err := s.Collections.GroupStandings.InsertOne(context.TODO(), doc)
		if err != nil {
			return fmt.Errorf("failed to insert group standings: %w", err)
		}
		return nil
	}

	filter := bson.M{"edition": s.Edition}
	update := bson.M{"$set": doc}
	_, err = s.Collections.GroupStandings.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return fmt.Errorf("failed to update group standings: %w", err)
	}
	return nil
}

// EnsureGroupStandings checks standings exist for the edition. When the collection is empty the default tables are
// stored so a tournament can always be started
// Preconditions: Receives receiver pointer for Store
// Postconditions: Returns nil once standings are present, or an error if it occurs
func (s *Store) EnsureGroupStandings() error {
	groups, err := s.FetchGroupStandings()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Printf("no group standings found for %s, storing defaults\n", s.Edition)
			return s.StoreGroupStandings(DefaultGroupStandings())
		}
		return fmt.Errorf("error checking group standings: %w", err)
	}

	if len(groups) == 0 {
		return fmt.Errorf("group standings found but empty for edition %s", s.Edition)
	}
	return nil
}

// GetValidTeams returns every team that played in the group stage
// Preconditions: Group standings have been stored for the edition
// Postconditions: Returns slice of teams in group order, or an error if it occurs
func (s *Store) GetValidTeams() ([]shared.Team, error) {
	groups, err := s.FetchGroupStandings()
	if err != nil {
		return nil, err
	}
	return TeamsFromStandings(groups), nil
}

// TeamsFromStandings flattens group tables into a list of teams
func TeamsFromStandings(groups []shared.GroupStanding) []shared.Team {
	var teams []shared.Team
	for _, group := range groups {
		for _, entry := range group.Entries {
			teams = append(teams, entry.Team)
		}
	}
	return teams
}

// QualifiedTeams returns the group winners and runners-up, the teams that play in the knockout stage
func QualifiedTeams(groups []shared.GroupStanding) []shared.Team {
	var teams []shared.Team
	for _, group := range groups {
		for _, entry := range group.Entries {
			if entry.GroupPosition == 1 || entry.GroupPosition == 2 {
				teams = append(teams, entry.Team)
			}
		}
	}
	return teams
}
