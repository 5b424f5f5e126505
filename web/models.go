/* models.go
 * Contains the configuration and the request / response bodies for the web server
 * Authors: Zachary Bower
 */

package web

import (
	"worldcup-sim/api/api"
	"worldcup-sim/api/shared"
	"worldcup-sim/api/store"

	"golang.org/x/time/rate"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API

	// RateLimit and Burst apply per client IP. Zero values fall back to the defaults
	RateLimit rate.Limit
	Burst     int
}

// Server is the HTTP server that exposes tournament sessions as JSON
type Server struct {
	api     *api.API
	limiter *visitorLimiter
}

// startRequest is the body of POST /sessions/{userID}
type startRequest struct {
	Team     string `json:"team"`
	Username string `json:"username"`
}

// resultRequest is the body of POST /sessions/{userID}/result. Score is read the same way as the $result command
type resultRequest struct {
	Score string `json:"score"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type teamsResponse struct {
	Teams []shared.Team `json:"teams"`
}

type leaderboardResponse struct {
	Edition string                   `json:"edition"`
	Entries []store.LeaderboardEntry `json:"entries"`
}
