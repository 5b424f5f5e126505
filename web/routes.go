/* routes.go
 * Contains the route table for the web server
 * Authors: Zachary Bower
 */

package web

import "net/http"

// NewServer creates a Server from the configuration
func NewServer(cfg Config) *Server {
	return &Server{
		api:     cfg.API,
		limiter: newVisitorLimiter(cfg.RateLimit, cfg.Burst),
	}
}

// Routes binds handler methods that have access to s.api and wraps them in the rate limiter
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /teams", s.TeamsHandler)
	mux.HandleFunc("GET /leaderboard", s.LeaderboardHandler)
	mux.HandleFunc("POST /sessions/{userID}", s.StartSessionHandler)
	mux.HandleFunc("GET /sessions/{userID}", s.GetSessionHandler)
	mux.HandleFunc("POST /sessions/{userID}/result", s.SubmitResultHandler)
	mux.HandleFunc("POST /sessions/{userID}/advance", s.AdvanceHandler)
	mux.HandleFunc("POST /sessions/{userID}/restart", s.RestartHandler)

	return s.limiter.RateLimitMiddleware(mux)
}
