/* lifecycle.go
 * Contains the serve and shutdown loop shared by the HTTP server
 * Authors: Zachary Bower
 */

package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// runServer calls listen and shuts srv down when ctx is cancelled. It returns only after listen has returned and the
// shutdown watcher has exited
// Preconditions: Receives the server and the blocking listen call for it, e.g. srv.ListenAndServe
// Postconditions: Returns nil after a clean shutdown, or the error listen failed with
func runServer(ctx context.Context, srv *http.Server, listen func() error) error {
	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Println("HTTP server shutdown failed:", err)
			}
		case <-done:
		}
	}()

	err := listen()
	close(done)
	<-stopped

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
