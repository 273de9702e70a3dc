package middleware

import (
	"math/rand/v2"
	"net/http"
	"time"
)

const (
	minSimulatedDelay = 200 * time.Millisecond
	maxSimulatedDelay = 1400 * time.Millisecond
)

// SimulatedLatency delays every request by a random interval to mimic
// production round-trips during frontend development. Never enabled
// outside development configurations.
func SimulatedLatency() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			delay := minSimulatedDelay + rand.N(maxSimulatedDelay-minSimulatedDelay)
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
