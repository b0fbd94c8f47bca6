package server

import (
	"net/http"
	"time"
)

// NewMux builds the HTTP routing for the calculator service with per-client
// rate limiting on the solve endpoint.
func NewMux(handler *CalculateHandler, limiter *RateLimiter) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/v1/calculate", RateLimitMiddleware(limiter, handler))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// New builds the HTTP server for the given mux with sane timeouts.
func New(addr string, mux *http.ServeMux) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
