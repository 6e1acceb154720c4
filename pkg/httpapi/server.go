// Package httpapi exposes match/replace over HTTP, generalized from the
// teacher's pkg/handler package (which served files and reverse-proxied
// requests) to serve pattern matches and rewrites instead.
package httpapi

import (
	"github.com/go-chi/chi/v5"
)

// Config holds the knobs for the HTTP API. Unlike the teacher's
// Configuration, there is no directory tree to serve, so this stays small.
type Config struct {
	Debug bool
}

// HandlerState bundles per-request dependencies, mirroring the teacher's
// HandlerState / NewHandler / AttachRoutes shape in pkg/handler/handler.go.
type HandlerState struct {
	Config
	logger Logger
}

// NewHandler constructs a HandlerState ready to have its routes attached.
func NewHandler(config Config) HandlerState {
	return HandlerState{
		Config: config,
		logger: NewLogger(config.Debug),
	}
}

// AttachRoutes wires the match/replace endpoints onto router.
func (state HandlerState) AttachRoutes(router chi.Router) {
	router.Post("/v1/match", state.handleMatch)
	router.Post("/v1/replace", state.handleReplace)
}
