// Package middleware provides HTTP middleware components for the HomeBid API.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/benx421/homebid/internal/api"
	"github.com/google/uuid"
)

type contextKey int

const (
	actorIDKey contextKey = iota
	requestIDKey
)

// WithActorID returns a copy of ctx carrying the authenticated user id
func WithActorID(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorIDKey, actorID)
}

// ActorID returns the authenticated user id stored by Authenticate
func ActorID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// RequestIDFrom returns the request id stored by RequestID
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func writeError(w http.ResponseWriter, status int, code api.ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best effort response writing
	json.NewEncoder(w).Encode(api.Error{Error: code, Message: message})
}
