package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/benx421/homebid/internal/api"
	"github.com/benx421/homebid/internal/models"
	"github.com/benx421/homebid/internal/repository"
)

const idempotencyKeyHeader = "Idempotency-Key"

// idempotentPaths matches the POST operations that move money or award work.
// Replaying one of them must not repeat its side effects.
var idempotentPaths = []*regexp.Regexp{
	regexp.MustCompile(`^/api/v1/escrows$`),
	regexp.MustCompile(`^/api/v1/escrows/[^/]+/(release|refund)$`),
	regexp.MustCompile(`^/api/v1/estimate-requests/[^/]+/responses/[^/]+/accept$`),
	regexp.MustCompile(`^/api/v1/workflows/(award|fund|complete)$`),
}

type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func newResponseCapture(w http.ResponseWriter) *responseCapture {
	return &responseCapture{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // Default if WriteHeader not called
	}
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b) // Capture for caching
	return rc.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a previously successful request
// with the same key, caller and path. It must run after Authenticate; keys are
// scoped to the caller so two users cannot collide on the same key.
//
// The key is reserved before the handler runs, so a concurrent request with
// the same key gets 409 instead of repeating the side effects. Responses sent
// with Cache-Control: no-store are not replayed.
func Idempotency(repo repository.IdempotencyRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestPath := normalizeRequestPath(r.URL.Path)
			if !requiresIdempotency(r.Method, requestPath) {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := strings.TrimSpace(r.Header.Get(idempotencyKeyHeader))
			if idempotencyKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			actorID, ok := ActorID(ctx)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			scopedKey := actorID.String() + ":" + idempotencyKey

			cached, err := repo.Get(ctx, scopedKey, requestPath)
			if err != nil {
				logger.Error("failed to check idempotency cache", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if cached != nil {
				if cached.InFlight() {
					writeInProgress(w)
					return
				}
				logger.Debug("returning cached idempotent response",
					"key", idempotencyKey,
					"path", requestPath,
					"status", cached.ResponseStatus,
				)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Idempotent-Replayed", "true")
				w.WriteHeader(cached.ResponseStatus)
				//nolint:errcheck // Best effort response writing
				w.Write([]byte(cached.ResponseBody))
				return
			}

			reserved, err := repo.Reserve(ctx, scopedKey, requestPath)
			if err != nil {
				logger.Error("failed to reserve idempotency key", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !reserved {
				writeInProgress(w)
				return
			}

			capture := newResponseCapture(w)
			next.ServeHTTP(capture, r)

			if !shouldCacheResponse(capture.statusCode, capture.Header()) {
				if err := repo.Release(ctx, scopedKey, requestPath); err != nil {
					logger.Error("failed to release idempotency key",
						"error", err,
						"key", idempotencyKey,
					)
				}
				return
			}

			idemKey := &models.IdempotencyKey{
				Key:            scopedKey,
				RequestPath:    requestPath,
				ResponseStatus: capture.statusCode,
				ResponseBody:   capture.body.String(),
				CreatedAt:      time.Now(),
			}
			if err := repo.Store(ctx, idemKey); err != nil {
				logger.Error("failed to store idempotency key",
					"error", err,
					"key", idempotencyKey,
				)
			}
		})
	}
}

func writeInProgress(w http.ResponseWriter) {
	writeError(w, http.StatusConflict, api.ErrorCodeInProgress, "a request with this idempotency key is still being processed")
}

func requiresIdempotency(method, path string) bool {
	if method != http.MethodPost {
		return false
	}

	for _, pattern := range idempotentPaths {
		if pattern.MatchString(path) {
			return true
		}
	}
	return false
}

func normalizeRequestPath(urlPath string) string {
	return strings.TrimSuffix(urlPath, "/")
}

func shouldCacheResponse(statusCode int, header http.Header) bool {
	if strings.Contains(header.Get("Cache-Control"), "no-store") {
		return false
	}
	return statusCode >= 200 && statusCode < 300
}
