package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/benx421/homebid/internal/api"
	"github.com/benx421/homebid/internal/middleware"
	"github.com/benx421/homebid/internal/service"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best effort response writing
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code api.ErrorCode, message string) {
	writeJSON(w, status, api.Error{Error: code, Message: message})
}

// statusForKind maps an error kind to its HTTP status
func statusForKind(kind service.ErrorKind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindStateConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// toAPIError converts a service error to a response body. Persistence errors
// are reported without detail.
func toAPIError(err error) api.Error {
	var svcErr *service.ServiceError
	if !errors.As(err, &svcErr) || service.KindOf(err) == service.KindPersistence {
		return api.Error{Error: api.ErrorCodeInternalError, Message: "internal error"}
	}
	return api.Error{Error: api.ErrorCode(svcErr.Code), Message: svcErr.Message}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)
	if kind == service.KindPersistence {
		h.logger.ErrorContext(r.Context(), "unexpected service error",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
	}
	writeJSON(w, statusForKind(kind), toAPIError(err))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// pathUUID binds a uuid path parameter the way the generated server wrappers do
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return id, nil
}

// actor returns the authenticated caller or writes 401
func actor(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.ActorID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, api.ErrorCodeUnauthorized, "bearer token required")
	}
	return id, ok
}

// pathIDs binds the named uuid path parameters in order or writes 400
func pathIDs(w http.ResponseWriter, r *http.Request, names ...string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, len(names))
	for i, name := range names {
		id, err := pathUUID(r, name)
		if err != nil {
			writeError(w, http.StatusBadRequest, api.ErrorCodeInvalidInput, err.Error())
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}

func bindBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := decodeJSON(w, r, dest); err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorCodeInvalidInput, err.Error())
		return false
	}
	return true
}
