package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/homebid/internal/api"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// ValidateRequests checks every request that matches an operation of doc
// against its parameters and body schema. Requests that match no operation are
// left to the mux. Authentication is handled by Authenticate, not here.
func ValidateRequests(doc *openapi3.T, logger *slog.Logger) (func(http.Handler) http.Handler, error) {
	// Match on path only; the host the server runs on is not part of the contract.
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logger.Debug("request failed validation", "path", r.URL.Path, "error", err)
				writeError(w, http.StatusBadRequest, api.ErrorCodeInvalidInput, validationMessage(err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return fmt.Sprintf("invalid %s parameter %q", reqErr.Parameter.In, reqErr.Parameter.Name)
		}
		var schemaErr *openapi3.SchemaError
		if errors.As(reqErr.Err, &schemaErr) {
			return "invalid request body: " + schemaErr.Reason
		}
		return "invalid request body"
	}
	return "invalid request"
}
