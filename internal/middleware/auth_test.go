package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benx421/homebid/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: "test-secret-with-enough-length-000",
		Issuer:    "homebid-test",
	}
}

// actorEcho responds 200 with the actor id found in the request context
func actorEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID, ok := ActorID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(actorID.String())) //nolint:errcheck // test helper
	})
}

func authRequest(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthenticate_ValidToken(t *testing.T) {
	cfg := testAuthConfig()
	actor := uuid.New()
	token, err := IssueToken(cfg, actor, time.Hour)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	Authenticate(cfg, testLogger())(actorEcho()).ServeHTTP(rec, authRequest("/api/v1/escrows/x", token))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, actor.String(), rec.Body.String())
}

func TestAuthenticate_Rejections(t *testing.T) {
	cfg := testAuthConfig()
	actor := uuid.New()

	sign := func(method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Subject:   actor.String(),
			Issuer:    cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
	}

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := valid()
	noExpiry.ExpiresAt = nil

	wrongIssuer := valid()
	wrongIssuer.Issuer = "someone-else"

	badSubject := valid()
	badSubject.Subject = "not-a-uuid"

	nilSubject := valid()
	nilSubject.Subject = uuid.Nil.String()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + sign(jwt.SigningMethodHS256, []byte("other-secret"), valid())},
		{"wrong algorithm", "Bearer " + sign(jwt.SigningMethodHS512, []byte(cfg.JWTSecret), valid())},
		{"expired", "Bearer " + sign(jwt.SigningMethodHS256, []byte(cfg.JWTSecret), expired)},
		{"no expiry", "Bearer " + sign(jwt.SigningMethodHS256, []byte(cfg.JWTSecret), noExpiry)},
		{"wrong issuer", "Bearer " + sign(jwt.SigningMethodHS256, []byte(cfg.JWTSecret), wrongIssuer)},
		{"subject not a uuid", "Bearer " + sign(jwt.SigningMethodHS256, []byte(cfg.JWTSecret), badSubject)},
		{"nil subject", "Bearer " + sign(jwt.SigningMethodHS256, []byte(cfg.JWTSecret), nilSubject)},
	}

	handler := Authenticate(cfg, testLogger())(actorEcho())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/escrows/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error":"unauthorized"`)
		})
	}
}

func TestAuthenticate_PublicPathsBypass(t *testing.T) {
	handler := Authenticate(testAuthConfig(), testLogger())(actorEcho())

	for _, path := range []string{"/health", "/docs", "/docs/openapi", "/"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authRequest(path, ""))
		assert.Equal(t, http.StatusTeapot, rec.Code, "path %s should reach the handler without an actor", path)
	}
}

func TestAuthenticate_IssuerOptional(t *testing.T) {
	cfg := &config.AuthConfig{JWTSecret: "test-secret-with-enough-length-000"}
	actor := uuid.New()
	token, err := IssueToken(cfg, actor, time.Hour)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	Authenticate(cfg, testLogger())(actorEcho()).ServeHTTP(rec, authRequest("/api/v1/escrows/x", token))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIssueToken_RejectsNilActor(t *testing.T) {
	_, err := IssueToken(testAuthConfig(), uuid.Nil, time.Hour)
	assert.Error(t, err)
}
