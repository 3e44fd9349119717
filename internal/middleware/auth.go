package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/benx421/homebid/internal/api"
	"github.com/benx421/homebid/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const protectedPrefix = "/api/"

// Authenticate verifies the HS256 bearer token on every /api/ request and
// stores its subject as the actor id. Other paths pass through untouched.
func Authenticate(cfg *config.AuthConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(opts...)
	secret := []byte(cfg.JWTSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, protectedPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, api.ErrorCodeUnauthorized, "bearer token required")
				return
			}

			claims := &jwt.RegisteredClaims{}
			_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
				return secret, nil
			})
			if err != nil {
				logger.Debug("rejected bearer token", "error", err, "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, api.ErrorCodeUnauthorized, "invalid or expired token")
				return
			}

			actorID, err := uuid.Parse(claims.Subject)
			if err != nil || actorID == uuid.Nil {
				writeError(w, http.StatusUnauthorized, api.ErrorCodeUnauthorized, "token subject is not a user id")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActorID(r.Context(), actorID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// IssueToken signs a token for actorID valid for ttl
func IssueToken(cfg *config.AuthConfig, actorID uuid.UUID, ttl time.Duration) (string, error) {
	if actorID == uuid.Nil {
		return "", errors.New("actor id is required")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   actorID.String(),
		Issuer:    cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
}
