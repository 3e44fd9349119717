package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/benx421/homebid/internal/models"
	"github.com/benx421/homebid/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body)) //nolint:errcheck // test helper
	})
}

var testActor = uuid.MustParse("6f1c1f0e-8d4b-4c1e-9f62-2b7d0a3c5e11")

func actorRequest(method, path, key string, actor uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	return req.WithContext(WithActorID(req.Context(), actor))
}

func scoped(actor uuid.UUID, key string) string {
	return actor.String() + ":" + key
}

func TestIdempotency_GETRequestsBypassed(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, actorRequest(http.MethodGet, "/api/v1/escrows/abc", "test-key", testActor))

	assert.True(t, handlerCalled, "handler should be called for GET requests")
	repo.AssertNotCalled(t, "Get")
	repo.AssertNotCalled(t, "Store")
}

func TestIdempotency_NonIdempotentPathBypassed(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, actorRequest(http.MethodPost, "/api/v1/estimate-requests", "test-key", testActor))

	assert.True(t, handlerCalled, "handler should be called for non-idempotent paths")
	repo.AssertNotCalled(t, "Get")
	repo.AssertNotCalled(t, "Store")
}

func TestIdempotency_MissingKeyPassesThrough(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, actorRequest(http.MethodPost, "/api/v1/escrows", "", testActor))

	assert.True(t, handlerCalled, "handler should be called without idempotency key")
	repo.AssertNotCalled(t, "Get")
	repo.AssertNotCalled(t, "Store")
}

func TestIdempotency_AnonymousRequestPassesThrough(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/escrows", nil)
	req.Header.Set("Idempotency-Key", "test-key")
	rec := httptest.NewRecorder()
	middleware(testHandler(http.StatusCreated, `{}`)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	repo.AssertNotCalled(t, "Get")
}

func TestIdempotency_FirstRequestCached(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, scoped(testActor, "unique-key-123"), "/api/v1/escrows").Return(nil, nil)
	repo.On("Reserve", mock.Anything, scoped(testActor, "unique-key-123"), "/api/v1/escrows").Return(true, nil)
	repo.On("Store", mock.Anything, mock.MatchedBy(func(k *models.IdempotencyKey) bool {
		return k.Key == scoped(testActor, "unique-key-123") &&
			k.RequestPath == "/api/v1/escrows" &&
			k.ResponseStatus == http.StatusCreated &&
			k.ResponseBody == `{"status":"held"}`
	})).Return(nil)

	middleware := Idempotency(repo, testLogger())
	handler := testHandler(http.StatusCreated, `{"status":"held"}`)

	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, actorRequest(http.MethodPost, "/api/v1/escrows", "unique-key-123", testActor))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"status":"held"}`, rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Idempotent-Replayed"), "first request should not have replay header")
}

func TestIdempotency_SecondRequestReturnsCached(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	path := "/api/v1/escrows/5b0d6a8e-2f5c-4b43-a3a8-0f4f3e8f2d9a/release"

	cached := &models.IdempotencyKey{
		Key:            scoped(testActor, "duplicate-key"),
		RequestPath:    path,
		ResponseStatus: 200,
		ResponseBody:   `{"status":"released"}`,
	}
	repo.On("Get", mock.Anything, scoped(testActor, "duplicate-key"), path).Return(cached, nil)

	middleware := Idempotency(repo, testLogger())

	callCount := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		w.WriteHeader(http.StatusConflict)
	})

	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, actorRequest(http.MethodPost, path, "duplicate-key", testActor))

	assert.Equal(t, 0, callCount, "handler should not be called when cached")
	assert.Equal(t, "true", rec.Header().Get("X-Idempotent-Replayed"))
	assert.Equal(t, `{"status":"released"}`, rec.Body.String())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdempotency_SameKeyDifferentActorsAreSeparate(t *testing.T) {
	other := uuid.New()
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, mock.Anything, "/api/v1/workflows/award").Return(nil, nil)
	repo.On("Reserve", mock.Anything, mock.Anything, "/api/v1/workflows/award").Return(true, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(nil)

	middleware := Idempotency(repo, testLogger())
	handler := testHandler(http.StatusOK, `{}`)

	middleware(handler).ServeHTTP(httptest.NewRecorder(), actorRequest(http.MethodPost, "/api/v1/workflows/award", "shared-key", testActor))
	middleware(handler).ServeHTTP(httptest.NewRecorder(), actorRequest(http.MethodPost, "/api/v1/workflows/award", "shared-key", other))

	repo.AssertCalled(t, "Get", mock.Anything, scoped(testActor, "shared-key"), "/api/v1/workflows/award")
	repo.AssertCalled(t, "Get", mock.Anything, scoped(other, "shared-key"), "/api/v1/workflows/award")
}

func TestIdempotency_SameKeyDifferentPathsAreSeparate(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, scoped(testActor, "shared-key"), mock.Anything).Return(nil, nil)
	repo.On("Reserve", mock.Anything, scoped(testActor, "shared-key"), mock.Anything).Return(true, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(nil)

	middleware := Idempotency(repo, testLogger())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`)) //nolint:errcheck // test helper
	})

	rec1 := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec1, actorRequest(http.MethodPost, "/api/v1/escrows/e1/release", "shared-key", testActor))

	rec2 := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec2, actorRequest(http.MethodPost, "/api/v1/escrows/e1/refund/", "shared-key", testActor))

	assert.Contains(t, rec1.Body.String(), "release")
	assert.Contains(t, rec2.Body.String(), "refund")

	repo.AssertCalled(t, "Get", mock.Anything, scoped(testActor, "shared-key"), "/api/v1/escrows/e1/release")
	repo.AssertCalled(t, "Get", mock.Anything, scoped(testActor, "shared-key"), "/api/v1/escrows/e1/refund")
}

func TestIdempotency_ErrorResponsesNotCached(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusConflict, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			repo := mocks.NewMockIdempotencyRepository(t)
			repo.On("Get", mock.Anything, scoped(testActor, "error-key"), "/api/v1/escrows").Return(nil, nil)
			repo.On("Reserve", mock.Anything, scoped(testActor, "error-key"), "/api/v1/escrows").Return(true, nil)
			repo.On("Release", mock.Anything, scoped(testActor, "error-key"), "/api/v1/escrows").Return(nil).Once()

			middleware := Idempotency(repo, testLogger())

			rec := httptest.NewRecorder()
			middleware(testHandler(status, `{"error":"x"}`)).ServeHTTP(rec, actorRequest(http.MethodPost, "/api/v1/escrows", "error-key", testActor))

			assert.Equal(t, status, rec.Code)
			repo.AssertNotCalled(t, "Store")
		})
	}
}

func TestIdempotency_RepoGetErrorFailsOpen(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, scoped(testActor, "test-key"), "/api/v1/escrows").Return(nil, errors.New("database connection failed"))

	middleware := Idempotency(repo, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, actorRequest(http.MethodPost, "/api/v1/escrows", "test-key", testActor))

	assert.True(t, handlerCalled, "handler should be called on repo.Get error (fail open)")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdempotency_RepoStoreErrorDoesNotAffectResponse(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, scoped(testActor, "test-key"), "/api/v1/escrows").Return(nil, nil)
	repo.On("Reserve", mock.Anything, scoped(testActor, "test-key"), "/api/v1/escrows").Return(true, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(errors.New("failed to store"))

	middleware := Idempotency(repo, testLogger())
	handler := testHandler(http.StatusCreated, `{"status":"held"}`)

	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, actorRequest(http.MethodPost, "/api/v1/escrows", "test-key", testActor))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"status":"held"}`, rec.Body.String())
}

func TestIdempotency_InFlightKeyRejected(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, scoped(testActor, "busy-key"), "/api/v1/escrows").
		Return(&models.IdempotencyKey{Key: scoped(testActor, "busy-key"), RequestPath: "/api/v1/escrows"}, nil)

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, actorRequest(http.MethodPost, "/api/v1/escrows", "busy-key", testActor))

	assert.False(t, handlerCalled, "handler must not run while the key is held")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "request_in_progress")
	repo.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything)
}

func TestIdempotency_LostReservationRejected(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, scoped(testActor, "race-key"), "/api/v1/escrows").Return(nil, nil)
	repo.On("Reserve", mock.Anything, scoped(testActor, "race-key"), "/api/v1/escrows").Return(false, nil)

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, actorRequest(http.MethodPost, "/api/v1/escrows", "race-key", testActor))

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusConflict, rec.Code)
	repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestIdempotency_ConcurrentSameKeyRunsHandlerOnce(t *testing.T) {
	var mu sync.Mutex
	reserved := false
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, scoped(testActor, "double-click"), "/api/v1/escrows").Return(nil, nil)
	repo.On("Reserve", mock.Anything, scoped(testActor, "double-click"), "/api/v1/escrows").
		Return(func(context.Context, string, string) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if reserved {
				return false, nil
			}
			reserved = true
			return true, nil
		})
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(nil).Once()

	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusCreated)
	})
	middleware := Idempotency(repo, testLogger())

	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := httptest.NewRecorder()
			middleware(handler).ServeHTTP(rec, actorRequest(http.MethodPost, "/api/v1/escrows", "double-click", testActor))
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "only one request may run the handler")
	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, codes)
}

func TestIdempotency_ReserveErrorFailsOpen(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, scoped(testActor, "test-key"), "/api/v1/escrows").Return(nil, nil)
	repo.On("Reserve", mock.Anything, scoped(testActor, "test-key"), "/api/v1/escrows").Return(false, errors.New("database connection failed"))

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(testHandler(http.StatusCreated, `{}`)).ServeHTTP(rec, actorRequest(http.MethodPost, "/api/v1/escrows", "test-key", testActor))

	assert.Equal(t, http.StatusCreated, rec.Code)
	repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestIdempotency_NoStoreResponsesNotCached(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, scoped(testActor, "award-key"), "/api/v1/workflows/award").Return(nil, nil)
	repo.On("Reserve", mock.Anything, scoped(testActor, "award-key"), "/api/v1/workflows/award").Return(true, nil)
	repo.On("Release", mock.Anything, scoped(testActor, "award-key"), "/api/v1/workflows/award").Return(nil).Once()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"funding_error":{}}`)) //nolint:errcheck // test helper
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, actorRequest(http.MethodPost, "/api/v1/workflows/award", "award-key", testActor))

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestRequiresIdempotency(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   bool
	}{
		{http.MethodPost, "/api/v1/escrows", true},
		{http.MethodPost, "/api/v1/escrows/abc/release", true},
		{http.MethodPost, "/api/v1/escrows/abc/refund", true},
		{http.MethodPost, "/api/v1/estimate-requests/r/responses/s/accept", true},
		{http.MethodPost, "/api/v1/workflows/award", true},
		{http.MethodPost, "/api/v1/workflows/complete", true},
		{http.MethodPost, "/api/v1/estimate-requests/r/responses/s/decline", false},
		{http.MethodPost, "/api/v1/escrows/abc", false},
		{http.MethodGet, "/api/v1/escrows", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, requiresIdempotency(tt.method, tt.path))
		})
	}
}
