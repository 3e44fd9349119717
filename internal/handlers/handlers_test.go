package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benx421/homebid/internal/api"
	"github.com/benx421/homebid/internal/middleware"
	"github.com/benx421/homebid/internal/service/mocks"
	wfmocks "github.com/benx421/homebid/internal/workflow/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type handlerFixture struct {
	requests *mocks.MockEstimateRequester
	bids     *mocks.MockBidAcceptor
	escrows  *mocks.MockEscrowManager
	workflow *wfmocks.MockOrchestrator
	health   *mocks.MockHealthChecker
	mux      *http.ServeMux
	actor    uuid.UUID
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		requests: mocks.NewMockEstimateRequester(t),
		bids:     mocks.NewMockBidAcceptor(t),
		escrows:  mocks.NewMockEscrowManager(t),
		workflow: wfmocks.NewMockOrchestrator(t),
		health:   mocks.NewMockHealthChecker(t),
		mux:      http.NewServeMux(),
		actor:    uuid.New(),
	}
	NewHandler(f.requests, f.bids, f.escrows, f.workflow, f.health, testLogger()).RegisterRoutes(f.mux)
	return f
}

// do sends the request through the mux as the fixture's actor
func (f *handlerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithActorID(req.Context(), f.actor))
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.Error {
	t.Helper()
	return decodeBody[api.Error](t, rec)
}
