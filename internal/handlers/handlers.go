// Package handlers implements HTTP handlers for the HomeBid API.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/homebid/internal/service"
	"github.com/benx421/homebid/internal/workflow"
)

// Handler serves every operation of the HomeBid API
type Handler struct {
	requests      service.EstimateRequester
	bids          service.BidAcceptor
	escrows       service.EscrowManager
	workflow      workflow.Orchestrator
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	requests service.EstimateRequester,
	bids service.BidAcceptor,
	escrows service.EscrowManager,
	orchestrator workflow.Orchestrator,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		requests:      requests,
		bids:          bids,
		escrows:       escrows,
		workflow:      orchestrator,
		healthChecker: healthChecker,
		logger:        logger,
	}
}

// RegisterRoutes registers every API operation on mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.GetHealth)

	mux.HandleFunc("POST /api/v1/estimate-requests", h.CreateEstimateRequest)
	mux.HandleFunc("GET /api/v1/estimate-requests/{requestId}", h.GetEstimateRequest)
	mux.HandleFunc("POST /api/v1/estimate-requests/{requestId}/cancel", h.CancelEstimateRequest)
	mux.HandleFunc("POST /api/v1/estimate-requests/{requestId}/complete", h.CompleteEstimateRequest)
	mux.HandleFunc("GET /api/v1/estimate-requests/{requestId}/responses", h.ListEstimateResponses)
	mux.HandleFunc("POST /api/v1/estimate-requests/{requestId}/responses", h.SubmitEstimateResponse)
	mux.HandleFunc("POST /api/v1/estimate-requests/{requestId}/responses/{responseId}/accept", h.AcceptEstimateResponse)
	mux.HandleFunc("POST /api/v1/estimate-requests/{requestId}/responses/{responseId}/decline", h.DeclineEstimateResponse)

	mux.HandleFunc("POST /api/v1/escrows", h.FundEscrow)
	mux.HandleFunc("GET /api/v1/escrows/{escrowId}", h.GetEscrow)
	mux.HandleFunc("POST /api/v1/escrows/{escrowId}/release", h.ReleaseEscrow)
	mux.HandleFunc("POST /api/v1/escrows/{escrowId}/refund", h.RefundEscrow)
	mux.HandleFunc("GET /api/v1/projects/{projectId}/escrows", h.ListProjectEscrows)

	mux.HandleFunc("POST /api/v1/workflows/award", h.AwardBid)
	mux.HandleFunc("POST /api/v1/workflows/fund", h.FundAwarded)
	mux.HandleFunc("POST /api/v1/workflows/complete", h.CompleteWork)
}
