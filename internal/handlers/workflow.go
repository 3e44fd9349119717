package handlers

import (
	"net/http"

	"github.com/benx421/homebid/internal/api"
	"github.com/benx421/homebid/internal/workflow"
)

// AwardBid handles POST /api/v1/workflows/award. A funding failure after a
// successful acceptance is a 200 carrying funding_error; it is marked no-store
// so a retry with the same idempotency key is not answered from the cache.
func (h *Handler) AwardBid(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	var body api.AwardBid
	if !bindBody(w, r, &body) {
		return
	}

	result, err := h.workflow.AwardBid(r.Context(), workflow.AwardInput{
		RequestID:         body.RequestId,
		ResponseID:        body.ResponseId,
		HomeownerID:       actorID,
		ProjectID:         body.ProjectId,
		MilestoneID:       body.MilestoneId,
		ReleaseConditions: body.ReleaseConditions,
		PaymentMethod:     body.PaymentMethod,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	out := api.AwardResult{Acceptance: toAPIAcceptResult(result.Acceptance)}
	if result.Escrow != nil {
		escrow := toAPIEscrow(result.Escrow)
		out.Escrow = &escrow
	}
	if result.FundingErr != nil {
		fundingErr := toAPIError(result.FundingErr)
		out.FundingError = &fundingErr
		w.Header().Set("Cache-Control", "no-store")
	}

	writeJSON(w, http.StatusOK, out)
}

// FundAwarded handles POST /api/v1/workflows/fund
func (h *Handler) FundAwarded(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	var body api.FundAwarded
	if !bindBody(w, r, &body) {
		return
	}

	escrow, err := h.workflow.FundAwarded(r.Context(), workflow.FundInput{
		RequestID:         body.RequestId,
		HomeownerID:       actorID,
		ProjectID:         body.ProjectId,
		MilestoneID:       body.MilestoneId,
		ReleaseConditions: body.ReleaseConditions,
		PaymentMethod:     body.PaymentMethod,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAPIEscrow(escrow))
}

// CompleteWork handles POST /api/v1/workflows/complete
func (h *Handler) CompleteWork(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	var body api.CompleteWork
	if !bindBody(w, r, &body) {
		return
	}

	result, err := h.workflow.CompleteWork(r.Context(), body.EscrowId, body.RequestId, actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	out := api.CompleteResult{Escrow: toAPIEscrow(result.Escrow)}
	if result.Request != nil {
		req := toAPIRequest(result.Request)
		out.Request = &req
	}
	if result.CompletionErr != nil {
		completionErr := toAPIError(result.CompletionErr)
		out.CompletionError = &completionErr
		w.Header().Set("Cache-Control", "no-store")
	}

	writeJSON(w, http.StatusOK, out)
}
