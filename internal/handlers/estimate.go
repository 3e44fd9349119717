package handlers

import (
	"net/http"

	"github.com/benx421/homebid/internal/api"
	"github.com/benx421/homebid/internal/service"
)

// CreateEstimateRequest handles POST /api/v1/estimate-requests
func (h *Handler) CreateEstimateRequest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	var body api.CreateEstimateRequest
	if !bindBody(w, r, &body) {
		return
	}

	req, err := h.requests.CreateRequest(r.Context(), service.CreateRequestInput{
		HomeownerID:    actorID,
		ServiceID:      body.ServiceId,
		PropertyID:     body.PropertyId,
		BudgetMinCents: body.BudgetMinCents,
		BudgetMaxCents: body.BudgetMaxCents,
		Timeline:       body.Timeline,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAPIRequest(req))
}

// GetEstimateRequest handles GET /api/v1/estimate-requests/{requestId}
func (h *Handler) GetEstimateRequest(w http.ResponseWriter, r *http.Request) {
	if _, ok := actor(w, r); !ok {
		return
	}
	ids, ok := pathIDs(w, r, "requestId")
	if !ok {
		return
	}

	req, err := h.requests.GetRequest(r.Context(), ids[0])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAPIRequest(req))
}

// CancelEstimateRequest handles POST /api/v1/estimate-requests/{requestId}/cancel
func (h *Handler) CancelEstimateRequest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	ids, ok := pathIDs(w, r, "requestId")
	if !ok {
		return
	}

	req, err := h.requests.CancelRequest(r.Context(), ids[0], actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAPIRequest(req))
}

// CompleteEstimateRequest handles POST /api/v1/estimate-requests/{requestId}/complete
func (h *Handler) CompleteEstimateRequest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	ids, ok := pathIDs(w, r, "requestId")
	if !ok {
		return
	}

	req, err := h.requests.CompleteRequest(r.Context(), ids[0], actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAPIRequest(req))
}

// ListEstimateResponses handles GET /api/v1/estimate-requests/{requestId}/responses
func (h *Handler) ListEstimateResponses(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	ids, ok := pathIDs(w, r, "requestId")
	if !ok {
		return
	}

	responses, err := h.requests.ListResponses(r.Context(), ids[0], actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.EstimateResponseList{Data: toAPIResponses(responses)})
}

// SubmitEstimateResponse handles POST /api/v1/estimate-requests/{requestId}/responses
func (h *Handler) SubmitEstimateResponse(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	ids, ok := pathIDs(w, r, "requestId")
	if !ok {
		return
	}
	var body api.SubmitEstimateResponse
	if !bindBody(w, r, &body) {
		return
	}

	resp, err := h.requests.SubmitResponse(r.Context(), service.SubmitResponseInput{
		RequestID:  ids[0],
		ProviderID: actorID,
		PriceCents: body.PriceCents,
		Timeline:   body.Timeline,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAPIResponse(resp))
}

// AcceptEstimateResponse handles POST /api/v1/estimate-requests/{requestId}/responses/{responseId}/accept
func (h *Handler) AcceptEstimateResponse(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	ids, ok := pathIDs(w, r, "requestId", "responseId")
	if !ok {
		return
	}

	result, err := h.bids.AcceptResponse(r.Context(), ids[0], ids[1], actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAPIAcceptResult(result))
}

// DeclineEstimateResponse handles POST /api/v1/estimate-requests/{requestId}/responses/{responseId}/decline
func (h *Handler) DeclineEstimateResponse(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	ids, ok := pathIDs(w, r, "requestId", "responseId")
	if !ok {
		return
	}

	resp, err := h.bids.DeclineResponse(r.Context(), ids[0], ids[1], actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAPIResponse(resp))
}
