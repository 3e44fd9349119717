package handlers

import (
	"net/http"

	"github.com/benx421/homebid/internal/api"
	"github.com/benx421/homebid/internal/service"
)

// FundEscrow handles POST /api/v1/escrows
func (h *Handler) FundEscrow(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	var body api.FundEscrow
	if !bindBody(w, r, &body) {
		return
	}

	escrow, err := h.escrows.FundEscrow(r.Context(), service.FundEscrowInput{
		ProjectID:         body.ProjectId,
		MilestoneID:       body.MilestoneId,
		AmountCents:       body.AmountCents,
		ReleaseConditions: body.ReleaseConditions,
		PayerID:           actorID,
		RecipientID:       body.RecipientId,
		PaymentMethod:     body.PaymentMethod,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAPIEscrow(escrow))
}

// GetEscrow handles GET /api/v1/escrows/{escrowId}
func (h *Handler) GetEscrow(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	ids, ok := pathIDs(w, r, "escrowId")
	if !ok {
		return
	}

	escrow, err := h.escrows.GetEscrow(r.Context(), ids[0], actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAPIEscrow(escrow))
}

// ReleaseEscrow handles POST /api/v1/escrows/{escrowId}/release
func (h *Handler) ReleaseEscrow(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	ids, ok := pathIDs(w, r, "escrowId")
	if !ok {
		return
	}

	escrow, err := h.escrows.ReleaseEscrow(r.Context(), ids[0], actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAPIEscrow(escrow))
}

// RefundEscrow handles POST /api/v1/escrows/{escrowId}/refund
func (h *Handler) RefundEscrow(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	ids, ok := pathIDs(w, r, "escrowId")
	if !ok {
		return
	}
	var body api.RefundEscrow
	if !bindBody(w, r, &body) {
		return
	}

	escrow, err := h.escrows.RefundEscrow(r.Context(), ids[0], actorID, body.Reason)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAPIEscrow(escrow))
}

// ListProjectEscrows handles GET /api/v1/projects/{projectId}/escrows
func (h *Handler) ListProjectEscrows(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	ids, ok := pathIDs(w, r, "projectId")
	if !ok {
		return
	}

	escrows, err := h.escrows.ListProjectEscrows(r.Context(), ids[0], actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.EscrowList{Data: toAPIEscrows(escrows)})
}
