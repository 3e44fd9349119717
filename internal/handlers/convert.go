package handlers

import (
	"github.com/benx421/homebid/internal/api"
	"github.com/benx421/homebid/internal/models"
	"github.com/benx421/homebid/internal/service"
)

func toAPIRequest(req *models.EstimateRequest) api.EstimateRequest {
	return api.EstimateRequest{
		Id:             req.ID,
		HomeownerId:    req.HomeownerID,
		ServiceId:      req.ServiceID,
		PropertyId:     req.PropertyID,
		Status:         string(req.Status),
		BudgetMinCents: req.BudgetMinCents,
		BudgetMaxCents: req.BudgetMaxCents,
		Timeline:       req.Timeline,
		CreatedAt:      req.CreatedAt,
		UpdatedAt:      req.UpdatedAt,
	}
}

func toAPIResponse(resp *models.EstimateResponse) api.EstimateResponse {
	return api.EstimateResponse{
		Id:         resp.ID,
		RequestId:  resp.RequestID,
		ProviderId: resp.ProviderID,
		PriceCents: resp.PriceCents,
		Timeline:   resp.Timeline,
		Status:     string(resp.Status),
		CreatedAt:  resp.CreatedAt,
		UpdatedAt:  resp.UpdatedAt,
	}
}

func toAPIResponses(responses []models.EstimateResponse) []api.EstimateResponse {
	out := make([]api.EstimateResponse, 0, len(responses))
	for i := range responses {
		out = append(out, toAPIResponse(&responses[i]))
	}
	return out
}

func toAPIAcceptResult(result *service.AcceptResult) api.AcceptResult {
	return api.AcceptResult{
		Request:  toAPIRequest(result.Request),
		Accepted: toAPIResponse(result.Accepted),
		Declined: toAPIResponses(result.Declined),
	}
}

func toAPIEscrow(escrow *models.EscrowPayment) api.Escrow {
	out := api.Escrow{
		Id:                escrow.ID,
		TransactionId:     escrow.TransactionID,
		ProjectId:         escrow.ProjectID,
		MilestoneId:       escrow.MilestoneID,
		AmountCents:       escrow.AmountCents,
		ReleaseConditions: escrow.ReleaseConditions,
		Status:            string(escrow.Status),
		ReleaseDate:       escrow.ReleaseDate,
		RefundReason:      escrow.RefundReason,
		CreatedAt:         escrow.CreatedAt,
		UpdatedAt:         escrow.UpdatedAt,
	}
	if txn := escrow.Transaction; txn != nil {
		out.Transaction = &api.Transaction{
			Id:              txn.ID,
			PayerId:         txn.PayerID,
			RecipientId:     txn.RecipientID,
			AmountCents:     txn.AmountCents,
			Currency:        txn.Currency,
			PaymentMethod:   txn.PaymentMethod,
			Type:            string(txn.Type),
			Status:          string(txn.Status),
			TransactionDate: txn.TransactionDate,
		}
	}
	return out
}

func toAPIEscrows(escrows []models.EscrowPayment) []api.Escrow {
	out := make([]api.Escrow, 0, len(escrows))
	for i := range escrows {
		out = append(out, toAPIEscrow(&escrows[i]))
	}
	return out
}
