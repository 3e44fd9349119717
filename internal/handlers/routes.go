package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/homebid/internal/api"
	"github.com/benx421/homebid/internal/config"
	"github.com/benx421/homebid/internal/db"
	"github.com/benx421/homebid/internal/middleware"
	"github.com/benx421/homebid/internal/notify"
	"github.com/benx421/homebid/internal/repository"
	"github.com/benx421/homebid/internal/service"
	"github.com/benx421/homebid/internal/workflow"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	notifier notify.Notifier,
	logger *slog.Logger,
) (http.Handler, error) {
	isolation, err := cfg.App.Isolation()
	if err != nil {
		return nil, err
	}

	requestService := service.NewEstimateRequestService(database, isolation, notifier, logger)
	bidService := service.NewBidAcceptanceService(database, isolation, notifier, logger)
	escrowService := service.NewEscrowService(database, isolation, cfg.App.Currency, notifier, logger)
	coordinator := workflow.NewCoordinator(requestService, bidService, escrowService, logger)

	handler := NewHandler(requestService, bidService, escrowService, coordinator, database, logger)
	idempotencyRepo := repository.NewIdempotencyRepository(database, cfg.App.IdempotencyTTL)

	return Chain(handler, idempotencyRepo, &cfg.Auth, logger)
}

// Chain wraps the handler's routes in the middleware stack. From the outside
// in: panic recovery, request id, request logging, authentication, OpenAPI
// validation and the idempotency cache.
func Chain(
	handler *Handler,
	idempotencyRepo repository.IdempotencyRepository,
	auth *config.AuthConfig,
	logger *slog.Logger,
) (http.Handler, error) {
	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	handler.RegisterRoutes(mux)

	doc, err := api.NewSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := middleware.ValidateRequests(doc, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build request validator: %w", err)
	}

	var finalHandler http.Handler = mux
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)
	finalHandler = validate(finalHandler)
	finalHandler = middleware.Authenticate(auth, logger)(finalHandler)
	finalHandler = middleware.RequestLogger(logger)(finalHandler)
	finalHandler = middleware.RequestID()(finalHandler)
	finalHandler = middleware.Recover(logger)(finalHandler)

	return finalHandler, nil
}
