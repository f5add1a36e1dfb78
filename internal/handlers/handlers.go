// Package handlers implements HTTP handlers for the catalog API.
package handlers

import (
	"log/slog"

	"github.com/benx421/catalog/internal/auth"
	"github.com/benx421/catalog/internal/service"
)

// Handler holds the service dependencies for all endpoints
type Handler struct {
	catalog   service.Cataloger
	discounts service.Discounter
	stats     service.Aggregator
	queries   service.Querier
	bulk      service.BulkCreator
	accounts  service.AccountManager
	resets    service.PasswordResetter
	health    service.HealthChecker
	tokens    *auth.TokenManager
	logger    *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	catalog service.Cataloger,
	discounts service.Discounter,
	stats service.Aggregator,
	queries service.Querier,
	bulk service.BulkCreator,
	accounts service.AccountManager,
	resets service.PasswordResetter,
	health service.HealthChecker,
	tokens *auth.TokenManager,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalog:   catalog,
		discounts: discounts,
		stats:     stats,
		queries:   queries,
		bulk:      bulk,
		accounts:  accounts,
		resets:    resets,
		health:    health,
		tokens:    tokens,
		logger:    logger,
	}
}
