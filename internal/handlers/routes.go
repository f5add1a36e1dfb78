package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/catalog/internal/api"
	"github.com/benx421/catalog/internal/auth"
	"github.com/benx421/catalog/internal/config"
	"github.com/benx421/catalog/internal/db"
	"github.com/benx421/catalog/internal/mail"
	"github.com/benx421/catalog/internal/middleware"
	"github.com/benx421/catalog/internal/repository"
	"github.com/benx421/catalog/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	productRepo := repository.NewProductRepository(database)
	userRepo := repository.NewUserRepository(database)
	resetRepo := repository.NewPasswordResetRepository(database)

	policy := service.PasswordPolicy{MinLength: cfg.Password.MinLength}
	sender := mail.NewSMTPSender(&cfg.SMTP, logger)
	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	handler := NewHandler(
		service.NewProductService(productRepo),
		service.NewDiscountService(database),
		service.NewStatsService(productRepo),
		service.NewQueryService(productRepo),
		service.NewBulkService(productRepo),
		service.NewAccountService(userRepo, policy),
		service.NewResetService(userRepo, resetRepo, sender, policy, logger),
		database,
		tokens,
		logger,
	)

	requireAuth := middleware.RequireAuth(tokens, logger)
	idempotent := middleware.Idempotency(repository.NewIdempotencyRepository(database), logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)

	mux.HandleFunc("GET /health", handler.Health)

	// Public account routes
	mux.HandleFunc("POST /register/{$}", handler.Register)
	mux.HandleFunc("POST /login/{$}", handler.Login)
	mux.HandleFunc("POST /api/token/{$}", handler.Login)
	mux.HandleFunc("POST /forgot-password/{$}", handler.ForgotPassword)
	mux.HandleFunc("POST /verify-otp/{$}", handler.VerifyOTP)
	mux.HandleFunc("POST /reset-password/{$}", handler.ResetPassword)

	// Authenticated catalog routes. Idempotency replay sits inside the auth
	// wrapper so a cached response is never served to an unauthenticated
	// caller.
	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, requireAuth(fn))
	}

	protected("GET /products/{$}", handler.ListProducts)
	mux.Handle("POST /products/{$}", requireAuth(idempotent(http.HandlerFunc(handler.CreateProduct))))
	protected("PUT /products/{id}/{$}", handler.UpdateProduct)
	protected("DELETE /products/{id}/{$}", handler.DeleteProduct)
	mux.Handle("POST /products/bulk/{$}", requireAuth(idempotent(http.HandlerFunc(handler.BulkCreateProducts))))
	protected("GET /products/search/{$}", handler.SearchProducts)
	protected("GET /products/price-range/{$}", handler.PriceRangeProducts)
	protected("GET /products/expensive/{$}", handler.ExpensiveProducts)
	protected("GET /products/cheap/{$}", handler.CheapProducts)
	protected("GET /products/latest/{$}", handler.LatestProducts)
	protected("GET /products/stats/{$}", handler.ProductStats)
	protected("GET /total-sales/{$}", handler.TotalSales)
	protected("PUT /discount/{id}/{$}", handler.ApplyDiscount)
	protected("POST /change-password/{$}", handler.ChangePassword)

	var finalHandler http.Handler = mux

	finalHandler = middleware.CORS(cfg.Server.CORSOrigins)(finalHandler)
	finalHandler = middleware.RequestLog(logger)(finalHandler)

	return finalHandler
}
