package service

import (
	"context"

	"github.com/benx421/catalog/internal/models"
	"github.com/google/uuid"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Cataloger handles product CRUD operations
type Cataloger interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, input ProductInput) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Discounter applies percentage discounts to stored prices
type Discounter interface {
	ApplyDiscount(ctx context.Context, id uuid.UUID, percent int64) (*DiscountResult, error)
}

// Aggregator computes price aggregates over the catalog
type Aggregator interface {
	TotalSales(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*models.PriceStats, error)
}

// Querier handles keyword and price filtering
type Querier interface {
	Expensive(ctx context.Context, minPrice int64) ([]models.Product, error)
	Cheap(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	PriceRange(ctx context.Context, minRaw, maxRaw string) ([]models.Product, error)
	Latest(ctx context.Context, limit int) ([]models.Product, error)
}

// BulkCreator ingests batches of candidate products
type BulkCreator interface {
	BulkCreate(ctx context.Context, items []ProductInput) (*BulkResult, error)
}

// AccountManager handles registration and credential changes
type AccountManager interface {
	Register(ctx context.Context, username, email, password, confirmation string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword, confirmation string) error
}

// PasswordResetter drives the request / verify / reset OTP flow
type PasswordResetter interface {
	RequestReset(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword, confirmation string) error
}

// Ensure concrete types implement interfaces
var (
	_ Cataloger        = (*ProductService)(nil)
	_ Discounter       = (*DiscountService)(nil)
	_ Aggregator       = (*StatsService)(nil)
	_ Querier          = (*QueryService)(nil)
	_ BulkCreator      = (*BulkService)(nil)
	_ AccountManager   = (*AccountService)(nil)
	_ PasswordResetter = (*ResetService)(nil)
)
