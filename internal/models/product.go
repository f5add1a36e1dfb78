package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Price is stored in currency minor units and
// stays integral across discount applications.
type Product struct {
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	Name        string    `db:"name"        json:"name"`
	Description string    `db:"description" json:"description"`
	Price       int64     `db:"price"       json:"price"`
	ID          uuid.UUID `db:"id"          json:"id"`
}

// PriceStats aggregates the price column over the whole catalog.
type PriceStats struct {
	Count   int64
	Total   int64
	Min     int64
	Max     int64
	Average float64
}
