package repository

import (
	"context"
	"time"

	"inkwell-cards/models"
)

// OrderRepositoryInterface defines the contract for order store operations.
// SavePreviews is the persister boundary: it is called exactly once per
// render invocation, after both faces have resolved, never with only one.
type OrderRepositoryInterface interface {
	GetByID(ctx context.Context, orderID int64) (*models.Order, error)
	SavePreviews(ctx context.Context, orderID int64, frontB64, insideB64 string, updatedAt time.Time) error
}

// TemplateRepositoryInterface defines the contract for card template lookups
type TemplateRepositoryInterface interface {
	GetByID(ctx context.Context, templateID int64) (*models.CardTemplate, error)
	List(ctx context.Context) ([]models.CardTemplate, error)
}
