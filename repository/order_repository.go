package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"inkwell-cards/db"
	"inkwell-cards/models"
)

// ErrOrderNotFound indicates the order id has no row in the order store
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository handles database operations for card orders
// Implements OrderRepositoryInterface
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// GetByID returns a single order by id
func (r *OrderRepository) GetByID(ctx context.Context, orderID int64) (*models.Order, error) {
	query := `
		SELECT id, template_id, custom_message, selected_message, quantity,
		       logo_path, logo_cropped_path, signature_path, signature_cropped_path,
		       front_preview, inside_preview, previews_updated_at
		FROM orders
		WHERE id = $1
	`

	var (
		order                models.Order
		customMsg            sql.NullString
		selectedMsg          sql.NullString
		logoPath             sql.NullString
		logoCroppedPath      sql.NullString
		signaturePath        sql.NullString
		signatureCroppedPath sql.NullString
		frontPreview         sql.NullString
		insidePreview        sql.NullString
		previewsUpdatedAt    sql.NullTime
	)

	err := db.DB.QueryRowContext(ctx, query, orderID).Scan(
		&order.ID,
		&order.TemplateID,
		&customMsg,
		&selectedMsg,
		&order.Quantity,
		&logoPath,
		&logoCroppedPath,
		&signaturePath,
		&signatureCroppedPath,
		&frontPreview,
		&insidePreview,
		&previewsUpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", orderID, err)
	}

	order.CustomMessage = customMsg.String
	order.SelectedMessage = selectedMsg.String
	order.LogoPath = logoPath.String
	order.LogoCroppedPath = logoCroppedPath.String
	order.SignaturePath = signaturePath.String
	order.SignatureCroppedPath = signatureCroppedPath.String
	order.FrontPreview = frontPreview.String
	order.InsidePreview = insidePreview.String
	if previewsUpdatedAt.Valid {
		order.PreviewsUpdatedAt = previewsUpdatedAt.Time.UTC().Format(time.RFC3339)
	}

	return &order, nil
}

// SavePreviews writes both face previews and the update timestamp back to
// the order row in a single statement, so a partial (one-face) write can
// never be observed.
func (r *OrderRepository) SavePreviews(ctx context.Context, orderID int64, frontB64, insideB64 string, updatedAt time.Time) error {
	query := `
		UPDATE orders
		SET front_preview = $1, inside_preview = $2, previews_updated_at = $3
		WHERE id = $4
	`

	result, err := db.DB.ExecContext(ctx, query, frontB64, insideB64, updatedAt.UTC(), orderID)
	if err != nil {
		log.Printf("❌ Failed to save previews for order %d: %v", orderID, err)
		return fmt.Errorf("failed to save previews for order %d: %w", orderID, err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return ErrOrderNotFound
	}

	log.Printf("✓ Previews saved for order %d (updated at %s)", orderID, updatedAt.UTC().Format(time.RFC3339))
	return nil
}
