package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inkwell-cards/db"
	"inkwell-cards/models"
)

// ErrTemplateNotFound indicates the template id has no row in the store
var ErrTemplateNotFound = errors.New("card template not found")

// TemplateRepository handles database operations for card templates
// Implements TemplateRepositoryInterface
type TemplateRepository struct{}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{}
}

// Ensure TemplateRepository implements TemplateRepositoryInterface
var _ TemplateRepositoryInterface = (*TemplateRepository)(nil)

// GetByID returns a single card template by id
func (r *TemplateRepository) GetByID(ctx context.Context, templateID int64) (*models.CardTemplate, error) {
	query := `
		SELECT id, name, description, preview_ref
		FROM card_templates
		WHERE id = $1
	`

	var (
		tmpl        models.CardTemplate
		description sql.NullString
		previewRef  sql.NullString
	)

	err := db.DB.QueryRowContext(ctx, query, templateID).Scan(&tmpl.ID, &tmpl.Name, &description, &previewRef)
	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card template %d: %w", templateID, err)
	}

	tmpl.Description = description.String
	tmpl.PreviewRef = previewRef.String
	return &tmpl, nil
}

// List returns all card templates ordered by name
func (r *TemplateRepository) List(ctx context.Context) ([]models.CardTemplate, error) {
	query := `
		SELECT id, name, description, preview_ref
		FROM card_templates
		ORDER BY name
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list card templates: %w", err)
	}
	defer rows.Close()

	var templates []models.CardTemplate
	for rows.Next() {
		var (
			tmpl        models.CardTemplate
			description sql.NullString
			previewRef  sql.NullString
		)
		if err := rows.Scan(&tmpl.ID, &tmpl.Name, &description, &previewRef); err != nil {
			return nil, fmt.Errorf("failed to scan card template: %w", err)
		}
		tmpl.Description = description.String
		tmpl.PreviewRef = previewRef.String
		templates = append(templates, tmpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate card templates: %w", err)
	}

	return templates, nil
}
