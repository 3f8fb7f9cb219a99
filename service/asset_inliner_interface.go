package service

import (
	"context"

	"inkwell-cards/models"
)

// AssetInlinerInterface defines the contract for asset inlining
type AssetInlinerInterface interface {
	Inline(ctx context.Context, ref string) string
	BuildCardContent(ctx context.Context, order *models.Order, tmpl *models.CardTemplate) models.CardContent
}
