package service

import (
	"inkwell-cards/layout"
	"inkwell-cards/models"
)

// TemplateBuilderInterface defines the contract for face markup composition
type TemplateBuilderInterface interface {
	BuildFront(cfg layout.LayoutConfig, content models.CardContent) (string, error)
	BuildInside(cfg layout.LayoutConfig, content models.CardContent) (string, error)
}
