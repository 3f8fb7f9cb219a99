package models

// CardTemplate represents a card design the customer picks in the
// storefront. Immutable from the rendering core's perspective.
type CardTemplate struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// PreviewRef is a storage path (Drive file ID) or absolute URL of the
	// template's front artwork.
	PreviewRef string `json:"previewRef,omitempty"`
}
