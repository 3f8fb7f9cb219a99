package models

// Order represents a card order as read from the order store. The rendering
// core treats it as read-only input except for the two preview blobs and
// their timestamp, which are written back after a successful render.
type Order struct {
	ID              int64  `json:"id"`
	TemplateID      int64  `json:"templateId"`
	CustomMessage   string `json:"customMessage,omitempty"`
	SelectedMessage string `json:"selectedMessage,omitempty"`
	Quantity        int    `json:"quantity"`

	// Asset references are storage paths (Drive file IDs) or absolute
	// URLs. A cropped override wins over the original when both exist.
	LogoPath             string `json:"logoPath,omitempty"`
	LogoCroppedPath      string `json:"logoCroppedPath,omitempty"`
	SignaturePath        string `json:"signaturePath,omitempty"`
	SignatureCroppedPath string `json:"signatureCroppedPath,omitempty"`

	// Write-back fields (base64 PNG blobs + RFC3339 timestamp).
	FrontPreview      string `json:"frontPreview,omitempty"`
	InsidePreview     string `json:"insidePreview,omitempty"`
	PreviewsUpdatedAt string `json:"previewsUpdatedAt,omitempty"`
}

// Message returns the text to print inside the card; a custom message takes
// precedence over a selected stock message.
func (o *Order) Message() string {
	if o.CustomMessage != "" {
		return o.CustomMessage
	}
	return o.SelectedMessage
}

// SignatureRef returns the signature asset reference to render, preferring
// the cropped override.
func (o *Order) SignatureRef() string {
	if o.SignatureCroppedPath != "" {
		return o.SignatureCroppedPath
	}
	return o.SignaturePath
}

// LogoRef returns the logo asset reference to render, preferring the
// cropped override.
func (o *Order) LogoRef() string {
	if o.LogoCroppedPath != "" {
		return o.LogoCroppedPath
	}
	return o.LogoPath
}
