package models

// CardContent is the fully resolved render-time payload for one order.
// Asset fields are self-contained base64 data URIs (already inlined); an
// empty string means the asset is absent or could not be fetched and the
// card renders without it.
type CardContent struct {
	Message          string `json:"message"`
	LogoDataURI      string `json:"logoDataUri,omitempty"`
	SignatureDataURI string `json:"signatureDataUri,omitempty"`
	TemplateDataURI  string `json:"templateDataUri,omitempty"`
}

// RenderResult holds the two face rasters produced by one render
// invocation. Both are always populated together; a partial result is never
// returned or persisted.
type RenderResult struct {
	OrderID     int64  `json:"orderId"`
	FrontPNG    []byte `json:"-"`
	InsidePNG   []byte `json:"-"`
	GeneratedAt string `json:"generatedAt"`
}
