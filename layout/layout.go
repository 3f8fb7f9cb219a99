// Package layout holds the canonical card geometry and text-wrapping rules.
// Every rendering backend (remote screenshot service, headless Chrome, local
// compositor) consumes these values instead of computing its own, so the
// on-screen preview and the print output stay visually identical.
package layout

// Face identifies one printable side of the card
type Face string

// Mode selects between on-screen preview and print-ready production output
type Mode string

const (
	FaceFront  Face = "front"
	FaceInside Face = "inside"

	ModePreview    Mode = "preview"
	ModeProduction Mode = "production"
)

// Physical card dimensions in inches. The content box is fixed; production
// spreads double the overall width and leave the extra half blank.
const (
	ContentWidthIn  = 5.125
	ContentHeightIn = 7.0
	SpreadWidthIn   = 10.25
)

// Inside-face band positions as fractions of the content height/width.
// Shared by the markup builder and the raster compositor.
const (
	MessageTopFrac      = 0.28
	LogoCenterFrac      = 0.58
	SignatureCenterFrac = 0.72
	LogoWidthFrac       = 0.18
	SignatureWidthFrac  = 0.30
)

// Capture viewport in pixels at the nominal render DPI (200 dpi over the
// 5.125x7in content box).
const (
	RenderDPI             = 200
	ViewportWidthPx       = 1024
	ViewportHeightPx      = 1400
	SpreadViewportWidthPx = 2048
)

// LayoutConfig describes the geometry for one face render.
// All linear dimensions are in inches.
type LayoutConfig struct {
	Face          Face    `json:"face"`
	ContentWidth  float64 `json:"contentWidth"`
	ContentHeight float64 `json:"contentHeight"`
	OverallWidth  float64 `json:"overallWidth"`
	OverallHeight float64 `json:"overallHeight"`
	AspectRatio   float64 `json:"aspectRatio"`
	IsSpread      bool    `json:"isSpread"`
}

// Resolve maps (face, mode, requestedSpread) to a LayoutConfig.
// Pure and total: every combination yields a valid config. A spread is
// forced for production output or when the caller explicitly asks for one.
func Resolve(face Face, mode Mode, requestedSpread bool) LayoutConfig {
	spread := mode == ModeProduction || requestedSpread

	cfg := LayoutConfig{
		Face:          face,
		ContentWidth:  ContentWidthIn,
		ContentHeight: ContentHeightIn,
		OverallWidth:  ContentWidthIn,
		OverallHeight: ContentHeightIn,
		IsSpread:      spread,
	}
	if spread {
		cfg.OverallWidth = SpreadWidthIn
	}
	cfg.AspectRatio = cfg.OverallWidth / cfg.OverallHeight
	return cfg
}

// ViewportPx returns the capture viewport in pixels for this layout.
func (c LayoutConfig) ViewportPx() (width, height int) {
	if c.IsSpread {
		return SpreadViewportWidthPx, ViewportHeightPx
	}
	return ViewportWidthPx, ViewportHeightPx
}
