package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"inkwell-cards/layout"
	"inkwell-cards/models"
	"inkwell-cards/utils"
)

// messageFontSizePx is the message text size in pixels: 0.26in at the
// nominal render DPI, matching the font-size in the face markup.
const messageFontSizePx = 0.26 * layout.RenderDPI

// messageLineSpacing matches the markup's line-height of 1.5.
const messageLineSpacing = 1.5

var messageColor = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}

// Compositor is the final render tier: a pure-Go raster of the face drawn
// with a local 2D surface. It consumes the same LayoutConfig, band
// fractions and formatted message lines as the markup, so its output is
// visually consistent with the browser tiers despite the different
// rendering technology. Always available.
type Compositor struct{}

// NewCompositor creates a new Compositor
func NewCompositor() *Compositor {
	return &Compositor{}
}

// Ensure Compositor implements RenderStrategy
var _ RenderStrategy = (*Compositor)(nil)

// Name identifies the strategy in logs
func (c *Compositor) Name() string { return "local-compositor" }

// Available always reports true; the compositor is the tier of last resort
func (c *Compositor) Available() bool { return true }

// Render rasterizes the face locally
func (c *Compositor) Render(ctx context.Context, job RenderJob) ([]byte, error) {
	width, height := job.Layout.ViewportPx()

	// Content box in pixels. On a spread it occupies the right half of the
	// canvas, mirroring the markup's positioning.
	contentWidth := int(job.Layout.ContentWidth / job.Layout.OverallWidth * float64(width))
	contentLeft := width - contentWidth

	canvas := imaging.New(width, height, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	switch job.Layout.Face {
	case layout.FaceFront:
		canvas = c.drawFront(canvas, job.Content, contentLeft, contentWidth, height)
	default:
		canvas = c.drawInside(canvas, job.Content, contentLeft, contentWidth, height)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode composited face: %w", err)
	}
	return buf.Bytes(), nil
}

// drawFront crop-fills the template artwork over the whole content box
func (c *Compositor) drawFront(canvas *image.NRGBA, content models.CardContent, left, width, height int) *image.NRGBA {
	art := decodeDataURIImage(content.TemplateDataURI)
	if art == nil {
		return canvas
	}

	filled := imaging.Fill(art, width, height, imaging.Center, imaging.Lanczos)
	return imaging.Paste(canvas, filled, image.Pt(left, 0))
}

// drawInside lays out the three bands: message, logo, signature
func (c *Compositor) drawInside(canvas *image.NRGBA, content models.CardContent, left, width, height int) *image.NRGBA {
	c.drawMessage(canvas, content.Message, left, width, height)

	if logo := decodeDataURIImage(content.LogoDataURI); logo != nil {
		canvas = pasteCentered(canvas, logo,
			left+width/2,
			int(layout.LogoCenterFrac*float64(height)),
			int(layout.LogoWidthFrac*float64(width)))
	}

	if sig := decodeDataURIImage(content.SignatureDataURI); sig != nil {
		canvas = pasteCentered(canvas, sig,
			left+width/2,
			int(layout.SignatureCenterFrac*float64(height)),
			int(layout.SignatureWidthFrac*float64(width)))
	}

	return canvas
}

// drawMessage draws the formatted message lines centered in the content
// box, top-anchored at the message band.
func (c *Compositor) drawMessage(canvas *image.NRGBA, message string, left, width, height int) {
	if message == "" {
		return
	}

	lines := layout.FormatMessage(message)
	texts := []string{lines.FirstLine}
	if lines.ShouldBreak {
		texts = append(texts, lines.SecondLine)
	}

	face := messageFace(messageFontSizePx)
	metrics := face.Metrics()
	lineHeight := int(messageFontSizePx * messageLineSpacing)

	baseline := int(layout.MessageTopFrac*float64(height)) + metrics.Ascent.Ceil()
	for _, text := range texts {
		textWidth := font.MeasureString(face, text).Ceil()
		d := &font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(messageColor),
			Face: face,
			Dot: fixed.P(
				left+(width-textWidth)/2,
				baseline,
			),
		}
		d.DrawString(text)
		baseline += lineHeight
	}
}

// pasteCentered resizes img to targetWidth (keeping aspect ratio) and
// pastes it centered on (cx, cy).
func pasteCentered(canvas *image.NRGBA, img image.Image, cx, cy, targetWidth int) *image.NRGBA {
	resized := imaging.Resize(img, targetWidth, 0, imaging.Lanczos)
	bounds := resized.Bounds()
	return imaging.Paste(canvas, resized, image.Pt(cx-bounds.Dx()/2, cy-bounds.Dy()/2))
}

// decodeDataURIImage decodes an inlined asset back into an image. Returns
// nil (asset skipped) on any failure; a bad asset never fails the face.
func decodeDataURIImage(uri string) image.Image {
	if uri == "" {
		return nil
	}
	data, err := utils.DecodeDataURI(uri)
	if err != nil {
		log.Printf("⚠️  Warning: failed to decode inlined asset: %v", err)
		return nil
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("⚠️  Warning: failed to decode asset image: %v", err)
		return nil
	}
	return img
}
