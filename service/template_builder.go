package service

import (
	"bytes"
	"fmt"
	"html/template"

	"inkwell-cards/layout"
	"inkwell-cards/models"
)

// frontTemplate is the full-bleed front face: the template artwork cropped
// to fill the content box exactly, never letterboxed. On a spread the
// content box sits in the right half and the left half stays blank.
const frontTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  html, body { margin: 0; padding: 0; }
  body { width: {{.OverallWidth}}in; height: {{.OverallHeight}}in; background: #ffffff; }
  .face {
    position: absolute;
    top: 0;
    left: {{.ContentLeft}}in;
    width: {{.ContentWidth}}in;
    height: {{.ContentHeight}}in;
    overflow: hidden;
  }
  .face img { width: 100%; height: 100%; object-fit: cover; }
</style>
</head>
<body>
  <div class="face">
    {{if .TemplateDataURI}}<img src="{{.TemplateDataURI}}" alt="">{{end}}
  </div>
</body>
</html>
`

// insideTemplate is the three-band inside face: message on top, then the
// logo, then the larger signature, all horizontally centered. Band offsets
// come from the layout package so the compositor places the same elements
// at the same relative positions.
const insideTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  html, body { margin: 0; padding: 0; }
  body { width: {{.OverallWidth}}in; height: {{.OverallHeight}}in; background: #ffffff; }
  .face {
    position: absolute;
    top: 0;
    left: {{.ContentLeft}}in;
    width: {{.ContentWidth}}in;
    height: {{.ContentHeight}}in;
    overflow: hidden;
  }
  .message {
    position: absolute;
    top: {{.MessageTopPct}}%;
    width: 100%;
    text-align: center;
    font-family: Georgia, 'Times New Roman', serif;
    font-style: italic;
    font-size: 0.26in;
    line-height: 1.5;
    color: #1a1a1a;
  }
  .logo {
    position: absolute;
    top: {{.LogoCenterPct}}%;
    left: 50%;
    transform: translate(-50%, -50%);
    width: {{.LogoWidthPct}}%;
  }
  .signature {
    position: absolute;
    top: {{.SignatureCenterPct}}%;
    left: 50%;
    transform: translate(-50%, -50%);
    width: {{.SignatureWidthPct}}%;
  }
</style>
</head>
<body>
  <div class="face">
    <div class="message">{{.FirstLine}}{{if .ShouldBreak}}<br>{{.SecondLine}}{{end}}</div>
    {{if .LogoDataURI}}<img class="logo" src="{{.LogoDataURI}}" alt="">{{end}}
    {{if .SignatureDataURI}}<img class="signature" src="{{.SignatureDataURI}}" alt="">{{end}}
  </div>
</body>
</html>
`

// TemplateBuilder composes the face markup handed to the render chain.
// All geometry comes from the LayoutConfig and the layout package band
// constants; all text is inserted through html/template so it is escaped.
type TemplateBuilder struct {
	front  *template.Template
	inside *template.Template
}

// Ensure TemplateBuilder implements TemplateBuilderInterface
var _ TemplateBuilderInterface = (*TemplateBuilder)(nil)

// NewTemplateBuilder creates a new TemplateBuilder
func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		front:  template.Must(template.New("front").Parse(frontTemplate)),
		inside: template.Must(template.New("inside").Parse(insideTemplate)),
	}
}

// faceData carries the resolved values into the face templates.
type faceData struct {
	OverallWidth  float64
	OverallHeight float64
	ContentWidth  float64
	ContentHeight float64
	ContentLeft   float64

	MessageTopPct      float64
	LogoCenterPct      float64
	SignatureCenterPct float64
	LogoWidthPct       float64
	SignatureWidthPct  float64

	FirstLine   string
	SecondLine  string
	ShouldBreak bool

	TemplateDataURI  template.URL
	LogoDataURI      template.URL
	SignatureDataURI template.URL
}

// newFaceData fills the geometry shared by both faces. On a spread the
// content box occupies the right half of the overall canvas.
func newFaceData(cfg layout.LayoutConfig) faceData {
	contentLeft := 0.0
	if cfg.IsSpread {
		contentLeft = cfg.OverallWidth - cfg.ContentWidth
	}
	return faceData{
		OverallWidth:       cfg.OverallWidth,
		OverallHeight:      cfg.OverallHeight,
		ContentWidth:       cfg.ContentWidth,
		ContentHeight:      cfg.ContentHeight,
		ContentLeft:        contentLeft,
		MessageTopPct:      layout.MessageTopFrac * 100,
		LogoCenterPct:      layout.LogoCenterFrac * 100,
		SignatureCenterPct: layout.SignatureCenterFrac * 100,
		LogoWidthPct:       layout.LogoWidthFrac * 100,
		SignatureWidthPct:  layout.SignatureWidthFrac * 100,
	}
}

// BuildFront renders the front face markup
func (b *TemplateBuilder) BuildFront(cfg layout.LayoutConfig, content models.CardContent) (string, error) {
	data := newFaceData(cfg)
	data.TemplateDataURI = template.URL(content.TemplateDataURI)

	var buf bytes.Buffer
	if err := b.front.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to build front markup: %w", err)
	}
	return buf.String(), nil
}

// BuildInside renders the inside face markup
func (b *TemplateBuilder) BuildInside(cfg layout.LayoutConfig, content models.CardContent) (string, error) {
	lines := layout.FormatMessage(content.Message)

	data := newFaceData(cfg)
	data.FirstLine = lines.FirstLine
	data.SecondLine = lines.SecondLine
	data.ShouldBreak = lines.ShouldBreak
	data.LogoDataURI = template.URL(content.LogoDataURI)
	data.SignatureDataURI = template.URL(content.SignatureDataURI)

	var buf bytes.Buffer
	if err := b.inside.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to build inside markup: %w", err)
	}
	return buf.String(), nil
}
