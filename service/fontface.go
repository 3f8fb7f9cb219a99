package service

import (
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Candidate serif/italic fonts for the card message, in preference order.
// The compositor only draws one short message, so a fixed candidate list is
// enough; no full font cache is needed.
var messageFontFiles = []string{
	"DejaVuSerif-Italic.ttf",
	"LiberationSerif-Italic.ttf",
	"DejaVuSerif.ttf",
	"LiberationSerif-Regular.ttf",
	"DejaVuSans.ttf",
}

var fontSearchDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/truetype/liberation",
	"/usr/share/fonts/TTF",
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
	"C:\\Windows\\Fonts",
}

var (
	messageFontOnce sync.Once
	messageFont     *opentype.Font
)

// loadMessageFont parses the first candidate font file found on the host.
// Returns nil when none is found.
func loadMessageFont() *opentype.Font {
	messageFontOnce.Do(func() {
		for _, name := range messageFontFiles {
			for _, dir := range fontSearchDirs {
				data, err := os.ReadFile(filepath.Join(dir, name))
				if err != nil {
					continue
				}
				f, err := opentype.Parse(data)
				if err != nil {
					continue
				}
				messageFont = f
				return
			}
		}
	})
	return messageFont
}

// messageFace returns a font.Face for the card message at the given point
// size, falling back to basicfont when no TrueType font is available.
func messageFace(sizePt float64) font.Face {
	f := loadMessageFont()
	if f == nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
