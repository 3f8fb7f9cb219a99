package service

import (
	"bytes"
	"image"
	"log"

	"github.com/disintegration/imaging"
)

// maxAssetDim bounds inlined logo/signature artwork. Customer uploads can
// be camera-sized; anything larger than this adds data-URI weight without
// improving the 200 DPI render.
const maxAssetDim = 800

// NormalizeAssetImage downscales an asset to fit maxAssetDim and re-encodes
// it as PNG. Bytes that do not decode, or images already within bounds, are
// returned unchanged; normalization never fails an inline.
func NormalizeAssetImage(data []byte) []byte {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxAssetDim && bounds.Dy() <= maxAssetDim {
		return data
	}

	var resized image.Image = imaging.Fit(img, maxAssetDim, maxAssetDim, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG); err != nil {
		return data
	}

	log.Printf("🔄 Normalized asset image: %dx%d -> max %dpx (%d bytes)", bounds.Dx(), bounds.Dy(), maxAssetDim, buf.Len())
	return buf.Bytes()
}
