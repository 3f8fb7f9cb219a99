package utils

import (
	"bytes"
	"errors"
)

// ErrPNGNotFound indicates the buffer holds no complete PNG payload.
// Callers treat this as an expected branch (fall back to another render
// tier), not as a hard failure.
var ErrPNGNotFound = errors.New("no PNG payload found in buffer")

// pngSignature is the fixed 8-byte header every PNG file starts with.
var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// pngIENDTrailer is the final 8 bytes of a PNG stream: the IEND chunk type
// followed by its (constant) CRC.
var pngIENDTrailer = []byte{0x49, 0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82}

// ExtractPNG locates a PNG embedded anywhere in buf and returns the
// inclusive slice from its signature through its IEND trailer.
//
// The screenshot service wraps its output in an archive-like container that
// always holds exactly one PNG, so scanning for the two fixed byte
// sequences is enough; a general archive reader would be overkill here.
func ExtractPNG(buf []byte) ([]byte, error) {
	start := bytes.Index(buf, pngSignature)
	if start < 0 {
		return nil, ErrPNGNotFound
	}

	rel := bytes.Index(buf[start+len(pngSignature):], pngIENDTrailer)
	if rel < 0 {
		return nil, ErrPNGNotFound
	}

	end := start + len(pngSignature) + rel + len(pngIENDTrailer)
	return buf[start:end], nil
}
