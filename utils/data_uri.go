package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeDataURI wraps raw bytes as a self-contained data URI so markup can
// reference the asset without any network access at render time.
func EncodeDataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI returns the raw bytes of a base64 data URI produced by
// EncodeDataURI (or any standard data:...;base64,... URI).
func DecodeDataURI(uri string) ([]byte, error) {
	idx := strings.Index(uri, ";base64,")
	if !strings.HasPrefix(uri, "data:") || idx < 0 {
		return nil, fmt.Errorf("not a base64 data URI")
	}
	data, err := base64.StdEncoding.DecodeString(uri[idx+len(";base64,"):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode data URI payload: %w", err)
	}
	return data, nil
}
