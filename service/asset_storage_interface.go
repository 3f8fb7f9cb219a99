package service

import "context"

// AssetStorageInterface defines the contract for the object storage holding
// logo, signature and template artwork files
type AssetStorageInterface interface {
	DownloadImage(ctx context.Context, fileID string) ([]byte, error)
}
