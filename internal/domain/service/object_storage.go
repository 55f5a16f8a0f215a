package service

import (
	"context"

	"tnp/internal/domain/entity"
)

// ObjectStorage issues time-limited upload slots in the document bucket.
type ObjectStorage interface {
	PresignUpload(ctx context.Context, key, contentType string) (*entity.PresignedUpload, error)

	// PublicURL returns the address under which key is served once uploaded.
	PublicURL(key string) string
}
