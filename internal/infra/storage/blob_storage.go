// Package storage issues presigned upload URLs against the document bucket through gocloud.dev/blob.
package storage

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tnp/config"
	"tnp/internal/domain/entity"
	"tnp/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/s3blob" // registers the s3:// URL scheme
)

// BucketParams defines the dependencies of NewBucket.
type BucketParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewBucket opens the configured bucket once and closes it when the application stops.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	bucketURL, err := resolveBucketURL(params.Config.Storage)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Document bucket opened", slog.String("bucket_url", bucketURL))

	return bucket, nil
}

func resolveBucketURL(cfg *config.StorageConfig) (string, error) {
	if cfg == nil {
		return "", errors.New("storage configuration is missing")
	}
	if cfg.BucketURL != "" {
		return cfg.BucketURL, nil
	}
	if cfg.Bucket == "" {
		return "", errors.New("storage.bucket (AWS_S3_BUCKET_NAME) must be provided")
	}

	u := url.URL{Scheme: "s3", Host: cfg.Bucket}
	if cfg.Region != "" {
		u.RawQuery = url.Values{"region": []string{cfg.Region}}.Encode()
	}

	return u.String(), nil
}

// blobStorage implements service.ObjectStorage on top of a gocloud bucket.
type blobStorage struct {
	bucket     *blob.Bucket
	expiry     time.Duration
	publicBase string
	now        func() time.Time
}

// NewBlobStorage is the constructor for blobStorage.
func NewBlobStorage(bucket *blob.Bucket, cfg *config.Config) service.ObjectStorage {
	storageCfg := cfg.Storage
	if storageCfg == nil {
		storageCfg = &config.StorageConfig{}
	}

	expiry := storageCfg.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	return &blobStorage{
		bucket:     bucket,
		expiry:     expiry,
		publicBase: publicBaseURL(storageCfg),
		now:        time.Now,
	}
}

// PresignUpload returns a PUT URL for key that only accepts the given content type.
func (s *blobStorage) PresignUpload(ctx context.Context, key, contentType string) (*entity.PresignedUpload, error) {
	issuedAt := s.now()

	uploadURL, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Method:      http.MethodPut,
		ContentType: contentType,
		Expiry:      s.expiry,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to presign upload for %s", key)
	}

	return &entity.PresignedUpload{
		UploadURL: uploadURL,
		Key:       key,
		FileURL:   s.PublicURL(key),
		ExpiresAt: issuedAt.Add(s.expiry),
	}, nil
}

// PublicURL joins key onto the public base of the bucket.
func (s *blobStorage) PublicURL(key string) string {
	return s.publicBase + "/" + strings.TrimLeft(key, "/")
}

// publicBaseURL falls back to the virtual-hosted S3 endpoint of the bucket.
func publicBaseURL(cfg *config.StorageConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	return "https://" + cfg.Bucket + ".s3." + region + ".amazonaws.com"
}
