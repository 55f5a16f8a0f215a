package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"tnp/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func newFileBucketStorage(t *testing.T, cfg *config.Config) *blobStorage {
	t.Helper()

	base, err := url.Parse("https://uploads.test/signed")
	require.NoError(t, err)

	bucket, err := fileblob.OpenBucket(t.TempDir(), &fileblob.Options{
		URLSigner: fileblob.NewURLSignerHMAC(base, []byte("signing-secret")),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket, cfg).(*blobStorage)
}

func TestBlobStorage_PresignUpload(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{
		Bucket:        "tnp-docs",
		Region:        "ap-south-1",
		PresignExpiry: 10 * time.Minute,
	}}
	s := newFileBucketStorage(t, cfg)

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	upload, err := s.PresignUpload(context.Background(), "documents/abc/resume.pdf", "application/pdf")
	require.NoError(t, err)

	assert.Contains(t, upload.UploadURL, "https://uploads.test/signed")
	assert.Equal(t, "documents/abc/resume.pdf", upload.Key)
	assert.Equal(t, "https://tnp-docs.s3.ap-south-1.amazonaws.com/documents/abc/resume.pdf", upload.FileURL)
	assert.Equal(t, fixed.Add(10*time.Minute), upload.ExpiresAt)
}

func TestBlobStorage_PublicBaseURLOverride(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{
		Bucket:        "tnp-docs",
		PublicBaseURL: "https://cdn.example.com/",
	}}
	s := newFileBucketStorage(t, cfg)

	upload, err := s.PresignUpload(context.Background(), "documents/k", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/documents/k", upload.FileURL)
	assert.Equal(t, 15*time.Minute, s.expiry)
}

func TestResolveBucketURL(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.StorageConfig
		want    string
		wantErr bool
	}{
		{name: "missing config", cfg: nil, wantErr: true},
		{name: "missing bucket", cfg: &config.StorageConfig{Region: "ap-south-1"}, wantErr: true},
		{name: "explicit url wins", cfg: &config.StorageConfig{Bucket: "b", BucketURL: "mem://"}, want: "mem://"},
		{name: "bucket and region", cfg: &config.StorageConfig{Bucket: "tnp-docs", Region: "ap-south-1"}, want: "s3://tnp-docs?region=ap-south-1"},
		{name: "bucket only", cfg: &config.StorageConfig{Bucket: "tnp-docs"}, want: "s3://tnp-docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveBucketURL(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlobStorage_PublicURL(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{Bucket: "b", Region: "eu-west-1"}}
	s := newFileBucketStorage(t, cfg)

	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com/documents/x", s.PublicURL("/documents/x"))
}
