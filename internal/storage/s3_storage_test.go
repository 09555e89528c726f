package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Storage_URL_WithBaseURL(t *testing.T) {
	s := NewS3Storage("us-east-1", "storelink-uploads", "key", "secret", "https://cdn.example.com")

	url, err := s.URL("products/p1.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/p1.png", url)
}

func TestS3Storage_URL_DirectBucket(t *testing.T) {
	s := NewS3Storage("us-east-1", "storelink-uploads", "key", "secret", "")

	url, err := s.URL("products/p1.png")
	require.NoError(t, err)
	assert.Equal(t, "https://storelink-uploads.s3.us-east-1.amazonaws.com/products/p1.png", url)
}

func TestS3Storage_URL_Errors(t *testing.T) {
	s := NewS3Storage("us-east-1", "storelink-uploads", "key", "secret", "")
	_, err := s.URL("")
	assert.Error(t, err)

	empty := NewS3Storage("us-east-1", "", "key", "secret", "")
	_, err = empty.URL("products/p1.png")
	assert.Error(t, err)
}

func TestS3Storage_ValidateFileSize(t *testing.T) {
	s := &S3Storage{}
	assert.NoError(t, s.ValidateFileSize(1024, 2048))
	assert.Error(t, s.ValidateFileSize(4096, 2048))
}

func TestS3Storage_ValidateContentType(t *testing.T) {
	s := &S3Storage{}
	allowed := []string{"image/png", "image/jpeg"}
	assert.NoError(t, s.ValidateContentType("image/png", allowed))
	assert.Error(t, s.ValidateContentType("application/pdf", allowed))
}
