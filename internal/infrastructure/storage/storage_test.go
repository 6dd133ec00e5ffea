package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/minegest-api/pkg/config"
)

// ── LocalStore ───────────────────────────────────────────────────────────────

func TestLocalStore_Save(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)

	key, err := store.Save(context.Background(), "CHARGEUSE_2025-01-05/start_1.jpg", "image/jpeg", []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "CHARGEUSE_2025-01-05/start_1.jpg", key)

	got, err := os.ReadFile(filepath.Join(root, "CHARGEUSE_2025-01-05", "start_1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestLocalStore_RechazaSalirDeLaRaiz(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	for _, key := range []string{"../fuera.jpg", "/etc/passwd", "."} {
		_, err := store.Save(context.Background(), key, "image/jpeg", []byte("x"))
		assert.Error(t, err, key)
	}
}

func TestLocalStore_Delete(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)
	ctx := context.Background()

	key, err := store.Save(ctx, "LT-123_2025-01-05/end_1.jpg", "image/jpeg", []byte("abc"))
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(root, "LT-123_2025-01-05", "end_1.jpg"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	assert.NoError(t, store.Delete(ctx, key), "borrar dos veces no es error")
	assert.Error(t, store.Delete(ctx, "../fuera.jpg"))
}

// ── S3Store ──────────────────────────────────────────────────────────────────

type fakePutter struct {
	input   *s3.PutObjectInput
	body    []byte
	deleted []string
	err     error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakePutter) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_Save(t *testing.T) {
	fake := &fakePutter{}
	store := newS3Store(fake, config.S3Config{Bucket: "minegest", Region: "eu-west-3"})

	url, err := store.Save(context.Background(), "CHARGEUSE_2025-01-05/end_1.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://minegest.s3.eu-west-3.amazonaws.com/CHARGEUSE_2025-01-05/end_1.png", url)
	assert.Equal(t, "minegest", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "image/png", aws.ToString(fake.input.ContentType))
	assert.Equal(t, []byte("png"), fake.body)
}

func TestS3Store_CloudFront(t *testing.T) {
	store := newS3Store(&fakePutter{}, config.S3Config{Bucket: "b", Region: "r", CloudFrontDomain: "cdn.example.com"})
	url, err := store.Save(context.Background(), "k.jpg", "image/jpeg", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/k.jpg", url)
}

func TestS3Store_Error(t *testing.T) {
	store := newS3Store(&fakePutter{err: errors.New("boom")}, config.S3Config{Bucket: "b"})
	_, err := store.Save(context.Background(), "k.jpg", "image/jpeg", []byte("x"))
	assert.Error(t, err)
}

func TestS3Store_Delete(t *testing.T) {
	fake := &fakePutter{}
	store := newS3Store(fake, config.S3Config{Bucket: "minegest", Region: "eu-west-3"})
	require.NoError(t, store.Delete(context.Background(), "LT-123_2025-01-05/start_1.jpg"))
	assert.Equal(t, []string{"minegest/LT-123_2025-01-05/start_1.jpg"}, fake.deleted)

	fake.err = errors.New("boom")
	assert.Error(t, store.Delete(context.Background(), "k.jpg"))
}
