package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hupe1980/blobcheck/blobstore"
	"github.com/minio/minio-go/v7"
)

const scheme = "s3://"

// Store implements blobstore.Store for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a new MinIO blob store.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "blobcheck/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Store) key(p string, dir blobstore.Directory) string {
	return path.Join(s.prefix, dir.String(), p)
}

// Write uploads the request's data and returns an s3:// locator.
// PutObject replaces any existing object under the key.
func (s *Store) Write(ctx context.Context, req blobstore.WriteRequest) (blobstore.WriteResult, error) {
	key := s.key(req.Path, req.Directory)

	_, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(req.Data), int64(len(req.Data)), minio.PutObjectOptions{})
	if err != nil {
		return blobstore.WriteResult{}, err
	}

	return blobstore.WriteResult{URI: scheme + s.bucket + "/" + key}, nil
}

// Open resolves an s3:// locator into a blob backed by ranged GETs.
func (s *Store) Open(ctx context.Context, uri string) (blobstore.Blob, error) {
	bucket, key, err := parseURI(uri)
	if err != nil {
		return nil, err
	}

	// Stat to verify existence and learn the size
	info, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	return &minioBlob{
		client: s.client,
		bucket: bucket,
		key:    key,
		size:   info.Size,
	}, nil
}

// Delete removes the object. A missing object is not an error.
func (s *Store) Delete(ctx context.Context, p string, dir blobstore.Directory) error {
	err := s.client.RemoveObject(ctx, s.bucket, s.key(p, dir), minio.RemoveObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil // already gone
		}
		return err
	}
	return nil
}

func parseURI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, scheme)
	if !ok {
		return "", "", fmt.Errorf("minio: not an s3 locator: %q", uri)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("minio: malformed locator: %q", uri)
	}
	return bucket, key, nil
}

// minioBlob implements blobstore.Blob for MinIO.
type minioBlob struct {
	client *minio.Client
	bucket string
	key    string
	size   int64
}

func (b *minioBlob) Size() int64 {
	return b.size
}

func (b *minioBlob) ReadAt(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if off < 0 || off >= b.size {
		return 0, io.EOF
	}

	end := off + int64(len(p)) - 1
	if end >= b.size {
		end = b.size - 1
	}

	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(off, end); err != nil {
		return 0, err
	}

	obj, err := b.client.GetObject(context.Background(), b.bucket, b.key, opts)
	if err != nil {
		return 0, err
	}
	defer obj.Close()

	n, err := io.ReadFull(obj, p[:end-off+1])
	if err != nil {
		return n, err
	}
	if int64(n) < int64(len(p)) {
		return n, io.EOF
	}
	return n, nil
}

func (b *minioBlob) Close() error {
	return nil
}
