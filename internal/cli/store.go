package cli

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/blobcheck/blobstore"
	minios "github.com/hupe1980/blobcheck/blobstore/minio"
	s3s "github.com/hupe1980/blobcheck/blobstore/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"
)

// storeFlags holds the backend selection shared by verify and bench.
type storeFlags struct {
	kind      string
	root      string
	bucket    string
	prefix    string
	endpoint  string
	accessKey string
	secretKey string
	insecure  bool
}

func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "store", "local", "backend: local, mem, s3 or minio")
	cmd.Flags().StringVar(&f.root, "root", "", "root directory for the local backend (default: a temp dir)")
	cmd.Flags().StringVar(&f.bucket, "bucket", "", "bucket for the s3/minio backends")
	cmd.Flags().StringVar(&f.prefix, "prefix", "blobcheck", "key prefix for the s3/minio backends")
	cmd.Flags().StringVar(&f.endpoint, "endpoint", "", "endpoint for the minio backend, host:port")
	cmd.Flags().StringVar(&f.accessKey, "access-key", "", "access key for the minio backend")
	cmd.Flags().StringVar(&f.secretKey, "secret-key", "", "secret key for the minio backend")
	cmd.Flags().BoolVar(&f.insecure, "insecure", false, "use plain HTTP for the minio backend")
}

func (f *storeFlags) build(ctx context.Context, tempRoot func() string) (blobstore.Store, error) {
	switch f.kind {
	case "local":
		root := f.root
		if root == "" {
			root = tempRoot()
		}
		return blobstore.NewLocalStore(root), nil

	case "mem":
		return blobstore.NewMemoryStore(), nil

	case "s3":
		if f.bucket == "" {
			return nil, fmt.Errorf("--bucket is required for the s3 backend")
		}
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return s3s.NewStore(awss3.NewFromConfig(cfg), f.bucket, f.prefix), nil

	case "minio":
		if f.bucket == "" || f.endpoint == "" {
			return nil, fmt.Errorf("--bucket and --endpoint are required for the minio backend")
		}
		client, err := minio.New(f.endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(f.accessKey, f.secretKey, ""),
			Secure: !f.insecure,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return minios.NewStore(client, f.bucket, f.prefix), nil

	default:
		return nil, fmt.Errorf("unknown store %q", f.kind)
	}
}
