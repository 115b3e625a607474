package cli

import (
	"fmt"
	"os"

	"github.com/hupe1980/blobcheck"
	"github.com/hupe1980/blobcheck/blobstore"
	"github.com/hupe1980/blobcheck/payload"
	"github.com/spf13/cobra"
)

var (
	verifyStore storeFlags
	verifySeed  int64
	verifyCodec string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the round-trip correctness suite against a store",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := verifyStore.build(cmd.Context(), func() string {
			dir, err := os.MkdirTemp("", "blobcheck-*")
			if err != nil {
				return os.TempDir()
			}
			return dir
		})
		if err != nil {
			return err
		}

		store, err = wrapCodec(store, verifyCodec)
		if err != nil {
			return err
		}

		seq := blobcheck.NewSequence(store,
			blobcheck.WithLogger(newLogger()),
			blobcheck.WithRNG(payload.NewRNG(verifySeed)),
		)
		return seq.Run(cmd.Context())
	},
}

func init() {
	verifyStore.register(verifyCmd)
	verifyCmd.Flags().Int64Var(&verifySeed, "seed", 1, "seed for payload generation")
	verifyCmd.Flags().StringVar(&verifyCodec, "codec", "none", "compress at rest: none, zstd or lz4")
	rootCmd.AddCommand(verifyCmd)
}

func wrapCodec(store blobstore.Store, name string) (blobstore.Store, error) {
	switch name {
	case "", "none":
		return store, nil
	case "zstd":
		codec, err := blobstore.NewZstdCodec()
		if err != nil {
			return nil, err
		}
		return blobstore.NewCompressedStore(store, codec), nil
	case "lz4":
		return blobstore.NewCompressedStore(store, blobstore.NewLZ4Codec()), nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
