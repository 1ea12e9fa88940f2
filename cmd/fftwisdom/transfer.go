package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hupe1980/fftwgo/wisdom"
)

// storeFlags registers the flags shared by push and pull.
func storeFlags(fs *pflag.FlagSet) {
	fs.String(keyStore, "", "store URL (file:///dir, s3://bucket/prefix, minio://host:port/bucket/prefix)")
	fs.String(keyName, "", "blob name (default: <precision>.wisdom)")
	fs.Int(keyRateLimit, 0, "transfer limit in bytes per second (0 disables)")
	fs.String(keyS3Region, "", "S3 region override")
	fs.String(keyS3Endpoint, "", "S3-compatible endpoint URL")
	fs.String(keyMinioKey, "", "MinIO access key")
	fs.String(keyMinioSec, "", "MinIO secret key")
	fs.Bool(keyMinioTLS, false, "use HTTPS for MinIO")
}

func (a *app) blobName() string {
	if name := a.v.GetString(keyName); name != "" {
		return name
	}
	return wisdom.DefaultName(a.domain.Precision())
}

func (a *app) storeURL() (string, error) {
	raw := a.v.GetString(keyStore)
	if raw == "" {
		return "", errors.New("--store is required")
	}
	return raw, nil
}

func (a *app) pushCmd() *cobra.Command {
	var compression string

	cmd := &cobra.Command{
		Use:   "push FILE --store URL",
		Short: "Publish a wisdom file to a store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := wisdom.ParseCompression(compression)
			if !ok {
				return fmt.Errorf("invalid compression %q", compression)
			}
			raw, err := a.storeURL()
			if err != nil {
				return err
			}
			store, err := a.openStore(cmd.Context(), raw)
			if err != nil {
				return err
			}

			if err := a.domain.ImportWisdom(args[0]); err != nil {
				return err
			}
			name := a.blobName()
			if err := wisdom.Publish(cmd.Context(), a.domain, store, name, wisdom.WithCompression(c)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pushed %s to %s as %s\n", args[0], raw, name)
			return nil
		},
	}

	storeFlags(cmd.Flags())
	cmd.Flags().StringVar(&compression, "compression", "zstd", "envelope compression: none, lz4, zstd")
	return cmd
}

func (a *app) pullCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pull --store URL -o FILE",
		Short: "Fetch wisdom from a store into a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.storeURL()
			if err != nil {
				return err
			}
			store, err := a.openStore(cmd.Context(), raw)
			if err != nil {
				return err
			}

			name := a.blobName()
			if err := wisdom.Fetch(cmd.Context(), a.domain, store, name); err != nil {
				return err
			}
			if err := a.domain.ExportWisdom(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pulled %s from %s to %s\n", name, raw, output)
			return nil
		},
	}

	storeFlags(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "wisdom file to write")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
