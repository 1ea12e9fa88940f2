package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hupe1980/fftwgo/blobstore"
	minioblob "github.com/hupe1980/fftwgo/blobstore/minio"
	s3blob "github.com/hupe1980/fftwgo/blobstore/s3"
)

// openStore resolves a store URL:
//
//	file:///var/lib/wisdom
//	s3://bucket/prefix
//	minio://host:port/bucket/prefix
func (a *app) openStore(ctx context.Context, raw string) (blobstore.Store, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid store URL %q: %w", raw, err)
	}

	var store blobstore.Store
	switch u.Scheme {
	case "file":
		if u.Path == "" {
			return nil, fmt.Errorf("invalid store URL %q: missing directory", raw)
		}
		store = blobstore.NewLocalStore(u.Path)

	case "s3":
		if u.Host == "" {
			return nil, fmt.Errorf("invalid store URL %q: missing bucket", raw)
		}
		opts := []s3blob.Option{s3blob.WithPrefix(strings.TrimPrefix(u.Path, "/"))}
		if region := a.v.GetString(keyS3Region); region != "" {
			opts = append(opts, s3blob.WithRegion(region))
		}
		if endpoint := a.v.GetString(keyS3Endpoint); endpoint != "" {
			opts = append(opts, s3blob.WithEndpoint(endpoint))
		}
		store, err = s3blob.New(ctx, u.Host, opts...)
		if err != nil {
			return nil, err
		}

	case "minio":
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" {
			return nil, fmt.Errorf("invalid store URL %q: want minio://host:port/bucket/prefix", raw)
		}
		store, err = minioblob.Dial(u.Host,
			a.v.GetString(keyMinioKey),
			a.v.GetString(keyMinioSec),
			a.v.GetBool(keyMinioTLS),
			bucket, prefix,
		)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unsupported store scheme %q", u.Scheme)
	}

	if limit := a.v.GetInt(keyRateLimit); limit > 0 {
		store = blobstore.NewThrottledStore(store, limit)
	}
	return store, nil
}
