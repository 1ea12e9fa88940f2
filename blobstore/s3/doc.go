// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("wisdom/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = wisdom.Publish(ctx, fftwgo.Double(), store, "double.wisdom")
//
// # Features
//
//   - CRC32C integrity validation on upload
//   - Multipart uploads above a configurable threshold
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Custom endpoints for S3-compatible services
package s3
