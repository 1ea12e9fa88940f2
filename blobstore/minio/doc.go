// Package minio provides a blobstore.Store implementation using the MinIO client.
//
// The MinIO client works with MinIO and other S3-compatible systems such as
// Ceph, SeaweedFS and Garage, without pulling in the AWS SDK.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "wisdom/")
//	err = wisdom.Fetch(ctx, fftwgo.Double(), store, wisdom.DefaultName(native.Double))
//
// Use Dial to build the client from an endpoint and static credentials.
package minio
