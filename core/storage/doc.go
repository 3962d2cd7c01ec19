// Package storage wraps the MinIO client used to read and publish recipe
// definition documents in S3-compatible object storage.
//
// Documents live under a prefix, one object per recipe:
//
//	recipes/<category>/<name>.json
//
// The Client interface covers only the calls the bucket source and the
// publish command make, which keeps the testify mock in core/storage/mocks
// small.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
