// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the publish
// command needs: checking and creating the target bucket, and uploading report
// files. Both AWS S3 and self-hosted MinIO instances are supported.
//
// The interface exists so that publishing can be unit tested with the mock in
// core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
