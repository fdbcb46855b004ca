package inventory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"inventory-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher uploads written report files to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	region string
	logger *zap.Logger
}

// NewPublisher creates a publisher for the configured bucket and prefix.
func NewPublisher(client storage.Client, cfg storage.Config, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		region: cfg.Region,
		logger: logger,
	}
}

// ObjectName returns the key of a report file for one run.
func (p *Publisher) ObjectName(runID, file string) string {
	return path.Join(p.prefix, runID, file)
}

// Publish uploads every file from dir under <prefix>/<runID>/. The bucket is
// created when missing. A failed upload does not stop the others; the
// returned error joins all failures.
func (p *Publisher) Publish(ctx context.Context, runID, dir string, files []string) ([]string, error) {
	if err := p.ensureBucket(ctx); err != nil {
		return nil, err
	}

	var uploaded []string
	var errs []error
	for _, file := range files {
		key := p.ObjectName(runID, file)
		if err := p.upload(ctx, filepath.Join(dir, file), key); err != nil {
			p.logger.Error("Failed to publish report", zap.String("object", key), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		p.logger.Info("Report published", zap.String("bucket", p.bucket), zap.String("object", key))
		uploaded = append(uploaded, key)
	}
	return uploaded, errors.Join(errs...)
}

func (p *Publisher) ensureBucket(ctx context.Context) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{Region: p.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
	}
	p.logger.Info("Created bucket", zap.String("bucket", p.bucket))
	return nil
}

func (p *Publisher) upload(ctx context.Context, src, key string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	_, err = p.client.PutObject(ctx, p.bucket, key, f, info.Size(), minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
