package checks

import (
	"context"
	"fmt"

	"cdn-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CheckBucket verifies the snapshot bucket exists. With fix set, a missing
// bucket is created in region.
func CheckBucket(ctx context.Context, client storage.Client, bucket, region string, fix bool, logger *zap.Logger) Result {
	const name = "storage"

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return failed(name, fmt.Errorf("failed to check bucket existence: %w", err))
	}
	if exists {
		return Result{Name: name, Status: StatusOK}
	}

	if !fix {
		return Result{
			Name:    name,
			Status:  StatusError,
			Detail:  fmt.Sprintf("bucket %s does not exist", bucket),
			Missing: []string{bucket},
		}
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		res := failed(name, err)
		res.Missing = []string{bucket}
		return res
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return Result{Name: name, Status: StatusFixed, Missing: []string{bucket}}
}
