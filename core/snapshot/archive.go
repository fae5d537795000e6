package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"cdn-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const rootPrefix = "snapshots"

// Entry describes one stored snapshot.
type Entry struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Archive writes snapshots to one bucket.
type Archive struct {
	client storage.Client
	bucket string
	retain int
	logger *zap.Logger
}

// New builds an archive. retain <= 0 keeps every snapshot. A nil logger discards
// prune failures.
func New(client storage.Client, bucket string, retain int, logger *zap.Logger) *Archive {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Archive{client: client, bucket: bucket, retain: retain, logger: logger}
}

// Prefix returns the object prefix holding the snapshots of one resource.
func Prefix(account, kind, key string) string {
	return path.Join(rootPrefix, segment(account), segment(kind), segment(key)) + "/"
}

// ObjectName returns the object a run's snapshot is written to.
func ObjectName(account, kind, key, runID string) string {
	return Prefix(account, kind, key) + segment(runID) + ".json"
}

func segment(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "_"
	}
	return strings.NewReplacer("/", "_", "\\", "_").Replace(s)
}

// EnsureBucket creates the bucket if it does not exist.
func (a *Archive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// Save stores state and prunes older snapshots of the same resource. Once the
// upload succeeds the snapshot is saved; a failed prune is only logged.
func (a *Archive) Save(ctx context.Context, account, kind, key, runID string, state map[string]any) (string, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	name := ObjectName(account, kind, key, runID)
	_, err = a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", name, err)
	}

	if a.retain > 0 {
		if _, err := a.Prune(ctx, account, kind, key); err != nil {
			a.logger.Warn("Failed to prune snapshots",
				zap.String("bucket", a.bucket),
				zap.String("prefix", Prefix(account, kind, key)),
				zap.Error(err))
		}
	}
	return name, nil
}

// List returns the snapshots of a resource, newest first.
func (a *Archive) List(ctx context.Context, account, kind, key string) ([]Entry, error) {
	// Cancelling stops the listing goroutine when we return early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var entries []Entry
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    Prefix(account, kind, key),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		entries = append(entries, Entry{Name: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastModified.After(entries[j].LastModified)
	})
	return entries, nil
}

// Load reads one snapshot back.
func (a *Archive) Load(ctx context.Context, name string) (map[string]any, error) {
	reader, err := a.client.GetObject(ctx, a.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot %s: %w", name, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}

	var state map[string]any
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", name, err)
	}
	return state, nil
}

// Prune removes all but the newest retained snapshots of a resource and returns
// how many were removed.
func (a *Archive) Prune(ctx context.Context, account, kind, key string) (int, error) {
	entries, err := a.List(ctx, account, kind, key)
	if err != nil {
		return 0, err
	}
	if a.retain <= 0 || len(entries) <= a.retain {
		return 0, nil
	}

	stale := entries[a.retain:]
	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, entry := range stale {
		objectsCh <- minio.ObjectInfo{Key: entry.Name}
	}
	close(objectsCh)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for removeErr := range a.client.RemoveObjects(ctx, a.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		return 0, fmt.Errorf("failed to remove snapshot %s: %w", removeErr.ObjectName, removeErr.Err)
	}
	return len(stale), nil
}
