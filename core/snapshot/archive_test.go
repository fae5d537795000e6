package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"cdn-manager/core/faults"
	"cdn-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// listing yields names one minute apart, oldest first.
func listing(names ...string) <-chan minio.ObjectInfo {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	objs := make([]minio.ObjectInfo, len(names))
	for i, name := range names {
		objs[i] = minio.ObjectInfo{Key: name, Size: 10, LastModified: base.Add(time.Duration(i) * time.Minute)}
	}
	return mocks.Objects(objs...)
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "snapshots/a1b2/origin/web.example.com/run-1.json", ObjectName("a1b2", "origin", "web.example.com", "run-1"))
	assert.Equal(t, "snapshots/_/origin/a_b/r.json", ObjectName("", "origin", "a/b", "r"))
}

func TestEnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "snaps").Return(true, nil)

		require.NoError(t, New(client, "snaps", 0, nil).EnsureBucket(context.Background()))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "snaps").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "snaps", mock.Anything).Return(nil)

		require.NoError(t, New(client, "snaps", 0, nil).EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "snaps").Return(false, errors.New("denied"))

		err := New(client, "snaps", 0, nil).EnsureBucket(context.Background())
		assert.ErrorContains(t, err, "denied")
	})
}

func TestSave(t *testing.T) {
	client := new(mocks.Client)
	name := "snapshots/acc/origin/web.example.com/run-1.json"
	client.On("PutObject", mock.Anything, "snaps", name, mock.Anything, mock.Anything, mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "application/json"
	})).Return(minio.UploadInfo{}, nil).Run(func(args mock.Arguments) {
		data, err := io.ReadAll(args.Get(3).(io.Reader))
		require.NoError(t, err)
		assert.JSONEq(t, `{"hostname":"web.example.com","port":80}`, string(data))
		assert.Equal(t, int64(len(data)), args.Get(4).(int64))
	})

	archive := New(client, "snaps", 0, nil)
	got, err := archive.Save(context.Background(), "acc", "origin", "web.example.com", "run-1", map[string]any{"hostname": "web.example.com", "port": 80})
	require.NoError(t, err)
	assert.Equal(t, name, got)
	client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestSave_PrunesOldSnapshots(t *testing.T) {
	client := new(mocks.Client)
	prefix := "snapshots/acc/origin/web/"
	client.On("PutObject", mock.Anything, "snaps", prefix+"r4.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "snaps", minio.ListObjectsOptions{Prefix: prefix, Recursive: true}).
		Return(listing(prefix+"r1.json", prefix+"r2.json", prefix+"r3.json", prefix+"r4.json"))

	var removed []string
	client.On("RemoveObjects", mock.Anything, "snaps", mock.Anything, mock.Anything).
		Return(mocks.RemoveErrors()).
		Run(func(args mock.Arguments) {
			for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
				removed = append(removed, obj.Key)
			}
		})

	archive := New(client, "snaps", 2, nil)
	_, err := archive.Save(context.Background(), "acc", "origin", "web", "r4", map[string]any{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{prefix + "r1.json", prefix + "r2.json"}, removed)
}

func TestSave_PruneFailureKeepsSnapshot(t *testing.T) {
	client := new(mocks.Client)
	prefix := "snapshots/acc/origin/web/"
	client.On("PutObject", mock.Anything, "snaps", prefix+"r3.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "snaps", mock.Anything).
		Return(listing(prefix+"r1.json", prefix+"r2.json", prefix+"r3.json"))
	client.On("RemoveObjects", mock.Anything, "snaps", mock.Anything, mock.Anything).
		Return(mocks.RemoveErrors(minio.RemoveObjectError{ObjectName: prefix + "r1.json", Err: errors.New("access denied")}))

	core, logs := observer.New(zap.WarnLevel)
	archive := New(client, "snaps", 1, zap.New(core))

	name, err := archive.Save(context.Background(), "acc", "origin", "web", "r3", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, prefix+"r3.json", name)

	entries := logs.FilterMessage("Failed to prune snapshots").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "access denied")
}

func TestPrune_ReturnsRemoveError(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "snaps", mock.Anything).Return(listing("a", "b", "c"))

	var removeCtx context.Context
	client.On("RemoveObjects", mock.Anything, "snaps", mock.Anything, mock.Anything).
		Return(mocks.RemoveErrors(
			minio.RemoveObjectError{ObjectName: "a", Err: errors.New("access denied")},
			minio.RemoveObjectError{ObjectName: "b", Err: errors.New("access denied")},
		)).
		Run(func(args mock.Arguments) { removeCtx = args.Get(0).(context.Context) })

	removed, err := New(client, "snaps", 1, nil).Prune(context.Background(), "acc", "origin", "web")
	assert.ErrorContains(t, err, "access denied")
	assert.Zero(t, removed)
	require.NotNil(t, removeCtx)
	assert.ErrorIs(t, removeCtx.Err(), context.Canceled)
}

func TestList_StopsOnListingError(t *testing.T) {
	client := new(mocks.Client)
	var listCtx context.Context
	client.On("ListObjects", mock.Anything, "snaps", mock.Anything).
		Return(mocks.Objects(
			minio.ObjectInfo{Key: "a"},
			minio.ObjectInfo{Err: errors.New("access denied")},
			minio.ObjectInfo{Key: "b"},
		)).
		Run(func(args mock.Arguments) { listCtx = args.Get(0).(context.Context) })

	entries, err := New(client, "snaps", 0, nil).List(context.Background(), "acc", "origin", "web")
	assert.ErrorContains(t, err, "access denied")
	assert.Nil(t, entries)
	require.NotNil(t, listCtx)
	assert.ErrorIs(t, listCtx.Err(), context.Canceled)
}

func TestList_NewestFirst(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "snaps", mock.Anything).Return(listing("a", "b", "c"))

	entries, err := New(client, "snaps", 0, nil).List(context.Background(), "acc", "origin", "web")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].Name)
	assert.Equal(t, "a", entries[2].Name)
}

func TestLoad(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "snaps", "snap.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"hostname":"web"}`)), nil)
	client.On("GetObject", mock.Anything, "snaps", "missing.json", mock.Anything).
		Return(nil, fmt.Errorf("object missing.json: %w", faults.ErrNotFound))

	archive := New(client, "snaps", 0, nil)

	state, err := archive.Load(context.Background(), "snap.json")
	require.NoError(t, err)
	assert.Equal(t, "web", state["hostname"])

	_, err = archive.Load(context.Background(), "missing.json")
	assert.ErrorIs(t, err, faults.ErrNotFound)
}
