package recipes

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"testing"

	"worldcraft/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func etag(body string) string {
	sum := md5.Sum([]byte(body))
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

func TestPublisher_Plan(t *testing.T) {
	unchanged := `{"input":{"block":"stone"}}`
	docs := []Document{
		doc("block_explode", "cobble", unchanged),
		doc("block_explode", "glass", `{"input":{"block":"sand"},"output":{"block":"glass"}}`),
		doc("item_lightning", "charge", `{"input":{"item":"iron_ingot"}}`),
	}

	ch := make(chan minio.ObjectInfo, 3)
	ch <- minio.ObjectInfo{Key: "recipes/block_explode/cobble.json", ETag: etag(unchanged)}
	ch <- minio.ObjectInfo{Key: "recipes/block_explode/glass.json", ETag: etag("old body")}
	ch <- minio.ObjectInfo{Key: "recipes/item_explode/gone.json", ETag: etag("x")}
	close(ch)

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "recipes").Return(true, nil)
	client.On("ListObjects", mock.Anything, "recipes", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	plan, err := NewPublisher(client, "recipes", "recipes/", zap.NewNop()).Plan(context.Background(), docs)
	require.NoError(t, err)

	assert.False(t, plan.CreateBucket)
	assert.Equal(t, PublishSummary{Uploads: 2, Unchanged: 1, Stale: 1}, plan.Summary)

	byKey := map[string]Action{}
	for _, a := range plan.Actions {
		byKey[a.Key] = a
	}
	assert.Equal(t, ActionUnchanged, byKey["recipes/block_explode/cobble.json"].Type)
	assert.Equal(t, "content changed", byKey["recipes/block_explode/glass.json"].Reason)
	assert.Equal(t, "new definition", byKey["recipes/item_lightning/charge.json"].Reason)
	assert.Equal(t, ActionStale, byKey["recipes/item_explode/gone.json"].Type)
}

func TestPublisher_Apply(t *testing.T) {
	body := `{"input":{"block":"stone"}}`
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "recipes").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "recipes", minio.MakeBucketOptions{}).Return(nil)
	client.On("PutObject", mock.Anything, "recipes", "recipes/block_explode/cobble.json", mock.Anything, int64(len(body)), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	pub := NewPublisher(client, "recipes", "recipes/", zap.NewNop())
	plan, err := pub.Plan(context.Background(), []Document{doc("block_explode", "cobble", body)})
	require.NoError(t, err)
	assert.True(t, plan.CreateBucket)

	n, err := pub.Apply(context.Background(), plan)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	client.AssertExpectations(t)
	client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublisher_ApplyFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("quota"))

	plan := &PublishPlan{}
	plan.add(Action{Type: ActionUpload, Key: "recipes/block_explode/cobble.json", body: []byte(`{}`)})
	plan.add(Action{Type: ActionStale, Key: "recipes/block_explode/old.json"})

	_, err := NewPublisher(client, "recipes", "recipes/", zap.NewNop()).Apply(context.Background(), plan)
	assert.ErrorContains(t, err, "quota")
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}
