package recipes

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"worldcraft/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ActionType is what publishing does with one object.
type ActionType string

const (
	// ActionUpload writes a new or changed definition.
	ActionUpload ActionType = "upload"
	// ActionUnchanged skips a definition whose ETag already matches.
	ActionUnchanged ActionType = "unchanged"
	// ActionStale reports a remote definition with no local counterpart.
	// Stale objects are never deleted.
	ActionStale ActionType = "stale"
)

// Action is one planned publish step.
type Action struct {
	Type   ActionType `json:"type"`
	Key    string     `json:"key"`
	Reason string     `json:"reason"`

	body []byte
}

// PublishSummary counts actions per type.
type PublishSummary struct {
	Uploads   int `json:"uploads"`
	Unchanged int `json:"unchanged"`
	Stale     int `json:"stale"`
}

// PublishPlan is computed before anything is written.
type PublishPlan struct {
	CreateBucket bool           `json:"create_bucket"`
	Actions      []Action       `json:"actions"`
	Summary      PublishSummary `json:"summary"`
}

// Publisher mirrors local definitions into the storage bucket.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewPublisher creates a publisher writing under prefix.
func NewPublisher(client storage.Client, bucket, prefix string, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: storage.Prefix(prefix), logger: logger}
}

// Plan compares the documents against the bucket. Objects are matched by
// key and by MD5, which is the ETag of a single-part upload.
func (p *Publisher) Plan(ctx context.Context, docs []Document) (*PublishPlan, error) {
	plan := &PublishPlan{}

	remote := make(map[string]string)
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		plan.CreateBucket = true
	} else {
		objects, err := storage.List(ctx, p.client, p.bucket, p.prefix)
		if err != nil {
			return nil, err
		}
		for _, obj := range objects {
			if _, _, ok := splitKey(strings.TrimPrefix(obj.Key, p.prefix)); ok {
				remote[obj.Key] = strings.Trim(obj.ETag, `"`)
			}
		}
	}

	for _, doc := range docs {
		key := storage.ObjectKey(p.prefix, doc.Category, doc.Name)
		sum := md5.Sum(doc.Body)
		etag, found := remote[key]
		delete(remote, key)

		switch {
		case !found:
			plan.add(Action{Type: ActionUpload, Key: key, Reason: "new definition", body: doc.Body})
		case etag != hex.EncodeToString(sum[:]):
			plan.add(Action{Type: ActionUpload, Key: key, Reason: "content changed", body: doc.Body})
		default:
			plan.add(Action{Type: ActionUnchanged, Key: key, Reason: "etag matches"})
		}
	}

	for _, key := range sortedKeys(remote) {
		plan.add(Action{Type: ActionStale, Key: key, Reason: "no local definition"})
	}
	return plan, nil
}

func (pl *PublishPlan) add(a Action) {
	pl.Actions = append(pl.Actions, a)
	switch a.Type {
	case ActionUpload:
		pl.Summary.Uploads++
	case ActionUnchanged:
		pl.Summary.Unchanged++
	case ActionStale:
		pl.Summary.Stale++
	}
}

// Apply executes the uploads of a plan, at most four at a time, and returns
// how many objects were written.
func (p *Publisher) Apply(ctx context.Context, plan *PublishPlan) (int, error) {
	if plan.CreateBucket {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return 0, fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
		p.logger.Info("Bucket created", zap.String("bucket", p.bucket))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	uploads := 0
	for _, a := range plan.Actions {
		if a.Type != ActionUpload {
			continue
		}
		uploads++
		g.Go(func() error {
			_, err := p.client.PutObject(gctx, p.bucket, a.Key, bytes.NewReader(a.body), int64(len(a.body)),
				minio.PutObjectOptions{ContentType: "application/json"})
			if err != nil {
				return fmt.Errorf("failed to upload %s: %w", a.Key, err)
			}
			p.logger.Debug("Definition uploaded", zap.String("key", a.Key))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return uploads, nil
}
