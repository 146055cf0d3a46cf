package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore archives conversation transcripts in an S3-compatible bucket.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

// NewObjectStore connects to MinIO and ensures the bucket exists.
func NewObjectStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*ObjectStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &ObjectStore{client: client, bucket: bucket}, nil
}

// PutTranscript uploads a serialized transcript under the conversation key.
func (o *ObjectStore) PutTranscript(ctx context.Context, conversationID string, payload []byte) (string, error) {
	key := transcriptKey(conversationID)
	_, err := o.client.PutObject(ctx, o.bucket, key, bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("put transcript: %w", err)
	}
	return key, nil
}

// RemoveTranscript deletes an archived transcript.
func (o *ObjectStore) RemoveTranscript(ctx context.Context, conversationID string) error {
	if err := o.client.RemoveObject(ctx, o.bucket, transcriptKey(conversationID), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove transcript: %w", err)
	}
	return nil
}

func transcriptKey(conversationID string) string {
	return "transcripts/" + conversationID + ".json"
}
