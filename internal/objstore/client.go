// Package objstore adapts the AWS S3 SDK to the few object operations the
// frame workflow needs. The same client works against MinIO by pointing
// BaseEndpoint at it and forcing path-style addressing.
package objstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dpanagushin/framestore/internal/config"
	"github.com/dpanagushin/framestore/internal/logger"
)

// Client is the object store surface used by the frame service and the drift
// reconciler.
type Client interface {
	// BucketExists reports whether the bucket is present.
	BucketExists(ctx context.Context, bucket string) (bool, error)

	// MakeBucket creates the bucket. Creating a bucket this client already
	// owns is not an error, so concurrent uploads racing on the same day
	// bucket all succeed.
	MakeBucket(ctx context.Context, bucket string) error

	// PutObject stores content under the given object name.
	PutObject(ctx context.Context, bucket string, object string, content []byte) error

	// RemoveObject deletes one object. Removing a missing object is not an
	// error, matching S3 semantics.
	RemoveObject(ctx context.Context, bucket string, object string) error

	// ListObjects returns the names of every object in the bucket. A missing
	// bucket yields an empty slice.
	ListObjects(ctx context.Context, bucket string) ([]string, error)
}

// s3Client implements [Client] over the AWS SDK.
type s3Client struct {
	logger *logger.Logger
	client *s3.Client
}

// NewS3Client builds an S3 client from static credentials and a custom
// endpoint. Path-style addressing is required for MinIO, which does not serve
// virtual-host bucket URLs.
func NewS3Client(ctx context.Context, cfg config.S3, log *logger.Logger) (Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "")))
	if err != nil {
		log.Err(err).Str("func", "NewS3Client").Msg("error loading object store config")
		return nil, fmt.Errorf("error loading object store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})
	log.Info().Str("func", "NewS3Client").Str("endpoint", cfg.Endpoint).Msg("object store client created")

	return &s3Client{logger: log, client: client}, nil
}

func (c *s3Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	log := logger.FromContext(ctx)

	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		log.Err(err).Str("func", "*s3Client.BucketExists").Str("bucket", bucket).Msg("error: head bucket failed")
		return false, fmt.Errorf("head bucket %q: %w", bucket, err)
	}

	return true, nil
}

func (c *s3Client) MakeBucket(ctx context.Context, bucket string) error {
	log := logger.FromContext(ctx)

	_, err := c.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		var exists *types.BucketAlreadyExists
		if errors.As(err, &owned) || errors.As(err, &exists) {
			return nil
		}
		log.Err(err).Str("func", "*s3Client.MakeBucket").Str("bucket", bucket).Msg("error: create bucket failed")
		return fmt.Errorf("create bucket %q: %w", bucket, err)
	}
	log.Debug().Str("func", "*s3Client.MakeBucket").Str("bucket", bucket).Msg("bucket created")

	return nil
}

func (c *s3Client) PutObject(ctx context.Context, bucket string, object string, content []byte) error {
	log := logger.FromContext(ctx)

	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(object),
		Body:   bytes.NewReader(content),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3Client.PutObject").
			Str("bucket", bucket).Str("object", object).
			Msg("error: put object failed")
		return fmt.Errorf("put object %q/%q: %w", bucket, object, err)
	}

	return nil
}

func (c *s3Client) RemoveObject(ctx context.Context, bucket string, object string) error {
	log := logger.FromContext(ctx)

	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(object),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3Client.RemoveObject").
			Str("bucket", bucket).Str("object", object).
			Msg("error: delete object failed")
		return fmt.Errorf("delete object %q/%q: %w", bucket, object, err)
	}

	return nil
}

func (c *s3Client) ListObjects(ctx context.Context, bucket string) ([]string, error) {
	log := logger.FromContext(ctx)

	exists, err := c.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	var names []string
	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			log.Err(err).Str("func", "*s3Client.ListObjects").Str("bucket", bucket).Msg("error: list objects failed")
			return nil, fmt.Errorf("list objects %q: %w", bucket, err)
		}
		for _, object := range page.Contents {
			names = append(names, aws.ToString(object.Key))
		}
	}

	return names, nil
}
