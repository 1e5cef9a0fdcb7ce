package repositoryImp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"garden/pkg/garden/repository"
)

// S3API is the part of *s3.Client the backing needs.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional, e.g. MinIO
	PathStyle bool
}

type s3Backing struct {
	client S3API
	bucket string
	key    string
}

// NewS3Client builds an s3 client from the default AWS credential chain.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func NewS3(client S3API, bucket, key string) repository.Backing {
	return &s3Backing{client: client, bucket: bucket, key: key}
}

func (b *s3Backing) Name() string { return "s3://" + b.bucket + "/" + b.key }

func (b *s3Backing) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(b.bucket), Key: aws.String(b.key)})
	if err != nil {
		var nsk *s3types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("get %s: %w", b.Name(), fs.ErrNotExist)
		}
		return nil, fmt.Errorf("get %s: %w", b.Name(), err)
	}
	return out.Body, nil
}

// Ping issues a HEAD for the object. HEAD responses carry no error body, so a
// missing key surfaces as NotFound rather than NoSuchKey.
func (b *s3Backing) Ping(ctx context.Context) error {
	_, err := b.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: aws.String(b.bucket), Key: aws.String(b.key)})
	if err != nil {
		var nf *s3types.NotFound
		var nsk *s3types.NoSuchKey
		if errors.As(err, &nf) || errors.As(err, &nsk) {
			return fmt.Errorf("head %s: %w", b.Name(), fs.ErrNotExist)
		}
		return fmt.Errorf("head %s: %w", b.Name(), err)
	}
	return nil
}

func (b *s3Backing) Create(ctx context.Context) (io.WriteCloser, error) {
	return &bufferedWriter{commit: func(body []byte) error {
		_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(b.bucket),
			Key:         aws.String(b.key),
			Body:        bytes.NewReader(body),
			ContentType: aws.String("text/plain; charset=utf-8"),
		})
		if err != nil {
			return fmt.Errorf("put %s: %w", b.Name(), err)
		}
		return nil
	}}, nil
}
