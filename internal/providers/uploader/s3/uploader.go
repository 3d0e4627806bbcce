// Package s3 uploads drift reports to an S3 bucket under a timestamped key,
// so repeated runs never overwrite each other and form an audit trail.
package s3

import (
	"bytes"
	"context"
	"errors"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/crmarques/driftscan/debugctx"
	"github.com/crmarques/driftscan/faults"
	"github.com/crmarques/driftscan/uploader"
)

// API is the subset of the S3 client used by this package.
type API interface {
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	CreateBucket(ctx context.Context, params *awss3.CreateBucketInput, optFns ...func(*awss3.Options)) (*awss3.CreateBucketOutput, error)
}

var _ uploader.ReportUploader = (*Uploader)(nil)

type Uploader struct {
	api    API
	bucket string
	prefix string
	now    func() time.Time
}

type Config struct {
	// Endpoint overrides the S3 endpoint, for LocalStack-style deployments.
	Endpoint        string
	Region          string
	Bucket          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
}

// New creates an Uploader backed by a real S3 client.
func New(ctx context.Context, cfg Config) (*Uploader, error) {
	loadOptions := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, faults.NewTypedError(faults.InternalError, "failed to load AWS configuration", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewFromAPI(client, cfg.Bucket, cfg.Prefix), nil
}

// NewFromAPI creates an Uploader from an explicit API implementation.
func NewFromAPI(api API, bucket string, prefix string) *Uploader {
	return &Uploader{
		api:    api,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

func (u *Uploader) UploadReport(ctx context.Context, reportPath string) (string, error) {
	content, err := os.ReadFile(reportPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", faults.NewTypedError(faults.NotFoundError, "report file not found: "+reportPath, err)
		}
		return "", faults.NewTypedError(faults.InternalError, "failed to read report file: "+reportPath, err)
	}

	if err := u.ensureBucket(ctx); err != nil {
		return "", err
	}

	key := u.prefix + "analysis_" + u.now().Format("2006/01/02/15-04-05") + ".json"
	debugctx.Printf(ctx, "uploading report to s3 bucket=%q key=%q", u.bucket, key)

	_, err = u.api.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"uploaded-at": u.now().UTC().Format(time.RFC3339),
			"source":      "driftscan",
			"upload-id":   uuid.NewString(),
		},
	})
	if err != nil {
		return "", faults.NewTypedError(faults.TransportError, "failed to upload report to s3", err)
	}

	return "s3://" + u.bucket + "/" + key, nil
}

// ensureBucket creates the bucket when it does not exist yet; init scripts
// for local object stores are not always reliable.
func (u *Uploader) ensureBucket(ctx context.Context) error {
	_, err := u.api.CreateBucket(ctx, &awss3.CreateBucketInput{
		Bucket: aws.String(u.bucket),
	})
	if err == nil {
		return nil
	}

	var alreadyOwned *s3types.BucketAlreadyOwnedByYou
	var alreadyExists *s3types.BucketAlreadyExists
	if errors.As(err, &alreadyOwned) || errors.As(err, &alreadyExists) {
		return nil
	}
	return faults.NewTypedError(faults.TransportError, "failed to create s3 bucket "+u.bucket, err)
}
