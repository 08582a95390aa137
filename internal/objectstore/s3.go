// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/models"
)

// Swappable in tests.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// r2EndpointFormat is the S3 endpoint of an R2 account.
const r2EndpointFormat = "https://%s.r2.cloudflarestorage.com"

type s3Store struct {
	client  *s3.Client
	presign *s3.PresignClient

	bucket    string
	publicURL string
	expiry    time.Duration
	now       func() time.Time

	logger *logger.Logger
}

// NewS3Store builds an [ObjectStore] over the bucket described by cfg using
// static credentials and path-style addressing.
func NewS3Store(ctx context.Context, cfg config.Objects, log *logger.Logger) (ObjectStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrInvalidObjectConfig)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" && cfg.AccountID != "" {
		endpoint = fmt.Sprintf(r2EndpointFormat, cfg.AccountID)
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3Store").Msg("error loading object store config")
		return nil, fmt.Errorf("%w: %w", ErrInvalidObjectConfig, err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" && endpoint != "" {
		publicURL = strings.TrimRight(endpoint, "/") + "/" + cfg.Bucket
	}

	log.Debug().Str("func", "NewS3Store").Str("bucket", cfg.Bucket).Str("endpoint", endpoint).Msg("object store created")

	return &s3Store{
		client:    client,
		presign:   newS3PresignClient(client),
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		expiry:    cfg.PresignExpiry,
		now:       time.Now,
		logger:    log,
	}, nil
}

func (s *s3Store) Put(ctx context.Context, object Object) error {
	if object.Key == "" {
		return ErrEmptyKey
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(object.Key),
		Body:          bytes.NewReader(object.Body),
		ContentLength: aws.Int64(int64(len(object.Body))),
		ContentType:   aws.String(object.ContentType),
		Metadata:      object.Metadata,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3Store.Put").Str("key", object.Key).Msg("error uploading object")
		return fmt.Errorf("%w: %w", ErrObjectStoreUnavailable, err)
	}

	return nil
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3Store.Delete").Str("key", key).Msg("error deleting object")
		return fmt.Errorf("%w: %w", ErrObjectStoreUnavailable, err)
	}

	return nil
}

func (s *s3Store) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}

	logger.FromContext(ctx).Err(err).Str("func", "*s3Store.Exists").Str("key", key).Msg("error checking object")
	return false, fmt.Errorf("%w: %w", ErrObjectStoreUnavailable, err)
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NotFound", "NoSuchKey":
		return true
	}
	return false
}

func (s *s3Store) PresignPut(ctx context.Context, key, contentType string) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, ErrEmptyKey
	}

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	expiresAt := s.now().Add(s.expiry).UTC()
	req, err := presignPutObject(s.presign, ctx, in, s3.WithPresignExpires(s.expiry))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3Store.PresignPut").Str("key", key).Msg("error presigning upload")
		return "", time.Time{}, fmt.Errorf("%w: %w", ErrObjectStoreUnavailable, err)
	}

	return req.URL, expiresAt, nil
}

func (s *s3Store) List(ctx context.Context, prefix string, limit int32) ([]models.ObjectInfo, error) {
	in := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		MaxKeys: aws.Int32(limit),
	}
	if prefix != "" {
		in.Prefix = aws.String(prefix)
	}

	out, err := s.client.ListObjectsV2(ctx, in)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3Store.List").Msg("error listing objects")
		return nil, fmt.Errorf("%w: %w", ErrObjectStoreUnavailable, err)
	}

	objects := make([]models.ObjectInfo, 0, len(out.Contents))
	for _, o := range out.Contents {
		key := aws.ToString(o.Key)
		objects = append(objects, models.ObjectInfo{
			Key:          key,
			Size:         aws.ToInt64(o.Size),
			LastModified: aws.ToTime(o.LastModified).UTC(),
			URL:          s.PublicURL(key),
		})
	}

	return objects, nil
}

func (s *s3Store) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}
