// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package storage keeps attachment bytes in S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Options configures an S3 client.
type Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// PublicURL is an optional CDN prefix; path-style endpoint URLs are used otherwise.
	PublicURL string
}

// Enabled reports whether enough settings are present to talk to S3.
func (o Options) Enabled() bool {
	return o.Endpoint != "" && o.Bucket != "" && o.AccessKey != "" && o.SecretKey != ""
}

// S3 stores public objects in a single bucket using path-style addressing.
type S3 struct {
	client    *s3.Client
	bucket    string
	endpoint  string
	publicURL string
}

// NewS3 creates a client. It returns (nil, nil) when options are incomplete,
// letting the server start without upload support.
func NewS3(options Options) (*S3, error) {
	if !options.Enabled() {
		return nil, nil
	}

	endpoint := strings.TrimRight(options.Endpoint, "/")

	client := s3.New(s3.Options{
		Region:       options.Region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(options.AccessKey, options.SecretKey, ""),
		UsePathStyle: true,
	})

	return &S3{
		client:    client,
		bucket:    options.Bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(options.PublicURL, "/"),
	}, nil
}

// Put uploads data under key with public-read ACL and returns its public URL.
func (c *S3) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return c.URL(key), nil
}

// Delete removes the object stored under key.
func (c *S3) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// URL returns the public URL of key.
func (c *S3) URL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}
