// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides an S3-compatible object storage client for
// uploading, deleting, and serving media files. It wraps the AWS SDK v2
// and is configured for path-style access (required by CEPH/Hetzner).
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Client wraps an S3 client for media operations on two public buckets:
// one for images and general uploads, one for project showcase videos.
type Client struct {
	s3          *s3.Client
	mediaBucket string
	videoBucket string
	endpoint    string
	publicURL   string // optional CDN/direct URL for public files
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) if endpoint or credentials are empty, allowing the app to
// start without storage (uploads disabled, pasted URLs still work).
func New(endpoint, region, accessKey, secretKey, mediaBucket, videoBucket, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:          s3Client,
		mediaBucket: mediaBucket,
		videoBucket: videoBucket,
		endpoint:    endpoint,
		publicURL:   strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores an object in the specified bucket with public-read ACL —
// both buckets serve the marketing site directly.
func (c *Client) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Delete removes an object from the specified bucket.
func (c *Client) Delete(ctx context.Context, bucket, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// FileURL returns the public URL for an object. Uses the configured public
// URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(bucket, key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + bucket + "/" + key
	}
	return c.endpoint + "/" + bucket + "/" + key
}

// MediaBucket returns the name of the images/general bucket.
func (c *Client) MediaBucket() string {
	return c.mediaBucket
}

// VideoBucket returns the name of the project videos bucket.
func (c *Client) VideoBucket() string {
	return c.videoBucket
}

// ObjectKey builds a storage key following the {category}/{timestamp}-{random}.{ext}
// convention. ext is passed with its leading dot ("" for none).
func ObjectKey(category, ext string) string {
	b := make([]byte, 4)
	// crypto/rand.Read always fills the buffer and never returns an error.
	rand.Read(b)
	return fmt.Sprintf("%s/%d-%s%s", category, time.Now().UnixMilli(), hex.EncodeToString(b), ext)
}

// ExtractKey extracts the bucket and object key from a public file URL.
// Returns ("", "", false) if the URL doesn't belong to this storage —
// pasted external URLs are left alone on record delete.
func (c *Client) ExtractKey(rawURL string) (bucket, key string, ok bool) {
	for _, b := range []string{c.mediaBucket, c.videoBucket} {
		if c.publicURL != "" {
			prefix := c.publicURL + "/" + b + "/"
			if strings.HasPrefix(rawURL, prefix) {
				return b, rawURL[len(prefix):], true
			}
		}
		prefix := c.endpoint + "/" + b + "/"
		if strings.HasPrefix(rawURL, prefix) {
			return b, rawURL[len(prefix):], true
		}
	}
	return "", "", false
}
