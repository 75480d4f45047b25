// Package s3 реализует хранилище объектов в S3-совместимом бакете (AWS S3, R2, MinIO).
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/iudanet/lightnotes/internal/server/storage"
)

// Config параметры подключения к бакету
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // пусто для AWS; для R2/MinIO адрес API с path-style
	AccessKey string // пусто: креды из окружения AWS
	SecretKey string
}

// Storage хранит объекты в бакете
type Storage struct {
	client *s3.Client
	bucket string
}

// Compile-time check
var _ storage.ObjectStorage = (*Storage)(nil)

// New создает клиент S3 по конфигурации
func New(ctx context.Context, cfg Config) (*Storage, error) {
	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			MaxIdleConns:          50,
			MaxIdleConnsPerHost:   20,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ForceAttemptHTTP2:     true,
		},
		Timeout: 30 * time.Second,
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
		config.WithHTTPClient(httpClient),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewWithClient(client, cfg.Bucket), nil
}

// NewWithClient создает хранилище поверх готового клиента
func NewWithClient(client *s3.Client, bucket string) *Storage {
	return &Storage{client: client, bucket: bucket}
}

func (s *Storage) Head(ctx context.Context, key string) (*storage.ObjectInfo, error) {
	resp, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapError("head", key, err)
	}

	return &storage.ObjectInfo{
		Key:         key,
		ETag:        cleanETag(resp.ETag),
		ContentType: aws.ToString(resp.ContentType),
		Size:        aws.ToInt64(resp.ContentLength),
		UpdatedAt:   aws.ToTime(resp.LastModified),
	}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (*storage.Object, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapError("get", key, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}

	return &storage.Object{
		Body: body,
		ObjectInfo: storage.ObjectInfo{
			Key:         key,
			ETag:        cleanETag(resp.ETag),
			ContentType: aws.ToString(resp.ContentType),
			Size:        int64(len(body)),
			UpdatedAt:   aws.ToTime(resp.LastModified),
		},
	}, nil
}

func (s *Storage) Put(ctx context.Context, key string, body []byte, contentType string) (*storage.ObjectInfo, error) {
	resp, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, mapError("put", key, err)
	}

	return &storage.ObjectInfo{
		Key:         key,
		ETag:        cleanETag(resp.ETag),
		ContentType: contentType,
		Size:        int64(len(body)),
		UpdatedAt:   time.Now().UTC(),
	}, nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err := mapError("delete", key, err); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		return err
	}
	return nil
}

func (s *Storage) List(ctx context.Context, prefix, cursor string, limit int) (*storage.ListPage, error) {
	if limit <= 0 {
		limit = storage.DefaultListLimit
	}

	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(int32(limit)),
	}
	if cursor != "" {
		input.StartAfter = aws.String(cursor)
	}

	resp, err := s.client.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	page := &storage.ListPage{Keys: make([]string, 0, len(resp.Contents))}
	for _, obj := range resp.Contents {
		page.Keys = append(page.Keys, aws.ToString(obj.Key))
	}
	if aws.ToBool(resp.IsTruncated) && len(page.Keys) > 0 {
		page.NextCursor = page.Keys[len(page.Keys)-1]
	}
	return page, nil
}

// cleanETag убирает кавычки, в которые S3 оборачивает ETag
func cleanETag(tag *string) string {
	return strings.ReplaceAll(aws.ToString(tag), `"`, "")
}

func mapError(op, key string, err error) error {
	if err == nil {
		return nil
	}
	var (
		notFound *types.NotFound
		noSuch   *types.NoSuchKey
	)
	if errors.As(err, &notFound) || errors.As(err, &noSuch) {
		return storage.ErrObjectNotFound
	}
	return fmt.Errorf("failed to %s object %s: %w", op, key, err)
}
