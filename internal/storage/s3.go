package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path"

	"files-manager/config"
	"files-manager/internal/common"
	"files-manager/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3Store : блобы в бакете S3, ссылка это ключ объекта
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// NewS3Client : для Local path-style клиент на minio и создание бакета, иначе конфигурация AWS по умолчанию
func NewS3Client(ctx context.Context, cfg *config.S3Config) (*s3.Client, error) {
	if !cfg.Local {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3Store] ошибка загрузки AWS config", err)
		}
		return s3.NewFromConfig(awsCfg), nil
	}

	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
		BaseEndpoint: aws.String(cfg.Endpoint),
		UsePathStyle: true,
	})

	if err := createBucketIfNotExists(ctx, client, cfg.Bucket); err != nil {
		return nil, err
	}

	return client, nil
}

// createBucketIfNotExists создает бакет если он не существует
func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		return nil
	}

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return util.LogError("[S3Store] ошибка создания бакета", err)
	}

	slog.Info("[S3Store] бакет создан", "bucket", bucket)
	return nil
}

func (s *S3Store) Put(ctx context.Context, data []byte) (string, error) {
	key := path.Join(s.prefix, uuid.NewString())
	if err := s.putObject(ctx, key, data); err != nil {
		return "", util.LogError("[S3Store] не удалось загрузить объект", err)
	}
	return key, nil
}

func (s *S3Store) Get(ctx context.Context, contentRef string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(contentRef),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, common.ErrNotFound
		}
		return nil, util.LogError("[S3Store] не удалось получить объект", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, util.LogError("[S3Store] ошибка чтения объекта", err)
	}
	return data, nil
}

func (s *S3Store) VariantRef(contentRef string, width int) string {
	return variantRef(contentRef, width)
}

func (s *S3Store) PutVariant(ctx context.Context, contentRef string, width int, data []byte) error {
	if err := s.putObject(ctx, variantRef(contentRef, width), data); err != nil {
		return util.LogError("[S3Store] не удалось загрузить превью", err)
	}
	return nil
}

func (s *S3Store) putObject(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	return err
}
