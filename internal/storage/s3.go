package storage

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/AuMiauServices/petshop-api/internal/config"
)

const imageContentType = "image/webp"

// ImageStore guarda as imagens de produto em um bucket S3 (ou
// compatível, via endpoint custom com path-style).
type ImageStore struct {
	client *s3.Client
	bucket string
}

func NewImageStore(cfg config.StorageConfig) *ImageStore {
	opts := s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &ImageStore{
		client: s3.New(opts),
		bucket: cfg.Bucket,
	}
}

// Put envia o webp já codificado e devolve a chave gerada.
func (s *ImageStore) Put(ctx context.Context, data []byte) (string, error) {
	key := uuid.NewString() + ".webp"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(imageContentType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// Get devolve o stream do objeto, seu content type e o tamanho.
func (s *ImageStore) Get(ctx context.Context, key string) (io.ReadCloser, string, int64, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", 0, err
	}

	contentType := aws.ToString(out.ContentType)
	if contentType == "" {
		contentType = imageContentType
	}
	return out.Body, contentType, aws.ToInt64(out.ContentLength), nil
}

func (s *ImageStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
