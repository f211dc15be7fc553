package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var storageClient *minio.Client

// InitStorage connects to the S3-compatible object store used for listing
// images and payment QR codes.
func InitStorage() error {
	cfg := config.AppConfig.Storage
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return err
	}
	storageClient = client
	return nil
}

// UploadFile stores one uploaded file under a random object key and returns
// its public URL.
func UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if storageClient == nil {
		return "", fmt.Errorf("object storage not initialized")
	}
	cfg := config.AppConfig.Storage

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectName := uuid.New().String() + filepath.Ext(file.Filename)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = storageClient.PutObject(ctx, cfg.Bucket, objectName, src, file.Size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.Endpoint, cfg.Bucket, objectName), nil
}

// DeleteFile removes a previously uploaded object by its URL.
func DeleteFile(ctx context.Context, url string) error {
	if storageClient == nil {
		return fmt.Errorf("object storage not initialized")
	}
	cfg := config.AppConfig.Storage

	idx := strings.Index(url, cfg.Bucket+"/")
	if idx < 0 {
		return fmt.Errorf("url does not belong to bucket %s", cfg.Bucket)
	}
	objectName := url[idx+len(cfg.Bucket)+1:]

	return storageClient.RemoveObject(ctx, cfg.Bucket, objectName, minio.RemoveObjectOptions{})
}
