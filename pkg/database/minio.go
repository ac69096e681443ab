package database

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"video_sharing_service/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/policy"
	"github.com/minio/minio-go/v7/pkg/set"
	"go.uber.org/zap"
)

// MinIOClientRepo media store used by the video service
type MinIOClientRepo interface {
	UploadObject(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (MediaObject, error)
	RemoveObject(ctx context.Context, objectName string) error
	ObjectURL(objectName string) string
	KeyFromURL(rawURL string) string
}

// MinIOClient definition minio client
type MinIOClient struct {
	Client     *minio.Client
	BucketName string

	// 對外公開的 URL 前綴, 空值時使用 endpoint
	PublicBaseURL string
}

// NewMinIOConnection create a new minio connection have retry
func NewMinIOConnection(ctx context.Context, d MinIOConnection) (*MinIOClient, error) {
	var mc *MinIOClient
	var err error

	for i := 1; i <= d.RetryCount; i++ {
		mc, err = NewMinioClient(ctx, d.Endpoint, d.User, d.Password, d.BucketName, d.UseSSL)
		if err == nil {
			mc.PublicBaseURL = publicBase(d)
			logger.Log.Info("minIO connected", zap.String("endpoint", d.Endpoint), zap.Int("attempt", i))
			return mc, nil
		}

		logger.Log.Warn("minIO connect failed",
			zap.String("endpoint", d.Endpoint),
			zap.Int("attempt", i),
			zap.Int("max", d.RetryCount),
			zap.Error(err))
		time.Sleep(d.RetryInterval)
	}

	if err == nil {
		err = fmt.Errorf("minIO[%s] retry count must be positive", d.Endpoint)
	}
	return nil, err
}

func publicBase(d MinIOConnection) string {
	if d.PublicBaseURL != "" {
		return strings.TrimRight(d.PublicBaseURL, "/")
	}
	scheme := "http"
	if d.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + d.Endpoint
}

// NewMinioClient create a new minio and make sure the bucket exists
func NewMinioClient(ctx context.Context, endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	minioClient, err := minio.New(endpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
			Secure: useSSL,
		})
	if err != nil {
		return nil, fmt.Errorf("初始化 MinIO 失敗: %w", err)
	}

	// 檢查 bucket 是否存在
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("檢查 bucket [%s] 失敗: %w", bucketName, err)
	}

	if !exists {
		if err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("建立 bucket [%s] 失敗: %w", bucketName, err)
		}
		logger.Log.Info("bucket created", zap.String("bucket", bucketName))
	}

	// ObjectURL 回傳的是匿名 URL, bucket 內物件需開放公開讀取
	readPolicy, err := publicReadPolicy(bucketName)
	if err != nil {
		return nil, err
	}
	if err = minioClient.SetBucketPolicy(ctx, bucketName, readPolicy); err != nil {
		return nil, fmt.Errorf("設定 bucket [%s] 讀取權限失敗: %w", bucketName, err)
	}

	return &MinIOClient{
		Client:     minioClient,
		BucketName: bucketName,
	}, nil
}

// UploadObject stream r into objectName, size -1 when unknown
func (m *MinIOClient) UploadObject(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (MediaObject, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := m.Client.PutObject(ctx, m.BucketName, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return MediaObject{}, fmt.Errorf("上傳物件 [%s] 失敗: %w", objectName, err)
	}
	return MediaObject{Key: objectName, URL: m.ObjectURL(objectName)}, nil
}

// RemoveObject delete objectName from the bucket
func (m *MinIOClient) RemoveObject(ctx context.Context, objectName string) error {
	if err := m.Client.RemoveObject(ctx, m.BucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("刪除物件 [%s] 失敗: %w", objectName, err)
	}
	return nil
}

// ObjectURL public url for objectName
func (m *MinIOClient) ObjectURL(objectName string) string {
	return m.PublicBaseURL + "/" + m.BucketName + "/" + strings.TrimLeft(objectName, "/")
}

// KeyFromURL reverse of ObjectURL, "" when the url does not point into the bucket
func (m *MinIOClient) KeyFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	prefix := "/" + m.BucketName + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return ""
	}
	return strings.TrimPrefix(u.Path, prefix)
}

// publicReadPolicy anonymous GetObject on every object of bucketName, listing stays private
func publicReadPolicy(bucketName string) (string, error) {
	data, err := json.Marshal(policy.BucketAccessPolicy{
		Version: "2012-10-17",
		Statements: []policy.Statement{{
			Effect:    "Allow",
			Principal: policy.User{AWS: set.CreateStringSet("*")},
			Actions:   set.CreateStringSet("s3:GetObject"),
			Resources: set.CreateStringSet("arn:aws:s3:::" + bucketName + "/*"),
		}},
	})
	if err != nil {
		return "", fmt.Errorf("bucket [%s] policy 序列化失敗: %w", bucketName, err)
	}
	return string(data), nil
}
