// internal/app/repository/archive.go
package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"Audio-Viewer/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ErrArchiveUnavailable возвращается, если MinIO не настроен
var ErrArchiveUnavailable = errors.New("archive storage is not configured")

// InitMinIOClient подключается к MinIO и готовит bucket для клипов
func InitMinIOClient(cfg *config.Config) (*minio.Client, error) {
	endpoint := fmt.Sprintf("%s:%s", cfg.MinioHost, cfg.MinioPort)
	useSSL := false

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	ctx := context.Background()

	// Проверяем подключение
	_, err = minioClient.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("minio connection test failed: %v", err)
	}

	// Создаем bucket если не существует
	exists, err := minioClient.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = minioClient.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %v", err)
		}
	}

	logrus.Info("MinIO client initialized successfully")
	return minioClient, nil
}

// ArchiveDataset выгружает все клипы датасета в bucket как {dataset}/{index}.wav.
// Сам датасет при этом не меняется, это только экспорт
func (r *Repository) ArchiveDataset(ctx context.Context, name string) (int, error) {
	if r.minioClient == nil {
		return 0, ErrArchiveUnavailable
	}

	d, err := r.Dataset(name)
	if err != nil {
		return 0, err
	}

	uploaded := 0
	for i := 0; i < d.Len(); i++ {
		rec, _ := d.Record(i)
		objectName := fmt.Sprintf("%s/%d.wav", name, rec.Index)

		_, err := r.minioClient.PutObject(ctx, r.cfg.MinioBucket, objectName,
			bytes.NewReader(rec.Audio), int64(len(rec.Audio)), minio.PutObjectOptions{
				ContentType: "audio/wav",
			})
		if err != nil {
			return uploaded, fmt.Errorf("failed to upload %s: %v", objectName, err)
		}
		uploaded++
	}

	logrus.Infof("Archived %d clips from %s to bucket %s", uploaded, name, r.cfg.MinioBucket)
	return uploaded, nil
}
