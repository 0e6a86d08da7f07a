package filestorage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-admin-backend/models"
	s3client "hr-admin-backend/s3"
)

// Provider документы заявок в S3. Ключ объекта: <company_id>/<user_id>/<uuid><ext>
type Provider interface {
	UploadDocument(ctx context.Context, companyID, userID string, reader io.Reader, size int64, fileName, contentType string) (key string, err error)
	GetDocument(ctx context.Context, principal models.Principal, key string) (file []byte, contentType string, err error)
	IsConfigured() bool
}

var Instance Provider

func NewHandler(bucketName string) {
	Instance = impl{
		s3client:   s3client.Client,
		bucketName: bucketName,
	}
}

type impl struct {
	s3client   *minio.Client
	bucketName string
}

var ErrNotConfigured = errors.New("файловое хранилище не настроено")

func (i impl) IsConfigured() bool {
	return i.s3client != nil
}

func (i impl) UploadDocument(ctx context.Context, companyID, userID string, reader io.Reader, size int64, fileName, contentType string) (string, error) {
	if !i.IsConfigured() {
		return "", ErrNotConfigured
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := DocumentKey(companyID, userID, fileName)
	_, err := i.s3client.PutObject(ctx, i.bucketName, key, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"filename": filepath.Base(fileName)},
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки документа в S3")
	}
	log.
		WithField("company_id", companyID).
		WithField("user_id", userID).
		WithField("key", key).
		Info("документ загружен")
	return key, nil
}

// GetDocument чужой документ не отличается от отсутствующего: nil без ошибки
func (i impl) GetDocument(ctx context.Context, principal models.Principal, key string) ([]byte, string, error) {
	if !CanRead(principal, key) {
		return nil, "", nil
	}
	if !i.IsConfigured() {
		return nil, "", ErrNotConfigured
	}
	obj, err := i.s3client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения документа из S3")
	}
	defer obj.Close()
	info, err := obj.Stat()
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, "", nil
		}
		return nil, "", errors.Wrap(err, "ошибка получения документа из S3")
	}
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка чтения документа из S3")
	}
	return body, info.ContentType, nil
}

func DocumentKey(companyID, userID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%s/%s%s", companyID, userID, uuid.New().String(), ext)
}

func BelongsToCompany(companyID, key string) bool {
	return companyID != "" && strings.HasPrefix(key, companyID+"/") && !strings.Contains(key, "..")
}

func BelongsToUser(companyID, userID, key string) bool {
	return userID != "" && BelongsToCompany(companyID, key) && strings.HasPrefix(key, companyID+"/"+userID+"/")
}

// CanRead сотрудник читает только свои документы, руководитель и администратор - документы компании
func CanRead(principal models.Principal, key string) bool {
	if principal.Role.CanApprove() {
		return BelongsToCompany(principal.CompanyID, key)
	}
	return BelongsToUser(principal.CompanyID, principal.UserID, key)
}
