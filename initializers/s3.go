package initializers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"hr-admin-backend/config"
	s3client "hr-admin-backend/s3"
)

// InitS3 без настройки S3_ENDPOINT загрузка документов недоступна
func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 не настроен, загрузка документов отключена")
		return
	}
	client, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = s3client.MakeBucket(ctx, client, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Error("S3 соединение не удалось: ошибка проверки бакета")
		return
	}

	s3client.Client = client
	log.Info("S3 клиент успешно инициализирован")
}
