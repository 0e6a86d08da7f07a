package initializers

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"hr-admin-backend/config"
	notificationpublisher "hr-admin-backend/lib/notification/publisher"
)

// InitRedis публикация уведомлений в redis stream, без REDIS_ADDR отключена
func InitRedis() notificationpublisher.Provider {
	if config.Conf.Redis.Addr == "" {
		log.Info("redis не настроен, публикация уведомлений отключена")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Error("ошибка подключения к redis, публикация уведомлений отключена")
		return nil
	}
	log.WithField("stream", config.Conf.Redis.Stream).Info("redis успешно подключен")
	return notificationpublisher.NewPublisher(client, config.Conf.Redis.Stream)
}
