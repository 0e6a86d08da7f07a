package notificationpublisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	notificationapimodels "hr-admin-backend/models/api/notification"
	dbmodels "hr-admin-backend/models/db"
)

// Provider публикует уведомления в redis stream для внешних потребителей (мобильные пуши, мессенджеры)
type Provider interface {
	Publish(ctx context.Context, rec dbmodels.Notification) (string, error)
}

func NewPublisher(client *redis.Client, stream string) Provider {
	return &impl{
		client: client,
		stream: stream,
	}
}

type impl struct {
	client *redis.Client
	stream string
}

func (i impl) Publish(ctx context.Context, rec dbmodels.Notification) (string, error) {
	values, err := buildValues(rec, time.Now())
	if err != nil {
		return "", err
	}
	id, err := i.client.XAdd(ctx, &redis.XAddArgs{
		Stream: i.stream,
		Values: values,
	}).Result()
	if err != nil {
		return "", errors.Wrap(err, "ошибка публикации уведомления в redis")
	}
	return id, nil
}

func buildValues(rec dbmodels.Notification, now time.Time) (map[string]interface{}, error) {
	data, err := json.Marshal(notificationapimodels.Convert(rec))
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации уведомления")
	}
	return map[string]interface{}{
		"user_id":         rec.UserID,
		"notification_id": rec.ID,
		"category":        string(rec.Category),
		"data":            string(data),
		"timestamp":       now.Unix(),
	}, nil
}
