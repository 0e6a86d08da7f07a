package notificationhandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-admin-backend/db"
	notificationpublisher "hr-admin-backend/lib/notification/publisher"
	notificationstore "hr-admin-backend/lib/notification/store"
	"hr-admin-backend/lib/smtp"
	usersstore "hr-admin-backend/lib/users/store"
	apperrors "hr-admin-backend/lib/utils/app-errors"
	initchecker "hr-admin-backend/lib/utils/init-checker"
	connectionhub "hr-admin-backend/lib/ws/hub/connection-hub"
	"hr-admin-backend/models"
	notificationapimodels "hr-admin-backend/models/api/notification"
	dbmodels "hr-admin-backend/models/db"
	wsmodels "hr-admin-backend/models/ws"
)

type Provider interface {
	// Deliver доставка уже сохраненных уведомлений: websocket, redis stream, email. Ошибки только логируются
	Deliver(ctx context.Context, recs ...dbmodels.Notification)
	SendUnread(userID string)
	List(principal models.Principal, filter notificationapimodels.Filter) ([]notificationapimodels.View, error)
	MarkRead(principal models.Principal, id string) error
}

var Instance Provider

// NewHandler publisher и mailer необязательны
func NewHandler(publisher notificationpublisher.Provider, mailer smtp.Provider) {
	instance := impl{
		store:     notificationstore.NewInstance(db.DB),
		userStore: usersstore.NewInstance(db.DB),
		hub:       connectionhub.Instance,
		publisher: publisher,
		mailer:    mailer,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"userStore", instance.userStore,
		"hub", instance.hub,
	)
	Instance = instance
}

type impl struct {
	store     notificationstore.Provider
	userStore usersstore.Provider
	hub       connectionhub.Provider
	publisher notificationpublisher.Provider
	mailer    smtp.Provider
}

func (i impl) getLogger(userID, notificationID string) *log.Entry {
	logger := log.
		WithField("user_id", userID)
	if notificationID != "" {
		logger = logger.WithField("notification_id", notificationID)
	}
	return logger
}

func (i impl) Deliver(ctx context.Context, recs ...dbmodels.Notification) {
	for _, rec := range recs {
		logger := i.getLogger(rec.UserID, rec.ID)
		if i.hub != nil {
			if i.hub.SendMessage(toServerMessage(rec)) {
				logger.Debug("уведомление отправлено через websocket")
			}
		}
		if i.publisher != nil {
			_, err := i.publisher.Publish(ctx, rec)
			if err != nil {
				logger.WithError(err).Warn("ошибка публикации уведомления")
			}
		}
		if i.mailer != nil && i.mailer.IsConfigured() {
			go i.sendEmail(logger, rec)
		}
	}
}

func (i impl) sendEmail(logger *log.Entry, rec dbmodels.Notification) {
	user, err := i.userStore.GetByID(rec.UserID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователя для отправки уведомления")
		return
	}
	if user == nil || user.Email == "" {
		return
	}
	err = i.mailer.SendEMail(user.Email, rec.Message, rec.Title)
	if err != nil {
		logger.WithError(err).Warn("ошибка отправки уведомления на почту")
	}
}

func (i impl) SendUnread(userID string) {
	logger := i.getLogger(userID, "")
	list, err := i.store.List(userID, true)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка непрочитанных уведомлений")
		return
	}
	// в хронологическом порядке
	for k := len(list) - 1; k >= 0; k-- {
		if !i.hub.IsConnected(userID) {
			return
		}
		i.hub.SendMessage(toServerMessage(list[k]))
	}
}

func (i impl) List(principal models.Principal, filter notificationapimodels.Filter) ([]notificationapimodels.View, error) {
	list, err := i.store.List(principal.UserID, filter.Unread)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка уведомлений")
	}
	result := make([]notificationapimodels.View, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) MarkRead(principal models.Principal, id string) error {
	found, err := i.store.MarkRead(principal.UserID, id)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления уведомления")
	}
	if !found {
		return apperrors.NewNotFound("уведомление не найдено")
	}
	return nil
}

func toServerMessage(rec dbmodels.Notification) wsmodels.ServerMessage {
	msg := wsmodels.ServerMessage{
		ToUserID: rec.UserID,
		ID:       rec.ID,
		Time:     rec.CreatedAt.Format(time.RFC3339),
		Category: string(rec.Category),
		Title:    rec.Title,
		Msg:      rec.Message,
	}
	if rec.RequestID != nil {
		msg.RequestID = *rec.RequestID
	}
	return msg
}
