package hrrequesthandler

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-admin-backend/db"
	pdfexport "hr-admin-backend/lib/export/pdf"
	externalservices "hr-admin-backend/lib/external-services"
	zenhrclient "hr-admin-backend/lib/external-services/zenhr/client"
	filestorage "hr-admin-backend/lib/file-storage"
	hrrequeststore "hr-admin-backend/lib/hr-request/store"
	notificationstore "hr-admin-backend/lib/notification/store"
	requestapprovalstore "hr-admin-backend/lib/request-approval/store"
	usersstore "hr-admin-backend/lib/users/store"
	apperrors "hr-admin-backend/lib/utils/app-errors"
	"hr-admin-backend/lib/utils/helpers"
	initchecker "hr-admin-backend/lib/utils/init-checker"
	"hr-admin-backend/models"
	hrrequestapimodels "hr-admin-backend/models/api/hrrequest"
	zenhrapimodels "hr-admin-backend/models/api/zenhr"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Submit(ctx context.Context, principal models.Principal, data hrrequestapimodels.SubmitData) (*hrrequestapimodels.SubmitResult, error)
	List(ctx context.Context, principal models.Principal, filter hrrequestapimodels.Filter) ([]hrrequestapimodels.View, error)
	UpdateStatus(ctx context.Context, principal models.Principal, data hrrequestapimodels.StatusData) (*hrrequestapimodels.View, error)
	History(ctx context.Context, principal models.Principal, requestID string) ([]hrrequestapimodels.ApprovalView, error)
	Remote(ctx context.Context, principal models.Principal, employeeID string) ([]zenhrapimodels.RequestRecord, error)
	Card(ctx context.Context, principal models.Principal, requestID string) ([]byte, error)
}

// Notifier доставка сохраненных уведомлений после фиксации транзакции
type Notifier interface {
	Deliver(ctx context.Context, recs ...dbmodels.Notification)
}

type Stores struct {
	Requests      hrrequeststore.Provider
	Approvals     requestapprovalstore.Provider
	Notifications notificationstore.Provider
	Users         usersstore.Provider
}

func NewStores(tx *gorm.DB) Stores {
	return Stores{
		Requests:      hrrequeststore.NewInstance(tx),
		Approvals:     requestapprovalstore.NewInstance(tx),
		Notifications: notificationstore.NewInstance(tx),
		Users:         usersstore.NewInstance(tx),
	}
}

// TxFunc выполняет fn в одной транзакции. Ошибка fn откатывает все записи
type TxFunc func(fn func(stores Stores) error) error

func GormTx(DB *gorm.DB) TxFunc {
	return func(fn func(stores Stores) error) error {
		return DB.Transaction(func(tx *gorm.DB) error {
			return fn(NewStores(tx))
		})
	}
}

var Instance Provider

func NewHandler(connector zenhrclient.Provider, notifier Notifier) {
	Instance = New(connector, notifier, NewStores(db.DB), GormTx(db.DB))
}

func New(connector zenhrclient.Provider, notifier Notifier, stores Stores, withTx TxFunc) Provider {
	instance := impl{
		connector: connector,
		notifier:  notifier,
		stores:    stores,
		withTx:    withTx,
	}
	initchecker.CheckInit(
		"connector", instance.connector,
		"requestStore", instance.stores.Requests,
		"approvalStore", instance.stores.Approvals,
		"notificationStore", instance.stores.Notifications,
		"userStore", instance.stores.Users,
	)
	return instance
}

type impl struct {
	connector zenhrclient.Provider
	notifier  Notifier
	stores    Stores
	withTx    TxFunc
}

func (i impl) getLogger(principal models.Principal, recID string) *log.Entry {
	logger := log.
		WithField("company_id", principal.CompanyID).
		WithField("user_id", principal.UserID).
		WithField("role", principal.Role)
	if recID != "" {
		logger = logger.WithField("rec_id", recID)
	}
	return logger
}

func (i impl) Submit(ctx context.Context, principal models.Principal, data hrrequestapimodels.SubmitData) (*hrrequestapimodels.SubmitResult, error) {
	if !principal.IsAuthenticated() {
		return nil, apperrors.NewAuthorization("требуется авторизация")
	}
	logger := i.getLogger(principal, "")
	submit, err := data.Parse()
	if err != nil {
		return nil, apperrors.NewValidation("%v", err)
	}
	if !submit.Type.IsKnown() {
		logger.WithField("type", submit.Type).Warn("неизвестный тип заявки")
	}

	requester, err := i.stores.Users.GetByID(principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения пользователя")
	}
	if requester == nil || !requester.IsActive {
		return nil, apperrors.NewNotFound("пользователь не найден")
	}
	// компания заявки всегда берется из учетной записи автора
	companyID := requester.GetCompanyID()
	if companyID == "" {
		return nil, apperrors.NewValidation("пользователь не привязан к компании")
	}
	for _, key := range submit.Documents {
		if !filestorage.BelongsToCompany(companyID, key) {
			return nil, apperrors.NewValidation("документ %v не принадлежит компании", key)
		}
	}
	manager, err := i.stores.Users.FindFirstManager(companyID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка поиска руководителя")
	}
	if manager == nil {
		logger.Warn("в компании нет руководителя, заявка создается без согласующего")
	}

	rec := dbmodels.HRRequest{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		Type:             submit.Type,
		Title:            submit.Title,
		Description:      submit.Description,
		Status:           models.RequestStatusPending,
		Priority:         submit.Priority,
		StartDate:        submit.StartDate,
		EndDate:          submit.EndDate,
		Documents:        dbmodels.StringList(submit.Documents),
		EmployeeID:       requester.ID,
	}
	if manager != nil {
		rec.ManagerID = &manager.ID
	}

	var result hrrequestapimodels.SubmitResult
	var notifications []dbmodels.Notification
	err = i.withTx(func(stores Stores) error {
		id, err := stores.Requests.Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения заявки")
		}
		if manager != nil {
			notification, err := createNotification(stores, manager.ID, id,
				models.GetNotificationNewRequest(requester.GetFullName(), rec.Title, rec.Type))
			if err != nil {
				return err
			}
			notifications = append(notifications, *notification)
		}

		extRec := zenhrapimodels.RequestRecord{
			ExternalRef: id,
			EmployeeID:  requester.GetExternalID(),
			CompanyID:   companyID,
			Type:        string(rec.Type),
			Title:       rec.Title,
			Description: rec.Description,
			Status:      string(rec.Status),
			Priority:    string(rec.Priority),
			StartDate:   helpers.FormatDate(rec.StartDate),
			EndDate:     helpers.FormatDate(rec.EndDate),
			Documents:   submit.Documents,
		}
		ack, err := i.connector.SubmitRequest(externalservices.GetContextWithRecID(ctx, companyID, id), extRec)
		if err != nil {
			return errors.Wrap(err, "ошибка отправки заявки в ZenHR")
		}
		if ack.ID != "" {
			err = stores.Requests.Update(id, map[string]interface{}{"external_id": ack.ID})
			if err != nil {
				return errors.Wrap(err, "ошибка сохранения внешнего идентификатора заявки")
			}
		}

		saved, err := stores.Requests.GetByID(companyID, id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения заявки")
		}
		if saved == nil {
			return errors.New("заявка не найдена после сохранения")
		}
		result = hrrequestapimodels.SubmitResult{
			HRRequest:     hrrequestapimodels.Convert(*saved),
			ZenhrResponse: ack,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.
		WithField("rec_id", result.HRRequest.ID).
		WithField("manager_id", result.HRRequest.ManagerID).
		Info("заявка создана")
	i.deliver(ctx, notifications)
	return &result, nil
}

func (i impl) List(ctx context.Context, principal models.Principal, filter hrrequestapimodels.Filter) ([]hrrequestapimodels.View, error) {
	storeFilter, err := scopeFilter(principal, filter)
	if err != nil {
		return nil, err
	}
	list, err := i.stores.Requests.List(storeFilter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка заявок")
	}
	result := make([]hrrequestapimodels.View, 0, len(list))
	for _, rec := range list {
		result = append(result, hrrequestapimodels.Convert(rec))
	}
	return result, nil
}

// scopeFilter ограничение видимости заявок по роли.
// Руководитель с явным employeeId видит заявки любого сотрудника своей компании
func scopeFilter(principal models.Principal, filter hrrequestapimodels.Filter) (hrrequeststore.Filter, error) {
	if !principal.IsAuthenticated() {
		return hrrequeststore.Filter{}, apperrors.NewAuthorization("требуется авторизация")
	}
	result := hrrequeststore.Filter{}
	if filter.Status != "" {
		result.Status = models.ParseRequestStatus(filter.Status)
	}
	if filter.Type != "" {
		result.Type = models.ParseRequestType(filter.Type)
	}
	employeeID := strings.TrimSpace(filter.EmployeeID)
	switch principal.Role {
	case models.EmployeeRole:
		result.EmployeeID = principal.UserID
	case models.ManagerRole:
		result.CompanyID = principal.CompanyID
		if employeeID != "" {
			result.EmployeeID = employeeID
		} else {
			result.ParticipantID = principal.UserID
		}
	case models.AdminRole:
		result.CompanyID = principal.CompanyID
		result.EmployeeID = employeeID
	default:
		return hrrequeststore.Filter{}, apperrors.NewAuthorization("неизвестная роль пользователя")
	}
	if result.CompanyID == "" && principal.Role != models.EmployeeRole {
		return hrrequeststore.Filter{}, apperrors.NewValidation("пользователь не привязан к компании")
	}
	return result, nil
}

func (i impl) UpdateStatus(ctx context.Context, principal models.Principal, data hrrequestapimodels.StatusData) (*hrrequestapimodels.View, error) {
	if !principal.Role.CanApprove() {
		return nil, apperrors.NewAuthorization("изменение статуса доступно только руководителю или администратору")
	}
	if err := data.Validate(); err != nil {
		return nil, apperrors.NewValidation("%v", err)
	}
	logger := i.getLogger(principal, data.RequestID)
	status := models.ParseRequestStatus(data.Status)
	if !status.IsKnown() {
		logger.WithField("status", status).Warn("неизвестный статус заявки")
	}
	comments := strings.TrimSpace(data.Comments)

	approver, err := i.stores.Users.GetByID(principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения пользователя")
	}
	if approver == nil || !approver.IsActive {
		return nil, apperrors.NewNotFound("пользователь не найден")
	}

	rec, err := i.stores.Requests.GetByID(principal.CompanyID, data.RequestID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("заявка не найдена")
	}

	var result hrrequestapimodels.View
	var notifications []dbmodels.Notification
	err = i.withTx(func(stores Stores) error {
		// руководитель заявки не меняется
		updMap := map[string]interface{}{
			"status":   status,
			"comments": comments,
		}
		err := stores.Requests.Update(rec.ID, updMap)
		if err != nil {
			return errors.Wrap(err, "ошибка обновления статуса заявки")
		}
		_, err = stores.Approvals.Create(dbmodels.RequestApproval{
			BaseModel:  dbmodels.BaseModel{CreatedAt: time.Now()},
			RequestID:  rec.ID,
			ApproverID: principal.UserID,
			Status:     status,
			Comment:    comments,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения решения по заявке")
		}
		notification, err := createNotification(stores, rec.EmployeeID, rec.ID,
			models.GetNotificationStatusChanged(rec.Title, status, comments))
		if err != nil {
			return err
		}
		notifications = append(notifications, *notification)

		extID := rec.ExternalID
		if extID == "" {
			extID = rec.ID
		}
		ack, err := i.connector.UpdateRequestStatus(externalservices.GetContextWithRecID(ctx, rec.CompanyID, rec.ID), extID, string(status), comments)
		if err != nil {
			return errors.Wrap(err, "ошибка передачи статуса заявки в ZenHR")
		}
		logger.WithField("zenhr_ack", ack.ID).Debug("статус передан в ZenHR")

		saved, err := stores.Requests.GetByID(rec.CompanyID, rec.ID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения заявки")
		}
		if saved == nil {
			return errors.New("заявка не найдена после обновления")
		}
		result = hrrequestapimodels.Convert(*saved)
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.WithField("status", status).Info("статус заявки изменен")
	i.deliver(ctx, notifications)
	return &result, nil
}

func (i impl) History(ctx context.Context, principal models.Principal, requestID string) ([]hrrequestapimodels.ApprovalView, error) {
	rec, err := i.getVisible(principal, requestID)
	if err != nil {
		return nil, err
	}
	list, err := i.stores.Approvals.List(rec.ID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения истории согласования")
	}
	result := make([]hrrequestapimodels.ApprovalView, 0, len(list))
	for _, item := range list {
		result = append(result, hrrequestapimodels.ConvertApproval(item))
	}
	return result, nil
}

func (i impl) Remote(ctx context.Context, principal models.Principal, employeeID string) ([]zenhrapimodels.RequestRecord, error) {
	if !principal.IsAuthenticated() {
		return nil, apperrors.NewAuthorization("требуется авторизация")
	}
	// сотрудник видит только свои заявки в ZenHR
	if !principal.Role.CanApprove() || employeeID == "" {
		employeeID = principal.EmployeeID
	}
	if employeeID == "" {
		return nil, apperrors.NewValidation("не указан табельный номер сотрудника")
	}
	list, err := i.connector.FetchRequests(externalservices.GetContextWithRecID(ctx, principal.CompanyID, ""), employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения заявок из ZenHR")
	}
	return list, nil
}

func (i impl) Card(ctx context.Context, principal models.Principal, requestID string) ([]byte, error) {
	rec, err := i.getVisible(principal, requestID)
	if err != nil {
		return nil, err
	}
	history, err := i.History(ctx, principal, requestID)
	if err != nil {
		return nil, err
	}
	card, err := pdfexport.GenerateRequestCard(hrrequestapimodels.Convert(*rec), history)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования карточки заявки")
	}
	return card, nil
}

// getVisible заявка своей компании; сотруднику - только собственная
func (i impl) getVisible(principal models.Principal, requestID string) (*dbmodels.HRRequest, error) {
	if !principal.IsAuthenticated() {
		return nil, apperrors.NewAuthorization("требуется авторизация")
	}
	rec, err := i.stores.Requests.GetByID(principal.CompanyID, requestID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("заявка не найдена")
	}
	if !principal.Role.CanApprove() && rec.EmployeeID != principal.UserID {
		return nil, apperrors.NewNotFound("заявка не найдена")
	}
	return rec, nil
}

func (i impl) deliver(ctx context.Context, notifications []dbmodels.Notification) {
	if i.notifier == nil || len(notifications) == 0 {
		return
	}
	i.notifier.Deliver(ctx, notifications...)
}

func createNotification(stores Stores, userID, requestID string, data models.NotificationData) (*dbmodels.Notification, error) {
	rec := dbmodels.Notification{
		BaseModel: dbmodels.BaseModel{CreatedAt: time.Now()},
		UserID:    userID,
		Category:  data.Category,
		Title:     data.Title,
		Message:   data.Msg,
		RequestID: &requestID,
	}
	id, err := stores.Notifications.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения уведомления")
	}
	rec.ID = id
	return &rec, nil
}
