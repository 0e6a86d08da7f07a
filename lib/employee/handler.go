package employeehandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-admin-backend/db"
	externalservices "hr-admin-backend/lib/external-services"
	zenhrclient "hr-admin-backend/lib/external-services/zenhr/client"
	usersstore "hr-admin-backend/lib/users/store"
	apperrors "hr-admin-backend/lib/utils/app-errors"
	initchecker "hr-admin-backend/lib/utils/init-checker"
	"hr-admin-backend/models"
	employeeapimodels "hr-admin-backend/models/api/employee"
	zenhrapimodels "hr-admin-backend/models/api/zenhr"
)

type Provider interface {
	// List сотрудники компании, дополненные данными ZenHR
	List(ctx context.Context, principal models.Principal) ([]employeeapimodels.View, error)
	// Get карточка сотрудника из ZenHR по табельному номеру
	Get(ctx context.Context, principal models.Principal, employeeID string) (*zenhrapimodels.EmployeeRecord, error)
}

var Instance Provider

func NewHandler(connector zenhrclient.Provider) {
	Instance = New(connector, usersstore.NewInstance(db.DB))
}

func New(connector zenhrclient.Provider, userStore usersstore.Provider) Provider {
	instance := impl{
		connector: connector,
		userStore: userStore,
	}
	initchecker.CheckInit(
		"connector", instance.connector,
		"userStore", instance.userStore,
	)
	return instance
}

type impl struct {
	connector zenhrclient.Provider
	userStore usersstore.Provider
}

func (i impl) List(ctx context.Context, principal models.Principal) ([]employeeapimodels.View, error) {
	if !principal.Role.CanApprove() {
		return nil, apperrors.NewAuthorization("список сотрудников доступен только руководителю или администратору")
	}
	if principal.CompanyID == "" {
		return nil, apperrors.NewValidation("пользователь не привязан к компании")
	}
	users, err := i.userStore.List(principal.CompanyID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка сотрудников")
	}
	extList, err := i.connector.FetchAllEmployees(externalservices.GetContextWithRecID(ctx, principal.CompanyID, ""), principal.CompanyID)
	if err != nil {
		// локальный список отдается и без ZenHR
		log.
			WithField("company_id", principal.CompanyID).
			WithError(err).
			Warn("не удалось получить сотрудников из ZenHR")
	}
	extMap := make(map[string]zenhrapimodels.EmployeeRecord, len(extList))
	for _, item := range extList {
		extMap[item.ID] = item
	}
	result := make([]employeeapimodels.View, 0, len(users))
	for _, user := range users {
		var ext *zenhrapimodels.EmployeeRecord
		if item, ok := extMap[user.GetExternalID()]; ok {
			ext = &item
		}
		result = append(result, employeeapimodels.Convert(user, ext))
	}
	return result, nil
}

func (i impl) Get(ctx context.Context, principal models.Principal, employeeID string) (*zenhrapimodels.EmployeeRecord, error) {
	if !principal.IsAuthenticated() {
		return nil, apperrors.NewAuthorization("требуется авторизация")
	}
	if employeeID == "" {
		return nil, apperrors.NewValidation("не указан табельный номер сотрудника")
	}
	if !principal.Role.CanApprove() && employeeID != principal.EmployeeID {
		return nil, apperrors.NewAuthorization("доступна только собственная карточка сотрудника")
	}
	rec, err := i.connector.FetchEmployee(externalservices.GetContextWithRecID(ctx, principal.CompanyID, ""), employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения сотрудника из ZenHR")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("сотрудник не найден")
	}
	return rec, nil
}
