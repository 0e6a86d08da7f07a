package attendancehandler

import (
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-admin-backend/db"
	attendancestore "hr-admin-backend/lib/attendance/store"
	xlsexport "hr-admin-backend/lib/export/xls"
	externalservices "hr-admin-backend/lib/external-services"
	zenhrclient "hr-admin-backend/lib/external-services/zenhr/client"
	usersstore "hr-admin-backend/lib/users/store"
	apperrors "hr-admin-backend/lib/utils/app-errors"
	"hr-admin-backend/lib/utils/helpers"
	initchecker "hr-admin-backend/lib/utils/init-checker"
	"hr-admin-backend/models"
	attendanceapimodels "hr-admin-backend/models/api/attendance"
	zenhrapimodels "hr-admin-backend/models/api/zenhr"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Mark(ctx context.Context, principal models.Principal, data attendanceapimodels.MarkData) (*attendanceapimodels.MarkResult, error)
	List(ctx context.Context, principal models.Principal, filter attendanceapimodels.Filter) ([]attendanceapimodels.View, error)
	Export(ctx context.Context, principal models.Principal, filter attendanceapimodels.Filter) (*bytes.Buffer, error)
}

type Stores struct {
	Attendance attendancestore.Provider
	Users      usersstore.Provider
}

func NewStores(tx *gorm.DB) Stores {
	return Stores{
		Attendance: attendancestore.NewInstance(tx),
		Users:      usersstore.NewInstance(tx),
	}
}

type TxFunc func(fn func(stores Stores) error) error

func GormTx(DB *gorm.DB) TxFunc {
	return func(fn func(stores Stores) error) error {
		return DB.Transaction(func(tx *gorm.DB) error {
			return fn(NewStores(tx))
		})
	}
}

var Instance Provider

func NewHandler(connector zenhrclient.Provider, exporter xlsexport.Provider) {
	Instance = New(connector, exporter, NewStores(db.DB), GormTx(db.DB))
}

func New(connector zenhrclient.Provider, exporter xlsexport.Provider, stores Stores, withTx TxFunc) Provider {
	instance := impl{
		connector: connector,
		exporter:  exporter,
		stores:    stores,
		withTx:    withTx,
	}
	initchecker.CheckInit(
		"connector", instance.connector,
		"exporter", instance.exporter,
		"attendanceStore", instance.stores.Attendance,
		"userStore", instance.stores.Users,
	)
	return instance
}

type impl struct {
	connector zenhrclient.Provider
	exporter  xlsexport.Provider
	stores    Stores
	withTx    TxFunc
}

func (i impl) getLogger(principal models.Principal) *log.Entry {
	return log.
		WithField("company_id", principal.CompanyID).
		WithField("user_id", principal.UserID)
}

func (i impl) Mark(ctx context.Context, principal models.Principal, data attendanceapimodels.MarkData) (*attendanceapimodels.MarkResult, error) {
	if !principal.IsAuthenticated() {
		return nil, apperrors.NewAuthorization("требуется авторизация")
	}
	mark, err := data.Parse()
	if err != nil {
		return nil, apperrors.NewValidation("%v", err)
	}
	employee, err := i.stores.Users.GetByID(principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения пользователя")
	}
	if employee == nil || !employee.IsActive {
		return nil, apperrors.NewNotFound("пользователь не найден")
	}
	companyID := employee.GetCompanyID()
	if companyID == "" {
		return nil, apperrors.NewValidation("пользователь не привязан к компании")
	}
	logger := i.getLogger(principal).WithField("date", helpers.FormatDate(&mark.Date))

	rec := dbmodels.Attendance{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		EmployeeID:       employee.ID,
		Date:             mark.Date,
		CheckIn:          mark.CheckIn,
		CheckOut:         mark.CheckOut,
		Status:           mark.Status,
		Notes:            strings.TrimSpace(data.Notes),
		Location:         strings.TrimSpace(data.Location),
	}

	var result attendanceapimodels.MarkResult
	err = i.withTx(func(stores Stores) error {
		id, err := stores.Attendance.Create(rec)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.NewConflict("посещаемость за %v уже отмечена", helpers.FormatDate(&mark.Date))
			}
			return errors.Wrap(err, "ошибка сохранения посещаемости")
		}
		rec.ID = id
		rec.Employee = employee

		ack, err := i.connector.MarkAttendance(externalservices.GetContextWithRecID(ctx, companyID, id), zenhrapimodels.AttendanceRecord{
			EmployeeID: employee.GetExternalID(),
			CompanyID:  companyID,
			Date:       helpers.FormatDate(&rec.Date),
			CheckIn:    helpers.FormatTime(rec.CheckIn),
			CheckOut:   helpers.FormatTime(rec.CheckOut),
			Status:     string(rec.Status),
			Notes:      rec.Notes,
			Location:   rec.Location,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка передачи посещаемости в ZenHR")
		}
		result = attendanceapimodels.MarkResult{
			Attendance:    attendanceapimodels.Convert(rec),
			ZenhrResponse: ack,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.WithField("rec_id", rec.ID).Info("посещаемость отмечена")
	return &result, nil
}

func (i impl) List(ctx context.Context, principal models.Principal, filter attendanceapimodels.Filter) ([]attendanceapimodels.View, error) {
	storeFilter, err := scopeFilter(principal, filter)
	if err != nil {
		return nil, err
	}
	list, err := i.stores.Attendance.List(storeFilter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения посещаемости")
	}
	result := make([]attendanceapimodels.View, 0, len(list))
	for _, rec := range list {
		result = append(result, attendanceapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) Export(ctx context.Context, principal models.Principal, filter attendanceapimodels.Filter) (*bytes.Buffer, error) {
	list, err := i.List(ctx, principal, filter)
	if err != nil {
		return nil, err
	}
	return i.exporter.ExportAttendanceList(list)
}

// scopeFilter сотрудник видит только свои отметки, руководитель и администратор - любого сотрудника своей компании
func scopeFilter(principal models.Principal, filter attendanceapimodels.Filter) (attendancestore.Filter, error) {
	if !principal.IsAuthenticated() {
		return attendancestore.Filter{}, apperrors.NewAuthorization("требуется авторизация")
	}
	period, err := filter.Period()
	if err != nil {
		return attendancestore.Filter{}, apperrors.NewValidation("%v", err)
	}
	result := attendancestore.Filter{
		EmployeeID: principal.UserID,
		From:       period.From,
		To:         period.To,
	}
	employeeID := strings.TrimSpace(filter.EmployeeID)
	switch principal.Role {
	case models.EmployeeRole:
	case models.ManagerRole, models.AdminRole:
		if principal.CompanyID == "" {
			return attendancestore.Filter{}, apperrors.NewValidation("пользователь не привязан к компании")
		}
		result.CompanyID = principal.CompanyID
		if employeeID != "" {
			result.EmployeeID = employeeID
		}
	default:
		return attendancestore.Filter{}, apperrors.NewAuthorization("неизвестная роль пользователя")
	}
	return result, nil
}
