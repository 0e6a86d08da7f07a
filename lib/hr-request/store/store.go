package hrrequeststore

import (
	"hr-admin-backend/models"
	dbmodels "hr-admin-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Filter условия выборки заявок. Пустые поля не участвуют в отборе
type Filter struct {
	CompanyID  string
	EmployeeID string
	// ParticipantID автор заявки или назначенный руководитель
	ParticipantID string
	Status        models.RequestStatus
	Type          models.RequestType
}

type Provider interface {
	Create(rec dbmodels.HRRequest) (string, error)
	GetByID(companyID, id string) (rec *dbmodels.HRRequest, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter Filter) (list []dbmodels.HRRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.HRRequest) (string, error) {
	err := i.db.
		Omit("Company", "Employee", "Manager").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (rec *dbmodels.HRRequest, err error) {
	err = i.db.Model(dbmodels.HRRequest{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("Employee").
		Preload("Manager").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.HRRequest{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) List(filter Filter) (list []dbmodels.HRRequest, err error) {
	tx := i.db.Model(dbmodels.HRRequest{})
	if filter.CompanyID != "" {
		tx = tx.Where("company_id = ?", filter.CompanyID)
	}
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.ParticipantID != "" {
		tx = tx.Where("(employee_id = ? OR manager_id = ?)", filter.ParticipantID, filter.ParticipantID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		tx = tx.Where("type = ?", filter.Type)
	}
	err = tx.
		Preload("Employee").
		Preload("Manager").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
