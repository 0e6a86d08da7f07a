package attendancestore

import (
	"time"

	dbmodels "hr-admin-backend/models/db"

	"gorm.io/gorm"
)

type Filter struct {
	CompanyID  string
	EmployeeID string
	From       *time.Time
	To         *time.Time
}

type Provider interface {
	// Create повторная отметка за тот же день - gorm.ErrDuplicatedKey
	Create(rec dbmodels.Attendance) (string, error)
	List(filter Filter) (list []dbmodels.Attendance, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Attendance) (string, error) {
	err := i.db.
		Omit("Employee").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(filter Filter) (list []dbmodels.Attendance, err error) {
	tx := i.db.Model(dbmodels.Attendance{})
	if filter.CompanyID != "" {
		tx = tx.Where("company_id = ?", filter.CompanyID)
	}
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.From != nil {
		tx = tx.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		tx = tx.Where("date <= ?", *filter.To)
	}
	err = tx.
		Preload("Employee").
		Order("date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
