package dbmodels

import (
	"hr-admin-backend/models"
	"time"
)

type HRRequest struct {
	BaseCompanyModel
	Company     *Company           `gorm:"constraint:OnDelete:CASCADE;"`
	Type        models.RequestType `gorm:"type:varchar(100);index"`
	Title       string             `gorm:"type:varchar(255)"`
	Description string
	Status      models.RequestStatus   `gorm:"type:varchar(50);index"`
	Priority    models.RequestPriority `gorm:"type:varchar(20)"`
	StartDate   *time.Time             `gorm:"type:date"`
	EndDate     *time.Time             `gorm:"type:date"`
	Documents   StringList             `gorm:"type:jsonb"`
	Comments    string
	EmployeeID  string  `gorm:"type:varchar(36);index"`
	Employee    *User   `gorm:"foreignKey:EmployeeID;constraint:OnDelete:RESTRICT;"`
	ManagerID   *string `gorm:"type:varchar(36);index"`
	Manager     *User   `gorm:"foreignKey:ManagerID;constraint:OnDelete:RESTRICT;"`
	ExternalID  string  `gorm:"type:varchar(100)"` // ид заявки в ZenHR
}

func (HRRequest) TableName() string {
	return "hr_requests"
}

func (r HRRequest) GetManagerID() string {
	if r.ManagerID == nil {
		return ""
	}
	return *r.ManagerID
}
