package dbmodels

import (
	"fmt"
	"hr-admin-backend/models"
	"strings"
)

type User struct {
	BaseModel
	Email      string          `gorm:"type:varchar(255);uniqueIndex"`
	Password   string          `gorm:"type:varchar(128)"`
	FirstName  string          `gorm:"type:varchar(150)"`
	LastName   string          `gorm:"type:varchar(150)"`
	Role       models.UserRole `gorm:"type:varchar(50)"`
	EmployeeID string          `gorm:"type:varchar(100);index"` // табельный номер в ZenHR
	CompanyID  *string         `gorm:"type:varchar(36);index"`
	Company    *Company        `gorm:"constraint:OnDelete:CASCADE;"`
	IsActive   bool
}

func (r User) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", r.FirstName, r.LastName))
}

func (r User) GetCompanyID() string {
	if r.CompanyID == nil {
		return ""
	}
	return *r.CompanyID
}

// GetExternalID идентификатор сотрудника для ZenHR, если табельный номер не заполнен - ид пользователя
func (r User) GetExternalID() string {
	if r.EmployeeID != "" {
		return r.EmployeeID
	}
	return r.ID
}
