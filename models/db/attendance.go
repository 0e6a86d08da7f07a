package dbmodels

import (
	"hr-admin-backend/models"
	"time"
)

type Attendance struct {
	BaseCompanyModel
	EmployeeID string    `gorm:"type:varchar(36);uniqueIndex:idx_attendance_employee_date"`
	Employee   *User     `gorm:"foreignKey:EmployeeID;constraint:OnDelete:RESTRICT;"`
	Date       time.Time `gorm:"type:date;uniqueIndex:idx_attendance_employee_date"`
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     models.AttendanceStatus `gorm:"type:varchar(50)"`
	Notes      string
	Location   string `gorm:"type:varchar(255)"`
}
