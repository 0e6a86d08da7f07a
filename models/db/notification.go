package dbmodels

import "hr-admin-backend/models"

type Notification struct {
	BaseModel
	UserID    string                      `gorm:"type:varchar(36);index:idx_user"`
	User      *User                       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Category  models.NotificationCategory `gorm:"type:varchar(50)"`
	Title     string
	Message   string
	IsRead    bool    `gorm:"index:idx_user"`
	RequestID *string `gorm:"type:varchar(36)"`
}
