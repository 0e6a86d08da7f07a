package dbmodels

import "hr-admin-backend/models"

// RequestApproval журнал решений по заявке, записи только добавляются
type RequestApproval struct {
	BaseModel
	RequestID  string               `gorm:"type:varchar(36);index"`
	Request    *HRRequest           `gorm:"foreignKey:RequestID;constraint:OnDelete:RESTRICT;"`
	ApproverID string               `gorm:"type:varchar(36)"`
	Approver   *User                `gorm:"foreignKey:ApproverID;constraint:OnDelete:RESTRICT;"`
	Status     models.RequestStatus `gorm:"type:varchar(50)"`
	Comment    string
}
