package requestapprovalstore

import (
	dbmodels "hr-admin-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.RequestApproval) (string, error)
	List(requestID string) (list []dbmodels.RequestApproval, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RequestApproval) (string, error) {
	err := i.db.
		Omit("Request", "Approver").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(requestID string) (list []dbmodels.RequestApproval, err error) {
	err = i.db.Model(dbmodels.RequestApproval{}).
		Where("request_id = ?", requestID).
		Preload("Approver").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
