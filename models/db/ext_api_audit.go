package dbmodels

import "github.com/pkg/errors"

// ExtApiAudit неуспешные запросы во внешние сервисы
type ExtApiAudit struct {
	BaseModel
	CompanyID string `gorm:"type:varchar(36);index"`
	RecID     string `gorm:"type:varchar(36)"`
	Service   string `gorm:"type:varchar(50)"`
	Uri       string
	Request   string
	Response  string
	Status    int
}

func (r ExtApiAudit) Validate() error {
	if r.Service == "" {
		return errors.New("не указан внешний сервис")
	}
	if r.Uri == "" {
		return errors.New("не указан адрес запроса")
	}
	return nil
}
