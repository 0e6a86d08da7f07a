package extapiauditstore

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-admin-backend/models/db"
)

// ответы внешних сервисов бывают большими html страницами
const maxPayloadSize = 8192

type Provider interface {
	Create(rec dbmodels.ExtApiAudit) (id string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ExtApiAudit) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	rec.Request = truncate(rec.Request, maxPayloadSize)
	rec.Response = truncate(rec.Response, maxPayloadSize)
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения аудита внешнего запроса")
	}
	return rec.ID, nil
}

func truncate(value string, size int) string {
	if len(value) <= size {
		return value
	}
	value = value[:size]
	for len(value) > 0 && !utf8.ValidString(value) {
		value = value[:len(value)-1]
	}
	return value
}
