package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "hr-admin-backend/models/db"
)

func AutoMigrateDB(tx *gorm.DB) error {
	tx.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := tx.AutoMigrate(&dbmodels.Company{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Company")
	}
	if err := tx.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := tx.AutoMigrate(&dbmodels.HRRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры HRRequest")
	}
	if err := tx.AutoMigrate(&dbmodels.RequestApproval{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RequestApproval")
	}
	if err := tx.AutoMigrate(&dbmodels.Attendance{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Attendance")
	}
	if err := tx.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := tx.AutoMigrate(&dbmodels.ExtApiAudit{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ExtApiAudit")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
