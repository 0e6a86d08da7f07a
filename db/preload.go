package db

import (
	"hr-admin-backend/config"
	companystore "hr-admin-backend/lib/company/store"
	usersstore "hr-admin-backend/lib/users/store"
	authutils "hr-admin-backend/lib/utils/auth-utils"
	"hr-admin-backend/models"
	dbmodels "hr-admin-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	companyID := addCompany()
	addAdmin(companyID)
}

func addCompany() string {
	name := config.Conf.Preload.CompanyName
	if name == "" {
		return ""
	}
	store := companystore.NewInstance(DB)
	existedRec, err := store.FindByName(name)
	if err != nil {
		log.WithError(err).Error("ошибка добавления компании")
		return ""
	}
	if existedRec != nil {
		return existedRec.ID
	}
	id, err := store.Create(dbmodels.Company{Name: name, IsActive: true})
	if err != nil {
		log.WithError(err).Error("ошибка добавления компании")
		return ""
	}
	log.WithField("company_id", id).Info("добавлена компания")
	return id
}

func addAdmin(companyID string) {
	email := config.Conf.Preload.AdminEmail
	if email == "" {
		log.Warn("администратор не добавлен, отсутствует настройка PRELOAD_ADMIN_EMAIL")
		return
	}
	if companyID == "" {
		log.Warn("администратор не добавлен, отсутствует настройка PRELOAD_COMPANY_NAME")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		Email:     email,
		Password:  authutils.GetMD5Hash(config.Conf.Preload.AdminPassword),
		FirstName: "Администратор",
		Role:      models.AdminRole,
		CompanyID: &companyID,
		IsActive:  true,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
	}
}
