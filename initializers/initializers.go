package initializers

import (
	"time"

	"hr-admin-backend/config"
	"hr-admin-backend/fiberlog"
	attendancehandler "hr-admin-backend/lib/attendance"
	employeehandler "hr-admin-backend/lib/employee"
	xlsexport "hr-admin-backend/lib/export/xls"
	zenhrclient "hr-admin-backend/lib/external-services/zenhr/client"
	filestorage "hr-admin-backend/lib/file-storage"
	hrrequesthandler "hr-admin-backend/lib/hr-request"
	notificationhandler "hr-admin-backend/lib/notification"
	"hr-admin-backend/lib/rbac"
	"hr-admin-backend/lib/smtp"
	connectionhub "hr-admin-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	publisher := InitRedis()
	connectionhub.Init()
	filestorage.NewHandler(config.Conf.S3.BucketName)
	xlsexport.NewHandler()
	zenhrclient.NewProvider(zenhrclient.Config{
		BaseUrl: config.Conf.ZenHR.BaseUrl,
		ApiKey:  config.Conf.ZenHR.ApiKey,
		Timeout: time.Duration(config.Conf.ZenHR.TimeoutSec) * time.Second,
	})
	notificationhandler.NewHandler(publisher, smtp.Instance)
	hrrequesthandler.NewHandler(zenhrclient.Instance, notificationhandler.Instance)
	attendancehandler.NewHandler(zenhrclient.Instance, xlsexport.Instance)
	employeehandler.NewHandler(zenhrclient.Instance)
	rbac.NewHandler()
}
