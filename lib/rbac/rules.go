package rbac

import (
	"hr-admin-backend/models"
)

var (
	ApproverRoleSet = []models.UserRole{models.AdminRole, models.ManagerRole}
	AllRoles        = []models.UserRole{models.AdminRole, models.ManagerRole, models.EmployeeRole}
)

func (i *impl) initRules() {
	i.hrRequest()
	i.attendance()
	i.employee()
	i.notification()
}

func (i *impl) hrRequest() {
	// VIEW
	i.mustRegister(models.HRRequestModule, models.ViewPermission, AllRoles, "/api/v1/hr-request [get]", nil)
	i.mustRegister(models.HRRequestModule, models.ViewPermission, AllRoles, "/api/v1/hr-request/external [get]", nil)
	i.mustRegister(models.HRRequestModule, models.ViewPermission, AllRoles, "/api/v1/hr-request/{id}/approvals [get]", nil)
	i.mustRegister(models.HRRequestModule, models.ViewPermission, AllRoles, "/api/v1/hr-request/{id}/pdf [get]", nil)
	// CREATE
	i.mustRegister(models.HRRequestModule, models.CreatePermission, AllRoles, "/api/v1/hr-request [post]", nil)
	// FILES
	i.mustRegister(models.HRRequestModule, models.FilesPermission, AllRoles, "/api/v1/hr-request/documents [post]", nil)
	i.mustRegister(models.HRRequestModule, models.FilesPermission, AllRoles, "/api/v1/hr-request/documents [get]", nil)
	// FLOW
	i.mustRegister(models.HRRequestModule, models.FlowPermission, ApproverRoleSet, "/api/v1/hr-request [patch]", nil)
	// EXPORT
	i.mustRegister(models.HRRequestModule, models.ExportPermission, ApproverRoleSet, "/api/v1/hr-request/export [get]", nil)
}

func (i *impl) attendance() {
	i.mustRegister(models.AttendanceModule, models.ViewPermission, AllRoles, "/api/v1/attendance [get]", nil)
	i.mustRegister(models.AttendanceModule, models.CreatePermission, AllRoles, "/api/v1/attendance [post]", nil)
	i.mustRegister(models.AttendanceModule, models.ExportPermission, AllRoles, "/api/v1/attendance/export [get]", nil)
}

func (i *impl) employee() {
	i.mustRegister(models.EmployeeModule, models.ViewPermission, ApproverRoleSet, "/api/v1/employees [get]", nil)
	// своя карточка доступна любой роли, проверка в обработчике
	i.mustRegister(models.EmployeeModule, models.ViewPermission, AllRoles, "/api/v1/employees/{employeeId} [get]", AllowFunc())
}

func (i *impl) notification() {
	i.mustRegister(models.NotificationModule, models.ViewPermission, AllRoles, "/api/v1/notifications [get]", nil)
	i.mustRegister(models.NotificationModule, models.ViewPermission, AllRoles, "/api/v1/notifications/{id}/read [put]", nil)
}
