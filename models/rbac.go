package models

type RbacFunc func(companyID, userID string, role UserRole, path string) bool

type Module string

const (
	HRRequestModule    Module = "HR_REQUEST"
	AttendanceModule   Module = "ATTENDANCE"
	EmployeeModule     Module = "EMPLOYEE"
	NotificationModule Module = "NOTIFICATION"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	ViewPermission   Permission = "VIEW"
	FlowPermission   Permission = "FLOW"
	ExportPermission Permission = "EXPORT"
	FilesPermission  Permission = "FILES"
)
