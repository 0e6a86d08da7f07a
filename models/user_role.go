package models

import "strings"

type UserRole string

const (
	EmployeeRole UserRole = "EMPLOYEE"
	ManagerRole  UserRole = "MANAGER"
	AdminRole    UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	EmployeeRole: "Сотрудник",
	ManagerRole:  "Руководитель",
	AdminRole:    "Администратор",
}

func ParseUserRole(value string) UserRole {
	return UserRole(strings.ToUpper(strings.TrimSpace(value)))
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsKnown() bool {
	_, ok := roleHumanName[r]
	return ok
}

// CanApprove - право менять статус заявок
func (r UserRole) CanApprove() bool {
	return r == ManagerRole || r == AdminRole
}
