package employeeapimodels

import (
	zenhrapimodels "hr-admin-backend/models/api/zenhr"
	dbmodels "hr-admin-backend/models/db"
)

type View struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	RoleName   string `json:"roleName"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	IsActive   bool   `json:"isActive"`
}

// Convert - локальная учетная запись, дополненная данными ZenHR (если есть)
func Convert(rec dbmodels.User, ext *zenhrapimodels.EmployeeRecord) View {
	result := View{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		FirstName:  rec.FirstName,
		LastName:   rec.LastName,
		Email:      rec.Email,
		Role:       string(rec.Role),
		RoleName:   rec.Role.ToHuman(),
		IsActive:   rec.IsActive,
	}
	if ext != nil {
		result.Department = ext.Department
		result.Position = ext.Position
	}
	return result
}
