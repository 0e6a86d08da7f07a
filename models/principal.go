package models

// Principal - аутентифицированный пользователь, от имени которого выполняется операция
type Principal struct {
	UserID     string
	CompanyID  string
	EmployeeID string
	Role       UserRole
}

func (p Principal) IsAuthenticated() bool {
	return p.UserID != ""
}
