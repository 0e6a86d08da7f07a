package zenhrapimodels

import "encoding/json"

// EmployeeRecord сотрудник в ZenHR
type EmployeeRecord struct {
	ID          string `json:"id"`
	EmployeeNo  string `json:"employee_no"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Position    string `json:"position"`
	CompanyID   string `json:"company_id"`
	Status      string `json:"status"`
	HiringDate  string `json:"hiring_date,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

type AttendanceRecord struct {
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
	Location   string `json:"location,omitempty"`
}

type RequestRecord struct {
	ID          string   `json:"id,omitempty"`
	ExternalRef string   `json:"external_ref,omitempty"` // ид заявки в нашей системе
	EmployeeID  string   `json:"employee_id"`
	CompanyID   string   `json:"company_id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Documents   []string `json:"documents,omitempty"`
}

type StatusUpdate struct {
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

// Ack подтверждение операции от ZenHR
type Ack struct {
	Success bool            `json:"success"`
	ID      string          `json:"id,omitempty"`
	Message string          `json:"message,omitempty"`
	Mock    bool            `json:"mock,omitempty"` // ответ сформирован локально, ZenHR не настроен
	Data    json.RawMessage `json:"data,omitempty"`
}

type ErrorData struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
