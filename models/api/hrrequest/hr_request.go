package hrrequestapimodels

import (
	"strings"
	"time"

	"hr-admin-backend/lib/utils/helpers"
	"hr-admin-backend/models"
	zenhrapimodels "hr-admin-backend/models/api/zenhr"
	dbmodels "hr-admin-backend/models/db"

	"github.com/pkg/errors"
)

type SubmitData struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Priority    string   `json:"priority"`
	Documents   []string `json:"documents"`
}

// Submit разобранные поля заявки
type Submit struct {
	Type        models.RequestType
	Title       string
	Description string
	Priority    models.RequestPriority
	StartDate   *time.Time
	EndDate     *time.Time
	Documents   []string
}

func (s SubmitData) Validate() error {
	_, err := s.Parse()
	return err
}

func (s SubmitData) Parse() (Submit, error) {
	result := Submit{
		Type:        models.ParseRequestType(s.Type),
		Title:       strings.TrimSpace(s.Title),
		Description: strings.TrimSpace(s.Description),
		Documents:   s.Documents,
	}
	if result.Type == "" {
		return Submit{}, errors.New("не указан тип заявки")
	}
	if result.Title == "" {
		return Submit{}, errors.New("не указан заголовок заявки")
	}
	if result.Description == "" {
		return Submit{}, errors.New("не указано описание заявки")
	}
	var err error
	result.Priority, err = models.ParseRequestPriority(s.Priority)
	if err != nil {
		return Submit{}, err
	}
	result.StartDate, err = helpers.ParseOptionalDate(s.StartDate)
	if err != nil {
		return Submit{}, errors.Wrap(err, "дата начала")
	}
	result.EndDate, err = helpers.ParseOptionalDate(s.EndDate)
	if err != nil {
		return Submit{}, errors.Wrap(err, "дата окончания")
	}
	if result.StartDate != nil && result.EndDate != nil && result.EndDate.Before(*result.StartDate) {
		return Submit{}, errors.New("дата окончания раньше даты начала")
	}
	return result, nil
}

type StatusData struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
	Comments  string `json:"comments"`
}

func (s StatusData) Validate() error {
	if strings.TrimSpace(s.RequestID) == "" {
		return errors.New("не указан идентификатор заявки")
	}
	if strings.TrimSpace(s.Status) == "" {
		return errors.New("не указан статус заявки")
	}
	return nil
}

type Filter struct {
	Status     string `query:"status"`
	Type       string `query:"type"`
	EmployeeID string `query:"employeeId"`
}

type View struct {
	ID           string   `json:"id"`
	CompanyID    string   `json:"companyId"`
	Type         string   `json:"type"`
	TypeName     string   `json:"typeName"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	StatusName   string   `json:"statusName"`
	Priority     string   `json:"priority"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Documents    []string `json:"documents"`
	Comments     string   `json:"comments,omitempty"`
	EmployeeID   string   `json:"employeeId"`
	EmployeeName string   `json:"employeeName,omitempty"`
	EmployeeNo   string   `json:"employeeNo,omitempty"`
	ManagerID    string   `json:"managerId,omitempty"`
	ManagerName  string   `json:"managerName,omitempty"`
	ExternalID   string   `json:"externalId,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

func Convert(rec dbmodels.HRRequest) View {
	result := View{
		ID:          rec.ID,
		CompanyID:   rec.CompanyID,
		Type:        string(rec.Type),
		TypeName:    rec.Type.ToHuman(),
		Title:       rec.Title,
		Description: rec.Description,
		Status:      string(rec.Status),
		StatusName:  rec.Status.ToHuman(),
		Priority:    string(rec.Priority),
		StartDate:   helpers.FormatDate(rec.StartDate),
		EndDate:     helpers.FormatDate(rec.EndDate),
		Documents:   []string(rec.Documents),
		Comments:    rec.Comments,
		EmployeeID:  rec.EmployeeID,
		ManagerID:   rec.GetManagerID(),
		ExternalID:  rec.ExternalID,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   rec.UpdatedAt.Format(time.RFC3339),
	}
	if result.Documents == nil {
		result.Documents = []string{}
	}
	if rec.Employee != nil {
		result.EmployeeName = rec.Employee.GetFullName()
		result.EmployeeNo = rec.Employee.EmployeeID
	}
	if rec.Manager != nil {
		result.ManagerName = rec.Manager.GetFullName()
	}
	return result
}

type SubmitResult struct {
	HRRequest     View                `json:"hrRequest"`
	ZenhrResponse *zenhrapimodels.Ack `json:"zenhrResponse"`
}

type ApprovalView struct {
	ID           string `json:"id"`
	RequestID    string `json:"requestId"`
	ApproverID   string `json:"approverId"`
	ApproverName string `json:"approverName,omitempty"`
	Status       string `json:"status"`
	StatusName   string `json:"statusName"`
	Comment      string `json:"comment,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

func ConvertApproval(rec dbmodels.RequestApproval) ApprovalView {
	result := ApprovalView{
		ID:         rec.ID,
		RequestID:  rec.RequestID,
		ApproverID: rec.ApproverID,
		Status:     string(rec.Status),
		StatusName: rec.Status.ToHuman(),
		Comment:    rec.Comment,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.Approver != nil {
		result.ApproverName = rec.Approver.GetFullName()
	}
	return result
}

type DocumentView struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}
