package attendanceapimodels

import (
	"strings"
	"time"

	"hr-admin-backend/lib/utils/helpers"
	"hr-admin-backend/models"
	zenhrapimodels "hr-admin-backend/models/api/zenhr"
	dbmodels "hr-admin-backend/models/db"

	"github.com/pkg/errors"
)

type MarkData struct {
	Date     string `json:"date"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
	Location string `json:"location"`
}

type Mark struct {
	Date     time.Time
	CheckIn  *time.Time
	CheckOut *time.Time
	Status   models.AttendanceStatus
}

func (m MarkData) Validate() error {
	_, err := m.Parse()
	return err
}

func (m MarkData) Parse() (Mark, error) {
	if strings.TrimSpace(m.Date) == "" {
		return Mark{}, errors.New("не указана дата")
	}
	date, err := helpers.ParseDate(m.Date)
	if err != nil {
		return Mark{}, err
	}
	result := Mark{Date: date}
	result.CheckIn, err = helpers.ParseTimeOnDate(date, m.CheckIn)
	if err != nil {
		return Mark{}, errors.Wrap(err, "время прихода")
	}
	result.CheckOut, err = helpers.ParseTimeOnDate(date, m.CheckOut)
	if err != nil {
		return Mark{}, errors.Wrap(err, "время ухода")
	}
	if result.CheckIn != nil && result.CheckOut != nil && result.CheckOut.Before(*result.CheckIn) {
		return Mark{}, errors.New("время ухода раньше времени прихода")
	}
	result.Status, err = models.ParseAttendanceStatus(m.Status)
	if err != nil {
		return Mark{}, err
	}
	return result, nil
}

type Filter struct {
	StartDate  string `query:"startDate"`
	EndDate    string `query:"endDate"`
	EmployeeID string `query:"employeeId"`
}

type Period struct {
	From *time.Time
	To   *time.Time
}

func (f Filter) Period() (Period, error) {
	from, err := helpers.ParseOptionalDate(f.StartDate)
	if err != nil {
		return Period{}, errors.Wrap(err, "начало периода")
	}
	to, err := helpers.ParseOptionalDate(f.EndDate)
	if err != nil {
		return Period{}, errors.Wrap(err, "конец периода")
	}
	if from != nil && to != nil && to.Before(*from) {
		return Period{}, errors.New("конец периода раньше начала")
	}
	return Period{From: from, To: to}, nil
}

type View struct {
	ID           string `json:"id"`
	CompanyID    string `json:"companyId"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Date         string `json:"date"`
	CheckIn      string `json:"checkIn,omitempty"`
	CheckOut     string `json:"checkOut,omitempty"`
	Status       string `json:"status"`
	StatusName   string `json:"statusName"`
	Notes        string `json:"notes,omitempty"`
	Location     string `json:"location,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

func Convert(rec dbmodels.Attendance) View {
	result := View{
		ID:         rec.ID,
		CompanyID:  rec.CompanyID,
		EmployeeID: rec.EmployeeID,
		Date:       helpers.FormatDate(&rec.Date),
		CheckIn:    helpers.FormatTime(rec.CheckIn),
		CheckOut:   helpers.FormatTime(rec.CheckOut),
		Status:     string(rec.Status),
		StatusName: rec.Status.ToHuman(),
		Notes:      rec.Notes,
		Location:   rec.Location,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.Employee != nil {
		result.EmployeeName = rec.Employee.GetFullName()
	}
	return result
}

type MarkResult struct {
	Attendance    View                `json:"attendance"`
	ZenhrResponse *zenhrapimodels.Ack `json:"zenhrResponse"`
}
