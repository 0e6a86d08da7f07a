package hrrequesthandler

import (
	"context"
	"fmt"
	"sort"
	"time"

	hrrequeststore "hr-admin-backend/lib/hr-request/store"
	"hr-admin-backend/models"
	zenhrapimodels "hr-admin-backend/models/api/zenhr"
	dbmodels "hr-admin-backend/models/db"
)

var baseTime = time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)

// memDB хранилище в памяти; транзакция работает на копии и применяется только при успехе
type memDB struct {
	users         []dbmodels.User
	requests      []dbmodels.HRRequest
	approvals     []dbmodels.RequestApproval
	notifications []dbmodels.Notification
	seq           int
}

func (m *memDB) clone() *memDB {
	return &memDB{
		users:         append([]dbmodels.User{}, m.users...),
		requests:      append([]dbmodels.HRRequest{}, m.requests...),
		approvals:     append([]dbmodels.RequestApproval{}, m.approvals...),
		notifications: append([]dbmodels.Notification{}, m.notifications...),
		seq:           m.seq,
	}
}

func (m *memDB) stores() Stores {
	return Stores{
		Requests:      &requestStoreMock{db: m},
		Approvals:     &approvalStoreMock{db: m},
		Notifications: &notificationStoreMock{db: m},
		Users:         &userStoreMock{db: m},
	}
}

func (m *memDB) tx(fn func(stores Stores) error) error {
	staged := m.clone()
	if err := fn(staged.stores()); err != nil {
		return err
	}
	*m = *staged
	return nil
}

func (m *memDB) nextID(prefix string) (string, time.Time) {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq), baseTime.Add(time.Duration(m.seq) * time.Second)
}

func (m *memDB) addUser(id, companyID string, role models.UserRole) dbmodels.User {
	_, createdAt := m.nextID("user")
	rec := dbmodels.User{
		BaseModel:  dbmodels.BaseModel{ID: id, CreatedAt: createdAt},
		FirstName:  "First",
		LastName:   id,
		Email:      id + "@example.com",
		Role:       role,
		EmployeeID: "ZEN-" + id,
		IsActive:   true,
	}
	if companyID != "" {
		rec.CompanyID = &companyID
	}
	m.users = append(m.users, rec)
	return rec
}

func (m *memDB) findUser(id string) *dbmodels.User {
	for _, user := range m.users {
		if user.ID == id {
			found := user
			return &found
		}
	}
	return nil
}

func (m *memDB) withRelations(rec dbmodels.HRRequest) dbmodels.HRRequest {
	rec.Employee = m.findUser(rec.EmployeeID)
	if rec.ManagerID != nil {
		rec.Manager = m.findUser(*rec.ManagerID)
	}
	return rec
}

type userStoreMock struct {
	db *memDB
}

func (u *userStoreMock) Create(rec dbmodels.User) (string, error) {
	u.db.users = append(u.db.users, rec)
	return rec.ID, nil
}

func (u *userStoreMock) GetByID(userID string) (*dbmodels.User, error) {
	return u.db.findUser(userID), nil
}

func (u *userStoreMock) FindByEmail(email string) (*dbmodels.User, error) {
	for _, user := range u.db.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (u *userStoreMock) FindFirstManager(companyID string) (*dbmodels.User, error) {
	list := append([]dbmodels.User{}, u.db.users...)
	sort.SliceStable(list, func(a, b int) bool {
		if list[a].CreatedAt.Equal(list[b].CreatedAt) {
			return list[a].ID < list[b].ID
		}
		return list[a].CreatedAt.Before(list[b].CreatedAt)
	})
	for _, user := range list {
		if user.GetCompanyID() == companyID && user.Role == models.ManagerRole && user.IsActive {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (u *userStoreMock) List(companyID string) ([]dbmodels.User, error) {
	result := []dbmodels.User{}
	for _, user := range u.db.users {
		if user.GetCompanyID() == companyID {
			result = append(result, user)
		}
	}
	return result, nil
}

type requestStoreMock struct {
	db *memDB
}

func (r *requestStoreMock) Create(rec dbmodels.HRRequest) (string, error) {
	id, createdAt := r.db.nextID("req")
	rec.ID = id
	rec.CreatedAt = createdAt
	rec.UpdatedAt = createdAt
	rec.Employee = nil
	rec.Manager = nil
	r.db.requests = append(r.db.requests, rec)
	return id, nil
}

func (r *requestStoreMock) GetByID(companyID, id string) (*dbmodels.HRRequest, error) {
	for _, rec := range r.db.requests {
		if rec.ID == id && rec.CompanyID == companyID {
			found := r.db.withRelations(rec)
			return &found, nil
		}
	}
	return nil, nil
}

func (r *requestStoreMock) Update(id string, updMap map[string]interface{}) error {
	for k := range r.db.requests {
		if r.db.requests[k].ID != id {
			continue
		}
		for field, value := range updMap {
			switch field {
			case "status":
				r.db.requests[k].Status = value.(models.RequestStatus)
			case "comments":
				r.db.requests[k].Comments = value.(string)
			case "external_id":
				r.db.requests[k].ExternalID = value.(string)
			default:
				return fmt.Errorf("unexpected field %v", field)
			}
		}
		return nil
	}
	return nil
}

func (r *requestStoreMock) List(filter hrrequeststore.Filter) ([]dbmodels.HRRequest, error) {
	result := []dbmodels.HRRequest{}
	for _, rec := range r.db.requests {
		if filter.CompanyID != "" && rec.CompanyID != filter.CompanyID {
			continue
		}
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.ParticipantID != "" && rec.EmployeeID != filter.ParticipantID && rec.GetManagerID() != filter.ParticipantID {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		if filter.Type != "" && rec.Type != filter.Type {
			continue
		}
		result = append(result, r.db.withRelations(rec))
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].CreatedAt.After(result[b].CreatedAt)
	})
	return result, nil
}

type approvalStoreMock struct {
	db *memDB
}

func (a *approvalStoreMock) Create(rec dbmodels.RequestApproval) (string, error) {
	id, _ := a.db.nextID("approval")
	rec.ID = id
	a.db.approvals = append(a.db.approvals, rec)
	return id, nil
}

func (a *approvalStoreMock) List(requestID string) ([]dbmodels.RequestApproval, error) {
	result := []dbmodels.RequestApproval{}
	for _, rec := range a.db.approvals {
		if rec.RequestID == requestID {
			rec.Approver = a.db.findUser(rec.ApproverID)
			result = append(result, rec)
		}
	}
	return result, nil
}

type notificationStoreMock struct {
	db *memDB
}

func (n *notificationStoreMock) Create(rec dbmodels.Notification) (string, error) {
	id, _ := n.db.nextID("notification")
	rec.ID = id
	n.db.notifications = append(n.db.notifications, rec)
	return id, nil
}

func (n *notificationStoreMock) List(userID string, unreadOnly bool) ([]dbmodels.Notification, error) {
	result := []dbmodels.Notification{}
	for _, rec := range n.db.notifications {
		if rec.UserID == userID && (!unreadOnly || !rec.IsRead) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (n *notificationStoreMock) MarkRead(userID, id string) (bool, error) {
	return false, nil
}

type statusCall struct {
	RequestID string
	Status    string
	Comment   string
}

type connectorMock struct {
	submitErr error
	updateErr error
	submitted []zenhrapimodels.RequestRecord
	updates   []statusCall
	remote    []zenhrapimodels.RequestRecord
}

func (c *connectorMock) FetchEmployee(ctx context.Context, employeeID string) (*zenhrapimodels.EmployeeRecord, error) {
	return &zenhrapimodels.EmployeeRecord{ID: employeeID}, nil
}

func (c *connectorMock) FetchAllEmployees(ctx context.Context, companyID string) ([]zenhrapimodels.EmployeeRecord, error) {
	return nil, nil
}

func (c *connectorMock) MarkAttendance(ctx context.Context, rec zenhrapimodels.AttendanceRecord) (*zenhrapimodels.Ack, error) {
	return &zenhrapimodels.Ack{Success: true}, nil
}

func (c *connectorMock) SubmitRequest(ctx context.Context, rec zenhrapimodels.RequestRecord) (*zenhrapimodels.Ack, error) {
	if c.submitErr != nil {
		return nil, c.submitErr
	}
	c.submitted = append(c.submitted, rec)
	return &zenhrapimodels.Ack{Success: true, ID: "ZEN-" + rec.ExternalRef}, nil
}

func (c *connectorMock) FetchRequests(ctx context.Context, employeeID string) ([]zenhrapimodels.RequestRecord, error) {
	result := []zenhrapimodels.RequestRecord{}
	for _, rec := range c.remote {
		if rec.EmployeeID == employeeID {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (c *connectorMock) UpdateRequestStatus(ctx context.Context, requestID, status, comment string) (*zenhrapimodels.Ack, error) {
	if c.updateErr != nil {
		return nil, c.updateErr
	}
	c.updates = append(c.updates, statusCall{RequestID: requestID, Status: status, Comment: comment})
	return &zenhrapimodels.Ack{Success: true, ID: requestID}, nil
}

type notifierMock struct {
	delivered []dbmodels.Notification
}

func (n *notifierMock) Deliver(ctx context.Context, recs ...dbmodels.Notification) {
	n.delivered = append(n.delivered, recs...)
}
