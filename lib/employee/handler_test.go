package employeehandler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "hr-admin-backend/lib/utils/app-errors"
	"hr-admin-backend/models"
	zenhrapimodels "hr-admin-backend/models/api/zenhr"
	dbmodels "hr-admin-backend/models/db"
)

type userStoreMock struct {
	users []dbmodels.User
}

func (u *userStoreMock) Create(rec dbmodels.User) (string, error) {
	return rec.ID, nil
}

func (u *userStoreMock) GetByID(userID string) (*dbmodels.User, error) {
	return nil, nil
}

func (u *userStoreMock) FindByEmail(email string) (*dbmodels.User, error) {
	return nil, nil
}

func (u *userStoreMock) FindFirstManager(companyID string) (*dbmodels.User, error) {
	return nil, nil
}

func (u *userStoreMock) List(companyID string) ([]dbmodels.User, error) {
	result := []dbmodels.User{}
	for _, user := range u.users {
		if user.GetCompanyID() == companyID {
			result = append(result, user)
		}
	}
	return result, nil
}

type connectorMock struct {
	err       error
	employees []zenhrapimodels.EmployeeRecord
}

func (c *connectorMock) FetchEmployee(ctx context.Context, employeeID string) (*zenhrapimodels.EmployeeRecord, error) {
	if c.err != nil {
		return nil, c.err
	}
	for _, item := range c.employees {
		if item.ID == employeeID {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (c *connectorMock) FetchAllEmployees(ctx context.Context, companyID string) ([]zenhrapimodels.EmployeeRecord, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.employees, nil
}

func (c *connectorMock) MarkAttendance(ctx context.Context, rec zenhrapimodels.AttendanceRecord) (*zenhrapimodels.Ack, error) {
	return nil, nil
}

func (c *connectorMock) SubmitRequest(ctx context.Context, rec zenhrapimodels.RequestRecord) (*zenhrapimodels.Ack, error) {
	return nil, nil
}

func (c *connectorMock) FetchRequests(ctx context.Context, employeeID string) ([]zenhrapimodels.RequestRecord, error) {
	return nil, nil
}

func (c *connectorMock) UpdateRequestStatus(ctx context.Context, requestID, status, comment string) (*zenhrapimodels.Ack, error) {
	return nil, nil
}

func newUser(id, companyID, employeeID string, role models.UserRole) dbmodels.User {
	return dbmodels.User{
		BaseModel:  dbmodels.BaseModel{ID: id},
		FirstName:  "First",
		LastName:   id,
		Role:       role,
		EmployeeID: employeeID,
		CompanyID:  &companyID,
		IsActive:   true,
	}
}

func TestEmployeeHandler(t *testing.T) {
	ctx := context.Background()
	store := &userStoreMock{users: []dbmodels.User{
		newUser("user-1", "company-t", "E-1", models.EmployeeRole),
		newUser("user-2", "company-t", "", models.ManagerRole),
		newUser("user-3", "company-other", "E-3", models.EmployeeRole),
	}}
	connector := &connectorMock{employees: []zenhrapimodels.EmployeeRecord{
		{ID: "E-1", Department: "Finance", Position: "Accountant"},
	}}
	handler := New(connector, store)
	manager := models.Principal{UserID: "user-2", CompanyID: "company-t", Role: models.ManagerRole}
	employee := models.Principal{UserID: "user-1", CompanyID: "company-t", EmployeeID: "E-1", Role: models.EmployeeRole}

	t.Run(`List merges ZenHR data`, func(t *testing.T) {
		list, err := handler.List(ctx, manager)
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Finance", list[0].Department)
		require.Equal(t, "Accountant", list[0].Position)
		require.Empty(t, list[1].Department)
		require.Equal(t, "MANAGER", list[1].Role)
	})

	t.Run(`List survives ZenHR failure`, func(t *testing.T) {
		failing := New(&connectorMock{err: apperrors.NewConnectorStatus("ZenHR", http.StatusInternalServerError, "")}, store)
		list, err := failing.List(ctx, manager)
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Empty(t, list[0].Department)
	})

	t.Run(`List is not available to employee`, func(t *testing.T) {
		_, err := handler.List(ctx, employee)
		require.True(t, apperrors.IsAuthorization(err))
	})

	t.Run(`Get`, func(t *testing.T) {
		rec, err := handler.Get(ctx, employee, "E-1")
		require.Nil(t, err)
		require.Equal(t, "Finance", rec.Department)

		_, err = handler.Get(ctx, employee, "E-3")
		require.True(t, apperrors.IsAuthorization(err))

		_, err = handler.Get(ctx, manager, "E-404")
		require.True(t, apperrors.IsNotFound(err))
	})
}
