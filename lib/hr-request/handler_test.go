package hrrequesthandler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "hr-admin-backend/lib/utils/app-errors"
	"hr-admin-backend/models"
	hrrequestapimodels "hr-admin-backend/models/api/hrrequest"
	zenhrapimodels "hr-admin-backend/models/api/zenhr"
)

const (
	companyT     = "company-t"
	companyOther = "company-other"
)

type testEnv struct {
	db        *memDB
	connector *connectorMock
	notifier  *notifierMock
	handler   Provider
}

func newTestEnv() *testEnv {
	env := &testEnv{
		db:        &memDB{},
		connector: &connectorMock{},
		notifier:  &notifierMock{},
	}
	env.handler = New(env.connector, env.notifier, env.db.stores(), env.db.tx)
	return env
}

func principalOf(userID, companyID string, role models.UserRole) models.Principal {
	return models.Principal{
		UserID:     userID,
		CompanyID:  companyID,
		EmployeeID: "ZEN-" + userID,
		Role:       role,
	}
}

func leaveRequest() hrrequestapimodels.SubmitData {
	return hrrequestapimodels.SubmitData{
		Type:        "leave",
		Title:       "Annual Leave",
		Description: "5 days",
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run(`employee submits with manager present`, func(t *testing.T) {
		env := newTestEnv()
		env.db.addUser("employee-e", companyT, models.EmployeeRole)
		env.db.addUser("manager-m", companyT, models.ManagerRole)

		result, err := env.handler.Submit(ctx, principalOf("employee-e", companyT, models.EmployeeRole), leaveRequest())
		require.Nil(t, err)
		require.NotNil(t, result)

		require.Len(t, env.db.requests, 1)
		rec := env.db.requests[0]
		require.Equal(t, models.RequestStatusPending, rec.Status)
		require.Equal(t, models.RequestTypeLeave, rec.Type)
		require.Equal(t, models.PriorityMedium, rec.Priority)
		require.Equal(t, "employee-e", rec.EmployeeID)
		require.Equal(t, "manager-m", rec.GetManagerID())
		require.Equal(t, companyT, rec.CompanyID)

		require.Len(t, env.db.notifications, 1)
		require.Equal(t, "manager-m", env.db.notifications[0].UserID)
		require.Equal(t, models.NotificationHRRequest, env.db.notifications[0].Category)
		require.Equal(t, rec.ID, *env.db.notifications[0].RequestID)
		require.Len(t, env.notifier.delivered, 1)

		require.Equal(t, "PENDING", result.HRRequest.Status)
		require.Equal(t, "manager-m", result.HRRequest.ManagerID)
		require.Equal(t, "First manager-m", result.HRRequest.ManagerName)
		require.Equal(t, "First employee-e", result.HRRequest.EmployeeName)
		require.NotNil(t, result.ZenhrResponse)
		require.True(t, result.ZenhrResponse.Success)
		require.Equal(t, "ZEN-"+rec.ID, rec.ExternalID)

		require.Len(t, env.connector.submitted, 1)
		sent := env.connector.submitted[0]
		require.Equal(t, rec.ID, sent.ExternalRef)
		require.Equal(t, companyT, sent.CompanyID)
		require.Equal(t, "ZEN-employee-e", sent.EmployeeID)
		require.Equal(t, "LEAVE", sent.Type)
	})

	t.Run(`first manager by creation order`, func(t *testing.T) {
		env := newTestEnv()
		env.db.addUser("employee-e", companyT, models.EmployeeRole)
		env.db.addUser("manager-b", companyT, models.ManagerRole)
		env.db.addUser("manager-a", companyT, models.ManagerRole)
		env.db.addUser("manager-x", companyOther, models.ManagerRole)

		result, err := env.handler.Submit(ctx, principalOf("employee-e", companyT, models.EmployeeRole), leaveRequest())
		require.Nil(t, err)
		require.Equal(t, "manager-b", result.HRRequest.ManagerID)
	})

	t.Run(`no manager in company`, func(t *testing.T) {
		env := newTestEnv()
		env.db.addUser("employee-e", companyT, models.EmployeeRole)
		env.db.addUser("manager-x", companyOther, models.ManagerRole)

		result, err := env.handler.Submit(ctx, principalOf("employee-e", companyT, models.EmployeeRole), leaveRequest())
		require.Nil(t, err)
		require.Empty(t, result.HRRequest.ManagerID)
		require.Len(t, env.db.requests, 1)
		require.Nil(t, env.db.requests[0].ManagerID)
		require.Empty(t, env.db.notifications)
		require.Empty(t, env.notifier.delivered)
	})

	t.Run(`connector failure leaves no rows`, func(t *testing.T) {
		env := newTestEnv()
		env.db.addUser("employee-e", companyT, models.EmployeeRole)
		env.db.addUser("manager-m", companyT, models.ManagerRole)
		env.connector.submitErr = apperrors.NewConnectorStatus("ZenHR", http.StatusServiceUnavailable, "maintenance")

		result, err := env.handler.Submit(ctx, principalOf("employee-e", companyT, models.EmployeeRole), leaveRequest())
		require.Nil(t, result)
		require.True(t, apperrors.IsConnector(err))
		require.Empty(t, env.db.requests)
		require.Empty(t, env.db.notifications)
		require.Empty(t, env.notifier.delivered)
	})

	t.Run(`missing title`, func(t *testing.T) {
		env := newTestEnv()
		env.db.addUser("employee-e", companyT, models.EmployeeRole)
		env.db.addUser("manager-m", companyT, models.ManagerRole)
		data := leaveRequest()
		data.Title = " "

		result, err := env.handler.Submit(ctx, principalOf("employee-e", companyT, models.EmployeeRole), data)
		require.Nil(t, result)
		require.True(t, apperrors.IsValidation(err))
		require.Empty(t, env.db.requests)
		require.Empty(t, env.db.notifications)
		require.Empty(t, env.connector.submitted)
	})

	t.Run(`invalid priority and dates`, func(t *testing.T) {
		env := newTestEnv()
		env.db.addUser("employee-e", companyT, models.EmployeeRole)
		principal := principalOf("employee-e", companyT, models.EmployeeRole)

		data := leaveRequest()
		data.Priority = "urgent"
		_, err := env.handler.Submit(ctx, principal, data)
		require.True(t, apperrors.IsValidation(err))

		data = leaveRequest()
		data.StartDate = "2024-03-10"
		data.EndDate = "2024-03-01"
		_, err = env.handler.Submit(ctx, principal, data)
		require.True(t, apperrors.IsValidation(err))
		require.Empty(t, env.db.requests)
	})

	t.Run(`document of another company`, func(t *testing.T) {
		env := newTestEnv()
		env.db.addUser("employee-e", companyT, models.EmployeeRole)
		env.db.addUser("manager-m", companyT, models.ManagerRole)
		data := leaveRequest()
		data.Documents = []string{"company-t/employee-e/doc.pdf", "company-other/user-x/doc.pdf"}

		result, err := env.handler.Submit(ctx, principalOf("employee-e", companyT, models.EmployeeRole), data)
		require.Nil(t, result)
		require.True(t, apperrors.IsValidation(err))
		require.Empty(t, env.db.requests)
		require.Empty(t, env.connector.submitted)

		data.Documents = []string{"company-t/../company-other/doc.pdf"}
		_, err = env.handler.Submit(ctx, principalOf("employee-e", companyT, models.EmployeeRole), data)
		require.True(t, apperrors.IsValidation(err))
		require.Empty(t, env.db.requests)
	})

	t.Run(`optional fields are stored`, func(t *testing.T) {
		env := newTestEnv()
		env.db.addUser("employee-e", companyT, models.EmployeeRole)
		data := leaveRequest()
		data.Priority = "high"
		data.StartDate = "2024-03-01"
		data.EndDate = "2024-03-05"
		data.Documents = []string{"company-t/employee-e/doc.pdf"}

		result, err := env.handler.Submit(ctx, principalOf("employee-e", companyT, models.EmployeeRole), data)
		require.Nil(t, err)
		require.Equal(t, "HIGH", result.HRRequest.Priority)
		require.Equal(t, "2024-03-01", result.HRRequest.StartDate)
		require.Equal(t, "2024-03-05", result.HRRequest.EndDate)
		require.Equal(t, []string{"company-t/employee-e/doc.pdf"}, result.HRRequest.Documents)
		require.Equal(t, "2024-03-01", env.connector.submitted[0].StartDate)
	})

	t.Run(`unknown type is kept uppercase`, func(t *testing.T) {
		env := newTestEnv()
		env.db.addUser("employee-e", companyT, models.EmployeeRole)
		data := leaveRequest()
		data.Type = "visa-renewal"

		result, err := env.handler.Submit(ctx, principalOf("employee-e", companyT, models.EmployeeRole), data)
		require.Nil(t, err)
		require.Equal(t, "VISA_RENEWAL", result.HRRequest.Type)
	})

	t.Run(`company comes from stored requester`, func(t *testing.T) {
		env := newTestEnv()
		env.db.addUser("employee-e", companyT, models.EmployeeRole)
		env.db.addUser("manager-x", companyOther, models.ManagerRole)

		result, err := env.handler.Submit(ctx, principalOf("employee-e", companyOther, models.EmployeeRole), leaveRequest())
		require.Nil(t, err)
		require.Equal(t, companyT, result.HRRequest.CompanyID)
		require.Equal(t, companyT, env.db.requests[0].CompanyID)
		require.Empty(t, result.HRRequest.ManagerID)
	})

	t.Run(`requester without company`, func(t *testing.T) {
		env := newTestEnv()
		env.db.addUser("employee-e", "", models.EmployeeRole)

		_, err := env.handler.Submit(ctx, principalOf("employee-e", "", models.EmployeeRole), leaveRequest())
		require.True(t, apperrors.IsValidation(err))
		require.Empty(t, env.db.requests)
	})

	t.Run(`unknown or anonymous requester`, func(t *testing.T) {
		env := newTestEnv()
		_, err := env.handler.Submit(ctx, principalOf("ghost", companyT, models.EmployeeRole), leaveRequest())
		require.True(t, apperrors.IsNotFound(err))

		_, err = env.handler.Submit(ctx, models.Principal{}, leaveRequest())
		require.True(t, apperrors.IsAuthorization(err))
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	submitted := func(t *testing.T) (*testEnv, string) {
		env := newTestEnv()
		env.db.addUser("employee-e", companyT, models.EmployeeRole)
		env.db.addUser("manager-m", companyT, models.ManagerRole)
		env.db.addUser("admin-a", companyT, models.AdminRole)
		result, err := env.handler.Submit(ctx, principalOf("employee-e", companyT, models.EmployeeRole), leaveRequest())
		require.Nil(t, err)
		return env, result.HRRequest.ID
	}

	t.Run(`manager approves`, func(t *testing.T) {
		env, requestID := submitted(t)

		view, err := env.handler.UpdateStatus(ctx, principalOf("manager-m", companyT, models.ManagerRole), hrrequestapimodels.StatusData{
			RequestID: requestID,
			Status:    "approved",
			Comments:  "ok",
		})
		require.Nil(t, err)
		require.Equal(t, "APPROVED", view.Status)
		require.Equal(t, "ok", view.Comments)
		require.Equal(t, "manager-m", view.ManagerID)

		require.Equal(t, models.RequestStatusApproved, env.db.requests[0].Status)
		require.Len(t, env.db.approvals, 1)
		require.Equal(t, "manager-m", env.db.approvals[0].ApproverID)
		require.Equal(t, requestID, env.db.approvals[0].RequestID)
		require.Equal(t, models.RequestStatusApproved, env.db.approvals[0].Status)

		require.Len(t, env.db.notifications, 2)
		notification := env.db.notifications[1]
		require.Equal(t, "employee-e", notification.UserID)
		require.Contains(t, notification.Message, "approved")
		require.Contains(t, notification.Message, "ok")
		require.Len(t, env.notifier.delivered, 2)

		require.Len(t, env.connector.updates, 1)
		require.Equal(t, "ZEN-"+requestID, env.connector.updates[0].RequestID)
		require.Equal(t, "APPROVED", env.connector.updates[0].Status)
	})

	t.Run(`every update appends history`, func(t *testing.T) {
		env, requestID := submitted(t)
		admin := principalOf("admin-a", companyT, models.AdminRole)

		_, err := env.handler.UpdateStatus(ctx, admin, hrrequestapimodels.StatusData{RequestID: requestID, Status: "on hold"})
		require.Nil(t, err)
		_, err = env.handler.UpdateStatus(ctx, admin, hrrequestapimodels.StatusData{RequestID: requestID, Status: "rejected", Comments: "no budget"})
		require.Nil(t, err)

		require.Equal(t, models.RequestStatusRejected, env.db.requests[0].Status)
		require.Equal(t, "manager-m", env.db.requests[0].GetManagerID())
		history, err := env.handler.History(ctx, admin, requestID)
		require.Nil(t, err)
		require.Len(t, history, 2)
		require.Equal(t, "ON_HOLD", history[0].Status)
		require.Equal(t, "REJECTED", history[1].Status)
		require.Equal(t, "First admin-a", history[1].ApproverName)
	})

	t.Run(`employee is rejected`, func(t *testing.T) {
		env, requestID := submitted(t)

		view, err := env.handler.UpdateStatus(ctx, principalOf("employee-e", companyT, models.EmployeeRole), hrrequestapimodels.StatusData{
			RequestID: requestID,
			Status:    "approved",
		})
		require.Nil(t, view)
		require.True(t, apperrors.IsAuthorization(err))
		require.Equal(t, models.RequestStatusPending, env.db.requests[0].Status)
		require.Empty(t, env.db.approvals)
		require.Len(t, env.db.notifications, 1)
	})

	t.Run(`missing fields`, func(t *testing.T) {
		env, requestID := submitted(t)
		manager := principalOf("manager-m", companyT, models.ManagerRole)

		_, err := env.handler.UpdateStatus(ctx, manager, hrrequestapimodels.StatusData{Status: "approved"})
		require.True(t, apperrors.IsValidation(err))
		_, err = env.handler.UpdateStatus(ctx, manager, hrrequestapimodels.StatusData{RequestID: requestID})
		require.True(t, apperrors.IsValidation(err))
		require.Empty(t, env.db.approvals)
	})

	t.Run(`request of another company`, func(t *testing.T) {
		env, requestID := submitted(t)
		env.db.addUser("manager-x", companyOther, models.ManagerRole)

		_, err := env.handler.UpdateStatus(ctx, principalOf("manager-x", companyOther, models.ManagerRole), hrrequestapimodels.StatusData{
			RequestID: requestID,
			Status:    "approved",
		})
		require.True(t, apperrors.IsNotFound(err))
		require.Equal(t, models.RequestStatusPending, env.db.requests[0].Status)
	})

	t.Run(`unknown or inactive approver`, func(t *testing.T) {
		env, requestID := submitted(t)
		status := hrrequestapimodels.StatusData{RequestID: requestID, Status: "approved"}

		view, err := env.handler.UpdateStatus(ctx, principalOf("manager-ghost", companyT, models.ManagerRole), status)
		require.Nil(t, view)
		require.True(t, apperrors.IsNotFound(err))

		for idx := range env.db.users {
			if env.db.users[idx].ID == "manager-m" {
				env.db.users[idx].IsActive = false
			}
		}
		view, err = env.handler.UpdateStatus(ctx, principalOf("manager-m", companyT, models.ManagerRole), status)
		require.Nil(t, view)
		require.True(t, apperrors.IsNotFound(err))

		require.Equal(t, models.RequestStatusPending, env.db.requests[0].Status)
		require.Empty(t, env.db.approvals)
		require.Len(t, env.db.notifications, 1)
		require.Empty(t, env.connector.updates)
	})

	t.Run(`connector failure rolls back`, func(t *testing.T) {
		env, requestID := submitted(t)
		env.connector.updateErr = apperrors.NewConnectorTransport("ZenHR", context.DeadlineExceeded)

		_, err := env.handler.UpdateStatus(ctx, principalOf("manager-m", companyT, models.ManagerRole), hrrequestapimodels.StatusData{
			RequestID: requestID,
			Status:    "approved",
			Comments:  "ok",
		})
		require.True(t, apperrors.IsConnector(err))
		require.Equal(t, models.RequestStatusPending, env.db.requests[0].Status)
		require.Empty(t, env.db.requests[0].Comments)
		require.Empty(t, env.db.approvals)
		require.Len(t, env.db.notifications, 1)
		require.Len(t, env.notifier.delivered, 1)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	env := newTestEnv()
	env.db.addUser("employee-1", companyT, models.EmployeeRole)
	env.db.addUser("employee-2", companyT, models.EmployeeRole)
	env.db.addUser("manager-m", companyT, models.ManagerRole)
	env.db.addUser("manager-n", companyT, models.ManagerRole)
	env.db.addUser("admin-a", companyT, models.AdminRole)
	env.db.addUser("employee-x", companyOther, models.EmployeeRole)

	submit := func(userID, companyID, requestType string) string {
		data := leaveRequest()
		data.Type = requestType
		result, err := env.handler.Submit(ctx, principalOf(userID, companyID, models.EmployeeRole), data)
		require.Nil(t, err)
		return result.HRRequest.ID
	}
	first := submit("employee-1", companyT, "leave")
	second := submit("employee-2", companyT, "loan")
	third := submit("employee-1", companyT, "loan")
	submit("employee-x", companyOther, "leave")

	ids := func(list []hrrequestapimodels.View) []string {
		result := []string{}
		for _, item := range list {
			result = append(result, item.ID)
		}
		return result
	}

	t.Run(`employee sees only own requests`, func(t *testing.T) {
		list, err := env.handler.List(ctx, principalOf("employee-1", companyT, models.EmployeeRole), hrrequestapimodels.Filter{EmployeeID: "employee-2"})
		require.Nil(t, err)
		require.Equal(t, []string{third, first}, ids(list))
		for _, item := range list {
			require.Equal(t, "employee-1", item.EmployeeID)
		}
	})

	t.Run(`manager sees assigned requests`, func(t *testing.T) {
		list, err := env.handler.List(ctx, principalOf("manager-m", companyT, models.ManagerRole), hrrequestapimodels.Filter{})
		require.Nil(t, err)
		require.Equal(t, []string{third, second, first}, ids(list))

		list, err = env.handler.List(ctx, principalOf("manager-n", companyT, models.ManagerRole), hrrequestapimodels.Filter{})
		require.Nil(t, err)
		require.Empty(t, list)
	})

	t.Run(`manager with employee filter`, func(t *testing.T) {
		list, err := env.handler.List(ctx, principalOf("manager-n", companyT, models.ManagerRole), hrrequestapimodels.Filter{EmployeeID: "employee-2"})
		require.Nil(t, err)
		require.Equal(t, []string{second}, ids(list))

		list, err = env.handler.List(ctx, principalOf("manager-n", companyT, models.ManagerRole), hrrequestapimodels.Filter{EmployeeID: "employee-x"})
		require.Nil(t, err)
		require.Empty(t, list)
	})

	t.Run(`admin sees own company`, func(t *testing.T) {
		admin := principalOf("admin-a", companyT, models.AdminRole)
		list, err := env.handler.List(ctx, admin, hrrequestapimodels.Filter{})
		require.Nil(t, err)
		require.Equal(t, []string{third, second, first}, ids(list))

		list, err = env.handler.List(ctx, admin, hrrequestapimodels.Filter{EmployeeID: "employee-1", Type: "Loan"})
		require.Nil(t, err)
		require.Equal(t, []string{third}, ids(list))

		list, err = env.handler.List(ctx, admin, hrrequestapimodels.Filter{Status: "pending"})
		require.Nil(t, err)
		require.Len(t, list, 3)

		list, err = env.handler.List(ctx, admin, hrrequestapimodels.Filter{Status: "approved"})
		require.Nil(t, err)
		require.Empty(t, list)
	})

	t.Run(`unknown role`, func(t *testing.T) {
		_, err := env.handler.List(ctx, principalOf("employee-1", companyT, "GUEST"), hrrequestapimodels.Filter{})
		require.True(t, apperrors.IsAuthorization(err))
	})

	t.Run(`history of foreign request is hidden from employee`, func(t *testing.T) {
		_, err := env.handler.History(ctx, principalOf("employee-2", companyT, models.EmployeeRole), first)
		require.True(t, apperrors.IsNotFound(err))

		history, err := env.handler.History(ctx, principalOf("employee-1", companyT, models.EmployeeRole), first)
		require.Nil(t, err)
		require.Empty(t, history)
	})
}

func TestRemote(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.connector.remote = []zenhrapimodels.RequestRecord{
		{ID: "1", EmployeeID: "ZEN-employee-1"},
		{ID: "2", EmployeeID: "ZEN-employee-2"},
	}

	t.Run(`employee gets own remote requests`, func(t *testing.T) {
		list, err := env.handler.Remote(ctx, principalOf("employee-1", companyT, models.EmployeeRole), "ZEN-employee-2")
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "1", list[0].ID)
	})

	t.Run(`manager picks employee`, func(t *testing.T) {
		list, err := env.handler.Remote(ctx, principalOf("manager-m", companyT, models.ManagerRole), "ZEN-employee-2")
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "2", list[0].ID)
	})
}
