package zenhrclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-admin-backend/db"
	externalservices "hr-admin-backend/lib/external-services"
	extapiauditstore "hr-admin-backend/lib/external-services/ext-api-audit-store"
	apperrors "hr-admin-backend/lib/utils/app-errors"
	zenhrapimodels "hr-admin-backend/models/api/zenhr"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	FetchEmployee(ctx context.Context, employeeID string) (*zenhrapimodels.EmployeeRecord, error)
	FetchAllEmployees(ctx context.Context, companyID string) ([]zenhrapimodels.EmployeeRecord, error)
	MarkAttendance(ctx context.Context, rec zenhrapimodels.AttendanceRecord) (*zenhrapimodels.Ack, error)
	SubmitRequest(ctx context.Context, rec zenhrapimodels.RequestRecord) (*zenhrapimodels.Ack, error)
	FetchRequests(ctx context.Context, employeeID string) ([]zenhrapimodels.RequestRecord, error)
	UpdateRequestStatus(ctx context.Context, requestID, status, comment string) (*zenhrapimodels.Ack, error)
}

var Instance Provider

type Config struct {
	BaseUrl string
	ApiKey  string
	Timeout time.Duration
}

type impl struct {
	client     *resty.Client
	apiKey     string
	auditStore extapiauditstore.Provider
}

func NewProvider(cfg Config) {
	Instance = NewClient(cfg, extapiauditstore.NewInstance(db.DB))
}

// NewClient без ApiKey клиент не обращается в ZenHR и отвечает заглушками
func NewClient(cfg Config, auditStore extapiauditstore.Provider) Provider {
	client := resty.New().
		SetBaseURL(cfg.BaseUrl).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "HRAdmin/1.0")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.ApiKey != "" {
		client.SetAuthToken(cfg.ApiKey)
	} else {
		log.Warn("ZENHR_API_KEY не задан, ZenHR работает в режиме заглушки")
	}
	return &impl{
		client:     client,
		apiKey:     cfg.ApiKey,
		auditStore: auditStore,
	}
}

const (
	employeePath       string = "/employees/%v"
	employeesPath      string = "/employees"
	attendancePath     string = "/attendance"
	requestsPath       string = "/requests"
	requestStatusPath  string = "/requests/%v/status"
	serviceName        string = "ZenHR"
	mockAckMsg         string = "ZenHR не настроен, ответ сформирован локально"
	mockEmployeesCount int    = 2
)

func (i impl) isMock() bool {
	return i.apiKey == ""
}

func (i impl) FetchEmployee(ctx context.Context, employeeID string) (*zenhrapimodels.EmployeeRecord, error) {
	if i.isMock() {
		rec := mockEmployee(employeeID, "")
		return &rec, nil
	}
	resp := zenhrapimodels.EmployeeRecord{}
	uri := fmt.Sprintf(employeePath, employeeID)
	err := i.sendRequest(ctx, http.MethodGet, uri, nil, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) FetchAllEmployees(ctx context.Context, companyID string) ([]zenhrapimodels.EmployeeRecord, error) {
	if i.isMock() {
		result := make([]zenhrapimodels.EmployeeRecord, 0, mockEmployeesCount)
		for n := 1; n <= mockEmployeesCount; n++ {
			result = append(result, mockEmployee(fmt.Sprintf("EMP%03d", n), companyID))
		}
		return result, nil
	}
	resp := []zenhrapimodels.EmployeeRecord{}
	query := map[string]string{}
	if companyID != "" {
		query["company_id"] = companyID
	}
	err := i.sendRequest(ctx, http.MethodGet, employeesPath, query, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) MarkAttendance(ctx context.Context, rec zenhrapimodels.AttendanceRecord) (*zenhrapimodels.Ack, error) {
	if i.isMock() {
		return mockAck(fmt.Sprintf("att-%v-%v", rec.EmployeeID, rec.Date)), nil
	}
	return i.sendAck(ctx, http.MethodPost, attendancePath, rec)
}

func (i impl) SubmitRequest(ctx context.Context, rec zenhrapimodels.RequestRecord) (*zenhrapimodels.Ack, error) {
	if i.isMock() {
		return mockAck(fmt.Sprintf("req-%v", rec.ExternalRef)), nil
	}
	return i.sendAck(ctx, http.MethodPost, requestsPath, rec)
}

func (i impl) FetchRequests(ctx context.Context, employeeID string) ([]zenhrapimodels.RequestRecord, error) {
	if i.isMock() {
		return []zenhrapimodels.RequestRecord{}, nil
	}
	resp := []zenhrapimodels.RequestRecord{}
	query := map[string]string{}
	if employeeID != "" {
		query["employee_id"] = employeeID
	}
	err := i.sendRequest(ctx, http.MethodGet, requestsPath, query, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) UpdateRequestStatus(ctx context.Context, requestID, status, comment string) (*zenhrapimodels.Ack, error) {
	if i.isMock() {
		return mockAck(requestID), nil
	}
	body := zenhrapimodels.StatusUpdate{
		Status:  status,
		Comment: comment,
	}
	return i.sendAck(ctx, http.MethodPatch, fmt.Sprintf(requestStatusPath, requestID), body)
}

func (i impl) sendAck(ctx context.Context, method, uri string, body interface{}) (*zenhrapimodels.Ack, error) {
	resp := zenhrapimodels.Ack{}
	err := i.sendRequest(ctx, method, uri, nil, body, &resp)
	if err != nil {
		return nil, err
	}
	// 2xx без тела тоже успех
	resp.Success = true
	return &resp, nil
}

func (i impl) sendRequest(ctx context.Context, method, uri string, query map[string]string, body interface{}, result interface{}) error {
	logger := log.
		WithField("external_request", uri).
		WithField("method", method)
	var requestBody []byte
	if body != nil {
		var err error
		requestBody, err = json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "ошибка сериализации запроса")
		}
		logger = logger.WithField("request_body", string(requestBody))
	}
	rCtx := externalservices.GetAuditContext(ctx, uri, requestBody)

	r := i.client.R().
		SetContext(ctx).
		SetQueryParams(query)
	if requestBody != nil {
		r.SetBody(requestBody)
	}
	response, err := r.Execute(method, uri)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в ZenHR")
		i.auditError(rCtx, err.Error(), 0)
		return apperrors.NewConnectorTransport(serviceName, err)
	}
	responseBody := response.Body()
	logger = logger.
		WithField("response_body", string(responseBody)).
		WithField("response_status_code", response.StatusCode())
	if !response.IsSuccess() {
		errorResp := zenhrapimodels.ErrorData{}
		msg := string(responseBody)
		if json.Unmarshal(responseBody, &errorResp) == nil && (errorResp.Message != "" || errorResp.Error != "") {
			msg = fmt.Sprintf("%v %v", errorResp.Error, errorResp.Message)
		}
		logger.Error("Некорректный запрос в ZenHR")
		i.auditError(rCtx, string(responseBody), response.StatusCode())
		return apperrors.NewConnectorStatus(serviceName, response.StatusCode(), msg)
	}
	if result != nil && len(responseBody) != 0 {
		err = json.Unmarshal(responseBody, result)
		if err != nil {
			logger.WithError(err).Error("ошибка разбора ответа ZenHR")
			return apperrors.NewConnectorTransport(serviceName, errors.Wrap(err, "ошибка разбора ответа"))
		}
	}
	logger.Debug("запрос в ZenHR выполнен")
	return nil
}

func (i impl) auditError(ctx context.Context, response string, status int) {
	if i.auditStore == nil {
		return
	}
	ctxData := externalservices.ExtractAuditData(ctx)
	if !ctxData.WithAudit {
		return
	}
	rec := dbmodels.ExtApiAudit{
		CompanyID: ctxData.CompanyID,
		RecID:     ctxData.RecID,
		Service:   serviceName,
		Uri:       ctxData.Uri,
		Request:   ctxData.Request,
		Response:  response,
		Status:    status,
	}
	_, err := i.auditStore.Create(rec)
	if err != nil {
		log.WithError(err).Warn("ошибка сохранения аудита запроса в ZenHR")
	}
}

func mockEmployee(employeeID, companyID string) zenhrapimodels.EmployeeRecord {
	return zenhrapimodels.EmployeeRecord{
		ID:         employeeID,
		EmployeeNo: employeeID,
		FirstName:  "Employee",
		LastName:   employeeID,
		Email:      fmt.Sprintf("%v@example.com", employeeID),
		Department: "General",
		Position:   "Staff",
		CompanyID:  companyID,
		Status:     "active",
	}
}

func mockAck(id string) *zenhrapimodels.Ack {
	return &zenhrapimodels.Ack{
		Success: true,
		ID:      fmt.Sprintf("mock-%v", id),
		Message: mockAckMsg,
		Mock:    true,
	}
}
