package apperrors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ValidationError - некорректные входные данные
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

// AuthorizationError - действие запрещено для роли пользователя
type AuthorizationError struct {
	Msg string
}

func (e AuthorizationError) Error() string {
	return e.Msg
}

type NotFoundError struct {
	Msg string
}

func (e NotFoundError) Error() string {
	return e.Msg
}

// ConflictError - нарушение уникальности
type ConflictError struct {
	Msg string
}

func (e ConflictError) Error() string {
	return e.Msg
}

// ConnectorError - ошибка обращения к внешней HR системе
type ConnectorError struct {
	Service    string
	StatusCode int
	Body       string
	Err        error
}

func (e ConnectorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: ошибка запроса: %v", e.Service, e.Err.Error())
	}
	return fmt.Sprintf("%v: неуспешный ответ (%v): %v", e.Service, e.StatusCode, e.Body)
}

func (e ConnectorError) Unwrap() error {
	return e.Err
}

func NewValidation(format string, args ...interface{}) error {
	return errors.WithStack(ValidationError{Msg: fmt.Sprintf(format, args...)})
}

func NewAuthorization(format string, args ...interface{}) error {
	return errors.WithStack(AuthorizationError{Msg: fmt.Sprintf(format, args...)})
}

func NewNotFound(format string, args ...interface{}) error {
	return errors.WithStack(NotFoundError{Msg: fmt.Sprintf(format, args...)})
}

func NewConflict(format string, args ...interface{}) error {
	return errors.WithStack(ConflictError{Msg: fmt.Sprintf(format, args...)})
}

func NewConnectorTransport(service string, err error) error {
	return errors.WithStack(ConnectorError{Service: service, Err: err})
}

func NewConnectorStatus(service string, statusCode int, body string) error {
	return errors.WithStack(ConnectorError{Service: service, StatusCode: statusCode, Body: body})
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target AuthorizationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsConnector(err error) bool {
	var target ConnectorError
	return errors.As(err, &target)
}

const (
	ConnectorErrMsg = "Ошибка обращения к внешней HR системе"
	InternalErrMsg  = "Внутренняя ошибка сервера"
)

// Resolve http статус и текст ошибки для ответа клиенту
func Resolve(err error) (int, string) {
	var (
		validationErr    ValidationError
		authorizationErr AuthorizationError
		notFoundErr      NotFoundError
		conflictErr      ConflictError
		connectorErr     ConnectorError
	)
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Msg
	case errors.As(err, &authorizationErr):
		return http.StatusUnauthorized, authorizationErr.Msg
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Msg
	case errors.As(err, &conflictErr):
		return http.StatusConflict, conflictErr.Msg
	case errors.As(err, &connectorErr):
		return http.StatusBadGateway, ConnectorErrMsg
	}
	return http.StatusInternalServerError, InternalErrMsg
}
