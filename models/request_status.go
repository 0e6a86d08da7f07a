package models

import "strings"

// RequestStatus - статус заявки. Набор открытый: неизвестные значения сохраняются как есть (в верхнем регистре)
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusApproved  RequestStatus = "APPROVED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
	RequestStatusOnHold    RequestStatus = "ON_HOLD"
)

var requestStatusHumanName = map[RequestStatus]string{
	RequestStatusPending:   "На рассмотрении",
	RequestStatusApproved:  "Согласована",
	RequestStatusRejected:  "Отклонена",
	RequestStatusCancelled: "Отменена",
	RequestStatusOnHold:    "Приостановлена",
}

func ParseRequestStatus(value string) RequestStatus {
	return RequestStatus(normalizeCode(value))
}

func (s RequestStatus) IsKnown() bool {
	_, ok := requestStatusHumanName[s]
	return ok
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// normalizeCode приводит значение к виду кода: верхний регистр, разделители заменены на "_"
func normalizeCode(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	return strings.NewReplacer("-", "_", " ", "_").Replace(value)
}
