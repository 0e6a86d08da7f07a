package models

// RequestType - категория заявки. Набор открытый, как и у статуса
type RequestType string

const (
	RequestTypeLeave               RequestType = "LEAVE"
	RequestTypeSickLeave           RequestType = "SICK_LEAVE"
	RequestTypeExitReentry         RequestType = "EXIT_REENTRY"
	RequestTypeSponsorshipTransfer RequestType = "SPONSORSHIP_TRANSFER"
	RequestTypeSalaryCertificate   RequestType = "SALARY_CERTIFICATE"
	RequestTypeLoan                RequestType = "LOAN"
	RequestTypeOther               RequestType = "OTHER"
)

var requestTypeHumanName = map[RequestType]string{
	RequestTypeLeave:               "Отпуск",
	RequestTypeSickLeave:           "Больничный",
	RequestTypeExitReentry:         "Выезд и повторный въезд",
	RequestTypeSponsorshipTransfer: "Перевод спонсорства",
	RequestTypeSalaryCertificate:   "Справка о зарплате",
	RequestTypeLoan:                "Займ",
	RequestTypeOther:               "Прочее",
}

func ParseRequestType(value string) RequestType {
	return RequestType(normalizeCode(value))
}

func (t RequestType) IsKnown() bool {
	_, ok := requestTypeHumanName[t]
	return ok
}

func (t RequestType) ToHuman() string {
	if human, exist := requestTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}
