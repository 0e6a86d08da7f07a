package models

import (
	"fmt"
	"strings"
)

type NotificationCategory string

const (
	NotificationHRRequest     NotificationCategory = "HR_REQUEST"
	NotificationRequestStatus NotificationCategory = "REQUEST_STATUS"
)

type NotificationTpl struct {
	Title string
	Msg   string
}

var NotificationTplMap = map[NotificationCategory]NotificationTpl{
	NotificationHRRequest:     {Title: "Новая заявка на рассмотрение", Msg: "%v отправил(а) заявку «%v» (%v)."},
	NotificationRequestStatus: {Title: "Статус заявки изменён", Msg: "Заявка «%v» получила статус %v."},
}

type NotificationData struct {
	Category NotificationCategory
	Title    string
	Msg      string
}

func GetNotificationNewRequest(employeeName, title string, requestType RequestType) NotificationData {
	category := NotificationHRRequest
	return NotificationData{
		Category: category,
		Title:    NotificationTplMap[category].Title,
		Msg:      fmt.Sprintf(NotificationTplMap[category].Msg, employeeName, title, requestType.ToHuman()),
	}
}

// GetNotificationStatusChanged статус в тексте в нижнем регистре (approved, rejected ...)
func GetNotificationStatusChanged(title string, status RequestStatus, comment string) NotificationData {
	category := NotificationRequestStatus
	msg := fmt.Sprintf(NotificationTplMap[category].Msg, title, strings.ToLower(string(status)))
	if comment != "" {
		msg = fmt.Sprintf("%v Комментарий: %v", msg, comment)
	}
	return NotificationData{
		Category: category,
		Title:    NotificationTplMap[category].Title,
		Msg:      msg,
	}
}
