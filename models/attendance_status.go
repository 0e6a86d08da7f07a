package models

import "github.com/pkg/errors"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceHalfDay AttendanceStatus = "HALF_DAY"
	AttendanceOnLeave AttendanceStatus = "ON_LEAVE"
)

var attendanceStatusHumanName = map[AttendanceStatus]string{
	AttendancePresent: "Присутствовал",
	AttendanceAbsent:  "Отсутствовал",
	AttendanceLate:    "Опоздание",
	AttendanceHalfDay: "Неполный день",
	AttendanceOnLeave: "В отпуске",
}

// ParseAttendanceStatus пустое значение - PRESENT
func ParseAttendanceStatus(value string) (AttendanceStatus, error) {
	if value == "" {
		return AttendancePresent, nil
	}
	status := AttendanceStatus(normalizeCode(value))
	if _, ok := attendanceStatusHumanName[status]; !ok {
		return "", errors.Errorf("недопустимый статус посещаемости: %v", value)
	}
	return status, nil
}

func (s AttendanceStatus) ToHuman() string {
	if human, exist := attendanceStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
