package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnums(t *testing.T) {
	t.Run(`ParseRequestStatus check`, func(t *testing.T) {
		require.Equal(t, RequestStatusApproved, ParseRequestStatus("approved"))
		require.Equal(t, RequestStatusOnHold, ParseRequestStatus(" on-hold "))
		require.True(t, ParseRequestStatus("Rejected").IsKnown())

		unknown := ParseRequestStatus("escalated")
		require.Equal(t, RequestStatus("ESCALATED"), unknown)
		require.False(t, unknown.IsKnown())
		require.Equal(t, "ESCALATED", unknown.ToHuman())
	})

	t.Run(`ParseRequestType check`, func(t *testing.T) {
		require.Equal(t, RequestTypeLeave, ParseRequestType("leave"))
		require.Equal(t, RequestTypeExitReentry, ParseRequestType("exit-reentry"))
		require.Equal(t, RequestTypeSponsorshipTransfer, ParseRequestType("Sponsorship Transfer"))
		require.False(t, ParseRequestType("housing").IsKnown())
	})

	t.Run(`ParseRequestPriority check`, func(t *testing.T) {
		priority, err := ParseRequestPriority("")
		require.Nil(t, err)
		require.Equal(t, PriorityMedium, priority)

		priority, err = ParseRequestPriority("high")
		require.Nil(t, err)
		require.Equal(t, PriorityHigh, priority)

		_, err = ParseRequestPriority("urgent")
		require.NotNil(t, err)
	})

	t.Run(`ParseAttendanceStatus check`, func(t *testing.T) {
		status, err := ParseAttendanceStatus("")
		require.Nil(t, err)
		require.Equal(t, AttendancePresent, status)

		status, err = ParseAttendanceStatus("half day")
		require.Nil(t, err)
		require.Equal(t, AttendanceHalfDay, status)

		_, err = ParseAttendanceStatus("sleeping")
		require.NotNil(t, err)
	})

	t.Run(`UserRole check`, func(t *testing.T) {
		require.True(t, ManagerRole.CanApprove())
		require.True(t, AdminRole.CanApprove())
		require.False(t, EmployeeRole.CanApprove())
		require.Equal(t, ManagerRole, ParseUserRole("manager"))
		require.False(t, ParseUserRole("SUPER_ADMIN").IsKnown())
	})

	t.Run(`GetNotificationStatusChanged check`, func(t *testing.T) {
		data := GetNotificationStatusChanged("Annual Leave", RequestStatusApproved, "ok")
		require.Equal(t, NotificationRequestStatus, data.Category)
		require.Contains(t, data.Msg, "approved")
		require.Contains(t, data.Msg, "ok")
	})
}
