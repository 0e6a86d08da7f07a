package notificationapimodels

import (
	"time"

	dbmodels "hr-admin-backend/models/db"
)

type Filter struct {
	Unread bool `query:"unread"`
}

type View struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"isRead"`
	RequestID string `json:"requestId,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func Convert(rec dbmodels.Notification) View {
	result := View{
		ID:        rec.ID,
		Category:  string(rec.Category),
		Title:     rec.Title,
		Message:   rec.Message,
		IsRead:    rec.IsRead,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.RequestID != nil {
		result.RequestID = *rec.RequestID
	}
	return result
}
