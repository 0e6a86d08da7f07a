package wsmodels

type ServerMessage struct {
	ToUserID  string `json:"-"`
	ID        string `json:"id"`
	Time      string `json:"time"`     // время события
	Category  string `json:"category"` // категория уведомления
	Title     string `json:"title"`
	Msg       string `json:"msg"` // текст события
	RequestID string `json:"requestId,omitempty"`
}
