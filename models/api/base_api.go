package apimodels

type Response struct {
	Success bool        `json:"success"`           // результат обработки
	Message string      `json:"message,omitempty"` // сообщение для пользователя
	Data    interface{} `json:"data"`              // данные ответа
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"` // сообщение ошибки
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func NewResponseWithMessage(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}
