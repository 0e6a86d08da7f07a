package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ErrNotify отправляет сведения об ответах 5xx во внешний сервис оповещений
func ErrNotify(addr string) fiber.Handler {
	client := resty.New().SetTimeout(5 * time.Second)
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if addr == "" {
			return err
		}
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}
		body := string(c.Response().Body())

		var data struct {
			Error string `json:"error"`
		}
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
			log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
		}

		method := c.Method()
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		msg := data.Error
		if msg == "" {
			msg = body
		}

		go func() {
			payload := fmt.Sprintf(
				`{"code":%d,"method":%q,"path":%q,"error":%q}`,
				statusCode, method, path, msg)
			_, reqErr := client.R().
				SetHeader(fiber.HeaderContentType, fiber.MIMEApplicationJSON).
				SetBody(payload).
				Post(addr)
			if reqErr != nil {
				log.WithError(reqErr).Warn("error sending error notification")
			}
		}()
		return err
	}
}
