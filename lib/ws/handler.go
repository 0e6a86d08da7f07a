package ws

import (
	notificationhandler "hr-admin-backend/lib/notification"
	wsclient "hr-admin-backend/lib/ws/client"
	connectionhub "hr-admin-backend/lib/ws/hub/connection-hub"
	"hr-admin-backend/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(router fiber.Router) {
	router.Use("", middleware.WsAuthorizationRequired(), func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		ctx.Locals("userID", middleware.GetUserID(ctx))
		return ctx.Next()
	})
	router.Get("/", websocket.New(notificationsHandler))
}

// @Summary Уведомления в реальном времени
// @Tags Websocket
// @Description При подключении отправляются непрочитанные уведомления, далее - новые
// @Param   Authorization		header		string		false		"Authorization token"
// @Param   token				query		string		false		"JWT, если заголовок недоступен"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 401
// @Failure 426
// @router /ws [get]
func notificationsHandler(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	if userID == "" {
		return
	}
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddClient(userID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(userID, c)
	}()
	go notificationhandler.Instance.SendUnread(userID)
	client.Dispatch()
}
