package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	"hr-admin-backend/db"
	apimodels "hr-admin-backend/models/api"
)

type healthApiController struct {
	controllers.BaseAPIController
}

// InitHealthApiRouters маршрут без авторизации, монтируется в корневое приложение
func InitHealthApiRouters(app *fiber.App) {
	controller := healthApiController{}
	app.Get("health", controller.health)
}

// @Summary Проверка состояния
// @Tags Сервис
// @Description Проверка доступности сервиса и БД
// @Success 200 {object} apimodels.Response
// @Failure 503 {object} apimodels.ErrorResponse
// @router /health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	if err := db.PingDB(ctx.UserContext()); err != nil {
		c.GetLogger(ctx).WithError(err).Warn("БД недоступна")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("БД недоступна"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}
