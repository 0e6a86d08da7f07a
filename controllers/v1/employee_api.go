package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	employeehandler "hr-admin-backend/lib/employee"
	"hr-admin-backend/lib/rbac"
	"hr-admin-backend/middleware"
	apimodels "hr-admin-backend/models/api"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Get("", middleware.RolesRequired(rbac.ApproverRoleSet...), controller.list)
		router.Get(":employeeId", controller.get)
	})
	app.Get("permissions", controller.permissions)
}

// @Summary Сотрудники компании
// @Tags Сотрудники
// @Description Учетные записи компании, дополненные данными ZenHR
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.View}
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/employees [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	list, err := employeehandler.Instance.List(ctx.UserContext(), middleware.GetPrincipal(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Сотрудник в ZenHR
// @Tags Сотрудники
// @Description Сотруднику доступна только собственная карточка
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employeeId			path		string	true	"табельный номер в ZenHR"
// @Success 200 {object} apimodels.Response{data=zenhrapimodels.EmployeeRecord}
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 502 {object} apimodels.ErrorResponse
// @router /api/v1/employees/{employeeId} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	employeeID, err := c.GetIDByKey(ctx, "employeeId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := employeehandler.Instance.Get(ctx.UserContext(), middleware.GetPrincipal(ctx), employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Права текущего пользователя
// @Tags Сотрудники
// @Description Разделы и действия, доступные роли пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=map[string][]string}
// @Failure 401 {object} apimodels.ErrorResponse
// @router /api/v1/permissions [get]
func (c *employeeApiController) permissions(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rbac.Instance.GetPermissions(middleware.GetRole(ctx))))
}
