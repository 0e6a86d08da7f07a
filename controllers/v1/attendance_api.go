package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	attendancehandler "hr-admin-backend/lib/attendance"
	"hr-admin-backend/middleware"
	apimodels "hr-admin-backend/models/api"
	attendanceapimodels "hr-admin-backend/models/api/attendance"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.mark)
		router.Get("export", controller.export)
	})
}

// @Summary Отметка посещаемости
// @Tags Посещаемость
// @Description Одна отметка на сотрудника за день, передается в ZenHR
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 attendanceapimodels.MarkData	true	"request body"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.MarkResult}
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 409 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @Failure 502 {object} apimodels.ErrorResponse
// @router /api/v1/attendance [post]
func (c *attendanceApiController) mark(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.MarkData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := attendancehandler.Instance.Mark(ctx.UserContext(), middleware.GetPrincipal(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки посещаемости")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponseWithMessage("Attendance marked successfully", result))
}

// @Summary Посещаемость
// @Tags Посещаемость
// @Description Сотрудник видит свои отметки, руководитель и администратор могут указать сотрудника своей компании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   startDate			query		string	false	"начало периода YYYY-MM-DD"
// @Param   endDate				query		string	false	"конец периода YYYY-MM-DD"
// @Param   employeeId			query		string	false	"ид сотрудника"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.View}
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/attendance [get]
func (c *attendanceApiController) list(ctx *fiber.Ctx) error {
	var filter attendanceapimodels.Filter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := attendancehandler.Instance.List(ctx.UserContext(), middleware.GetPrincipal(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения посещаемости")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка посещаемости в Excel
// @Tags Посещаемость
// @Description Выгрузка с теми же фильтрами, что и список
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   startDate			query		string	false	"начало периода YYYY-MM-DD"
// @Param   endDate				query		string	false	"конец периода YYYY-MM-DD"
// @Param   employeeId			query		string	false	"ид сотрудника"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/attendance/export [get]
func (c *attendanceApiController) export(ctx *fiber.Ctx) error {
	var filter attendanceapimodels.Filter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := attendancehandler.Instance.Export(ctx.UserContext(), middleware.GetPrincipal(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки посещаемости в Excel")
	}
	return sendXls(ctx, "attendance", data)
}
