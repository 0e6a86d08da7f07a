package apiv1

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	xlsexport "hr-admin-backend/lib/export/xls"
	filestorage "hr-admin-backend/lib/file-storage"
	hrrequesthandler "hr-admin-backend/lib/hr-request"
	"hr-admin-backend/lib/rbac"
	"hr-admin-backend/middleware"
	apimodels "hr-admin-backend/models/api"
	hrrequestapimodels "hr-admin-backend/models/api/hrrequest"
)

type hrRequestApiController struct {
	controllers.BaseAPIController
}

func InitHRRequestApiRouters(app *fiber.App) {
	controller := hrRequestApiController{}
	approversOnly := middleware.RolesRequired(rbac.ApproverRoleSet...)
	app.Route("hr-request", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.submit)
		router.Patch("", approversOnly, controller.updateStatus)
		router.Get("export", approversOnly, controller.export)
		router.Get("external", controller.external)
		router.Post("documents", controller.uploadDocument)
		router.Get("documents", controller.downloadDocument)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("approvals", controller.approvals)
			idRoute.Get("pdf", controller.card)
		})
	})
}

// @Summary Создание заявки
// @Tags Заявки сотрудников
// @Description Создание заявки, назначение руководителя и передача в ZenHR
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 hrrequestapimodels.SubmitData	true	"request body"
// @Success 200 {object} apimodels.Response{data=hrrequestapimodels.SubmitResult}
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @Failure 502 {object} apimodels.ErrorResponse
// @router /api/v1/hr-request [post]
func (c *hrRequestApiController) submit(ctx *fiber.Ctx) error {
	var payload hrrequestapimodels.SubmitData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := hrrequesthandler.Instance.Submit(ctx.UserContext(), middleware.GetPrincipal(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponseWithMessage("HR request submitted successfully", result))
}

// @Summary Список заявок
// @Tags Заявки сотрудников
// @Description Сотрудник видит свои заявки, руководитель - назначенные ему, администратор - все заявки компании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"статус"
// @Param   type				query		string	false	"тип заявки"
// @Param   employeeId			query		string	false	"ид сотрудника"
// @Success 200 {object} apimodels.Response{data=[]hrrequestapimodels.View}
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/hr-request [get]
func (c *hrRequestApiController) list(ctx *fiber.Ctx) error {
	var filter hrrequestapimodels.Filter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := hrrequesthandler.Instance.List(ctx.UserContext(), middleware.GetPrincipal(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Изменение статуса заявки
// @Tags Заявки сотрудников
// @Description Доступно руководителю и администратору. Решение сохраняется в истории согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 hrrequestapimodels.StatusData	true	"request body"
// @Success 200 {object} apimodels.Response{data=hrrequestapimodels.View}
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @Failure 502 {object} apimodels.ErrorResponse
// @router /api/v1/hr-request [patch]
func (c *hrRequestApiController) updateStatus(ctx *fiber.Ctx) error {
	var payload hrrequestapimodels.StatusData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := hrrequesthandler.Instance.UpdateStatus(ctx.UserContext(), middleware.GetPrincipal(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponseWithMessage("HR request status updated successfully", result))
}

// @Summary Выгрузка заявок в Excel
// @Tags Заявки сотрудников
// @Description Выгрузка с теми же фильтрами, что и список
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"статус"
// @Param   type				query		string	false	"тип заявки"
// @Param   employeeId			query		string	false	"ид сотрудника"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/hr-request/export [get]
func (c *hrRequestApiController) export(ctx *fiber.Ctx) error {
	var filter hrrequestapimodels.Filter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := hrrequesthandler.Instance.List(ctx.UserContext(), middleware.GetPrincipal(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок для выгрузки в Excel")
	}
	data, err := xlsexport.Instance.ExportRequestList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки заявок в Excel")
	}
	return sendXls(ctx, "hr-requests", data)
}

// @Summary Заявки сотрудника в ZenHR
// @Tags Заявки сотрудников
// @Description Сотруднику доступны только собственные заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employeeId			query		string	false	"табельный номер в ZenHR"
// @Success 200 {object} apimodels.Response{data=[]zenhrapimodels.RequestRecord}
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 502 {object} apimodels.ErrorResponse
// @router /api/v1/hr-request/external [get]
func (c *hrRequestApiController) external(ctx *fiber.Ctx) error {
	list, err := hrrequesthandler.Instance.Remote(ctx.UserContext(), middleware.GetPrincipal(ctx), ctx.Query("employeeId"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявок из ZenHR")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary История согласования
// @Tags Заявки сотрудников
// @Description История согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]hrrequestapimodels.ApprovalView}
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/hr-request/{id}/approvals [get]
func (c *hrRequestApiController) approvals(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := hrrequesthandler.Instance.History(ctx.UserContext(), middleware.GetPrincipal(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Карточка заявки в PDF
// @Tags Заявки сотрудников
// @Description Карточка заявки с историей согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "rec ID"
// @Success 200 {file} file
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/hr-request/{id}/pdf [get]
func (c *hrRequestApiController) card(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := hrrequesthandler.Instance.Card(ctx.UserContext(), middleware.GetPrincipal(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования карточки заявки")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="hr-request-%v.pdf"`, id))
	return ctx.Send(data)
}

// @Summary Загрузка документа к заявке
// @Tags Заявки сотрудников
// @Description Возвращает ключ документа для поля documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"документ"
// @Success 200 {object} apimodels.Response{data=hrrequestapimodels.DocumentView}
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @Failure 503 {object} apimodels.ErrorResponse
// @router /api/v1/hr-request/documents [post]
func (c *hrRequestApiController) uploadDocument(ctx *fiber.Ctx) error {
	if !filestorage.Instance.IsConfigured() {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(filestorage.ErrNotConfigured.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	reader, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла")
	}
	defer reader.Close()

	principal := middleware.GetPrincipal(ctx)
	key, err := filestorage.Instance.UploadDocument(ctx.UserContext(), principal.CompanyID, principal.UserID,
		reader, file.Size, file.Filename, file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(hrrequestapimodels.DocumentView{
		Key:  key,
		Name: file.Filename,
	}))
}

// @Summary Скачать документ заявки
// @Tags Заявки сотрудников
// @Description Документ своей компании по ключу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   key					query		string	true	"ключ документа"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 401 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/hr-request/documents [get]
func (c *hrRequestApiController) downloadDocument(ctx *fiber.Ctx) error {
	if !filestorage.Instance.IsConfigured() {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(filestorage.ErrNotConfigured.Error()))
	}
	key := ctx.Query("key")
	if key == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан ключ документа"))
	}
	data, contentType, err := filestorage.Instance.GetDocument(ctx.UserContext(), middleware.GetPrincipal(ctx), key)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения документа")
	}
	if data == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("документ не найден"))
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Send(data)
}

func sendXls(ctx *fiber.Ctx, prefix string, data *bytes.Buffer) error {
	fileName := fmt.Sprintf("%v-%v.xlsx", prefix, time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
