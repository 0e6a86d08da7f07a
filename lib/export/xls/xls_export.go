package xlsexport

import (
	"bytes"

	attendanceapimodels "hr-admin-backend/models/api/attendance"
	hrrequestapimodels "hr-admin-backend/models/api/hrrequest"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportAttendanceList(list []attendanceapimodels.View) (*bytes.Buffer, error)
	ExportRequestList(list []hrrequestapimodels.View) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const sheet = "Sheet1"

var attendanceHeaders = []string{"Сотрудник", "Дата", "Приход", "Уход", "Статус", "Место", "Примечание"}

var requestHeaders = []string{"Сотрудник", "Тип", "Заголовок", "Статус", "Приоритет", "Начало", "Окончание", "Руководитель", "Создана"}

func (i impl) ExportAttendanceList(list []attendanceapimodels.View) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{
			item.EmployeeName,
			item.Date,
			item.CheckIn,
			item.CheckOut,
			item.StatusName,
			item.Location,
			item.Notes,
		})
	}
	return export("Посещаемость", attendanceHeaders, rows)
}

func (i impl) ExportRequestList(list []hrrequestapimodels.View) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{
			item.EmployeeName,
			item.TypeName,
			item.Title,
			item.StatusName,
			item.Priority,
			item.StartDate,
			item.EndDate,
			item.ManagerName,
			item.CreatedAt,
		})
	}
	return export("Заявки", requestHeaders, rows)
}

func export(sheetName string, headers []string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	headerStyle, err := newStyle(f, "center", true)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования стиля заголовка в xlsx")
	}
	if err = writeRow(f, 1, headerStyle, toValues(headers)); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, 25); err != nil {
		return nil, err
	}
	dataStyle, err := newStyle(f, "left", false)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования стиля данных в xlsx")
	}
	for idx, values := range rows {
		if err = writeRow(f, idx+2, dataStyle, values); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, sheetName); err != nil {
		return nil, err
	}
	return f.WriteToBuffer()
}

func writeRow(f *excelize.File, row, style int, values []interface{}) error {
	if len(values) == 0 {
		return nil
	}
	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	if err = f.SetSheetRow(sheet, cellFirst, &values); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}

func newStyle(f *excelize.File, horizontal string, bold bool) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: horizontal,
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Bold:   bold,
			Family: "Times New Roman",
			Size:   11,
		},
	})
}

func toValues(list []string) []interface{} {
	result := make([]interface{}, 0, len(list))
	for _, item := range list {
		result = append(result, item)
	}
	return result
}
