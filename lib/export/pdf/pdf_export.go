package pdfexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	hrrequestapimodels "hr-admin-backend/models/api/hrrequest"
)

// FontDir каталог с TTF шрифтом для кириллицы. Без шрифта используется Helvetica (только latin-1)
var FontDir = "static/font/"

const unicodeFont = "DejaVuSans.ttf"

func GenerateRequestCard(request hrrequestapimodels.View, approvals []hrrequestapimodels.ApprovalView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateRequestCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", FontDir)
	pdf.AddPage()
	tr := setFont(pdf)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.SetFontSize(16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("HR Request: %v", request.Title)), "", 1, "L", false, 0, "")
	pdf.SetFontSize(11)
	pdf.Ln(2)

	rows := [][2]string{
		{"ID", request.ID},
		{"Type", request.TypeName},
		{"Status", request.StatusName},
		{"Priority", request.Priority},
		{"Employee", request.EmployeeName},
		{"Manager", request.ManagerName},
		{"Start date", request.StartDate},
		{"End date", request.EndDate},
		{"Created", request.CreatedAt},
		{"External ID", request.ExternalID},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		pdf.CellFormat(40, 7, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr(row[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
	pdf.MultiCell(0, 6, tr(request.Description), "", "L", false)
	if request.Comments != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Comments: %v", request.Comments)), "", "L", false)
	}

	if len(approvals) != 0 {
		pdf.Ln(4)
		pdf.SetFontSize(13)
		pdf.CellFormat(0, 8, tr("Approval history"), "", 1, "L", false, 0, "")
		pdf.SetFontSize(10)
		for _, approval := range approvals {
			line := fmt.Sprintf("%v  %v  %v", approval.CreatedAt, approval.ApproverName, approval.StatusName)
			if approval.Comment != "" {
				line = fmt.Sprintf("%v: %v", line, approval.Comment)
			}
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
		}
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setFont(pdf *fpdf.Fpdf) func(string) string {
	if _, err := os.Stat(filepath.Join(FontDir, unicodeFont)); err == nil {
		pdf.AddUTF8Font("DejaVu", "", unicodeFont)
		pdf.SetFont("DejaVu", "", 11)
		return func(s string) string { return s }
	}
	pdf.SetFont("Helvetica", "", 11)
	return pdf.UnicodeTranslatorFromDescriptor("")
}
