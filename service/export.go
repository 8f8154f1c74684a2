package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"fintrack/models"

	"github.com/xuri/excelize/v2"
)

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var reportHeaders = []string{"Data", "Descrição", "Categoria", "Tipo", "Valor"}

// ReportFilename 导出文件名，如 relatorio-Março-2024.csv
func ReportFilename(r models.MonthlyReport, ext string) string {
	name := strconv.Itoa(r.Month + 1)
	if r.Month >= 0 && r.Month < len(monthNames) {
		name = monthNames[r.Month]
	}
	return fmt.Sprintf("relatorio-%s-%d.%s", name, r.Year, ext)
}

func reportRow(t models.Transaction) []string {
	category := ""
	if t.Category != nil {
		category = t.Category.Name
	}
	return []string{
		t.Date.Format("02/01/2006"),
		t.Description,
		category,
		t.Type.Label(),
		strconv.FormatFloat(t.Amount, 'f', -1, 64),
	}
}

// FormatReportCSV 生成月度报表 CSV，行之间以 \n 分隔，末尾不带换行
func FormatReportCSV(r models.MonthlyReport) ([]byte, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)
	if err := writer.Write(reportHeaders); err != nil {
		return nil, err
	}
	for _, t := range r.Transactions {
		if err := writer.Write(reportRow(t)); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteReportExcel 生成月度报表 xlsx：明细 + 汇总
func WriteReportExcel(w io.Writer, r models.MonthlyReport) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Relatório"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 14)

	for i, header := range reportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, t := range r.Transactions {
		row := i + 2
		values := reportRow(t)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), values[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), values[1])
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), values[2])
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), values[3])
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.Amount)
	}

	// 汇总区与明细之间空一行
	totalRow := len(r.Transactions) + 3
	totals := []struct {
		label string
		value float64
	}{
		{"Receitas", r.Income},
		{"Despesas", r.Expenses},
		{"Saldo", r.Balance},
	}
	for i, item := range totals {
		row := totalRow + i
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.label)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), item.value)
		f.SetCellStyle(sheetName, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), headerStyle)
	}

	return f.Write(w)
}
