package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"wbsoaanvraag/models"
)

// GenerateExcel creates an overview spreadsheet of the draft: the company
// block, one row per project and the totals. Like the PDF, it is always
// producible; empty fields get the placeholder.
func GenerateExcel(draft models.Draft, programYear int, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "WBSO Aanvraag"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through F).
	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 40, 28, 14, 14, 12}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	// ── Title + company block ───────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("WBSO Aanvraag %d", programYear))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	companyFields := []struct {
		label string
		value string
	}{
		{"Bedrijfsnaam", orPlaceholder(draft.Company.CompanyName)},
		{"KvK-nummer", orPlaceholder(draft.Company.KvKNumber)},
		{"Contactpersoon", orPlaceholder(draft.Company.ContactName)},
		{"E-mailadres", orPlaceholder(draft.Company.ContactEmail)},
		{"Type aanvrager", ApplicantTypeLabel(draft.Company.ApplicantType)},
	}

	rowNum := 3
	for _, field := range companyFields {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "A"+rowStr, field.label)
		f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, labelStyle)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(field.value))
		rowNum++
	}

	// ── Project table ───────────────────────────────────────────────────

	rowNum++
	headerRow := fmt.Sprintf("%d", rowNum)
	headers := []string{"Nr", "Titel", "Type S&O-werk", "Startdatum", "Einddatum", "S&O-uren"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+headerRow, h)
	}
	f.SetCellStyle(sheetName, "A"+headerRow, lastCol+headerRow, headerStyle)
	rowNum++

	for i, p := range draft.Projects {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "A"+rowStr, i+1)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(orPlaceholder(p.Title)))
		f.SetCellValue(sheetName, "C"+rowStr, WorkTypeLabel(p.WorkType))
		f.SetCellValue(sheetName, "D"+rowStr, FormatDutchDate(p.Duration.StartDate))
		f.SetCellValue(sheetName, "E"+rowStr, FormatDutchDate(p.Duration.EndDate))
		f.SetCellValue(sheetName, "F"+rowStr, p.DeclaredHours)
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, cellStyle)
		rowNum++
	}

	// ── Totals ──────────────────────────────────────────────────────────

	rowNum++
	totalRow := fmt.Sprintf("%d", rowNum)
	f.SetCellValue(sheetName, "E"+totalRow, "Totaal S&O-uren:")
	f.SetCellStyle(sheetName, "E"+totalRow, "E"+totalRow, labelStyle)
	f.SetCellValue(sheetName, "F"+totalRow, TotalDeclaredHours(draft.Projects))
	f.SetCellStyle(sheetName, "F"+totalRow, "F"+totalRow, labelStyle)
	rowNum++

	if draft.Company.ApplicantType == models.ApplicantOnderneming && draft.HoursCosts.EstimatedCosts != nil {
		costsRow := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "E"+costsRow, "Geschatte kosten:")
		f.SetCellStyle(sheetName, "E"+costsRow, "E"+costsRow, labelStyle)
		f.SetCellValue(sheetName, "F"+costsRow, FormatEUR(*draft.HoursCosts.EstimatedCosts))
		f.SetCellStyle(sheetName, "F"+costsRow, "F"+costsRow, labelStyle)
		rowNum++
	}

	rowNum++
	dateRow := fmt.Sprintf("%d", rowNum)
	f.SetCellValue(sheetName, "A"+dateRow, "Gegenereerd op: "+FormatDutchDay(now))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +,
// -, @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
