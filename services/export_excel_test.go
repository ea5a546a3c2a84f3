package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"wbsoaanvraag/models"
)

func TestGenerateExcel_SheetContents(t *testing.T) {
	data, err := GenerateExcel(sampleDraft(), testProgramYear, testNow)
	if err != nil {
		t.Fatalf("GenerateExcel failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheet := "WBSO Aanvraag"
	if f.GetSheetName(0) != sheet {
		t.Errorf("expected sheet %q, got %q", sheet, f.GetSheetName(0))
	}

	cells := map[string]string{
		"A1": "WBSO Aanvraag 2025",
		"A3": "Bedrijfsnaam",
		"B3": "Acme BV",
		"B4": "12345678",
		"B7": "Onderneming met personeel",
		"A9": "Nr",
		"B9": "Titel",
		"F9": "S&O-uren",
		"B10": "AI Yoga App",
		"C10": "Technische ontwikkeling",
		"D10": "1 maart 2025",
		"E10": "30 juni 2025",
		"F10": "200",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("read cell %s: %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}

func TestGenerateExcel_Totals(t *testing.T) {
	costs := 950.0

	draft := sampleDraft()
	second := validProject()
	second.ID = "2"
	second.DeclaredHours = 50
	draft.Projects = append(draft.Projects, second)
	draft.HoursCosts.EstimatedCosts = &costs

	data, err := GenerateExcel(draft, testProgramYear, testNow)
	if err != nil {
		t.Fatalf("GenerateExcel failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheet := "WBSO Aanvraag"

	// Two project rows (10, 11), blank row, totals on 13, costs on 14.
	if got, _ := f.GetCellValue(sheet, "F13"); got != "250" {
		t.Errorf("total hours cell = %q, want %q", got, "250")
	}
	if got, _ := f.GetCellValue(sheet, "F14"); got != "€ 950,00" {
		t.Errorf("costs cell = %q, want %q", got, "€ 950,00")
	}
}

func TestGenerateExcel_EmptyDraftUsesPlaceholders(t *testing.T) {
	data, err := GenerateExcel(models.DefaultDraft(), testProgramYear, testNow)
	if err != nil {
		t.Fatalf("GenerateExcel failed for empty draft: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheet := "WBSO Aanvraag"
	if got, _ := f.GetCellValue(sheet, "B3"); got != Placeholder {
		t.Errorf("empty company name cell = %q, want %q", got, Placeholder)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme BV", "Acme BV"},
		{"=CMD()", "'=CMD()"},
		{"+100", "'+100"},
		{"-100", "'-100"},
		{"@sum", "'@sum"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.in); got != tt.want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
