package services

import (
	"testing"
	"time"

	"wbsoaanvraag/models"
)

func TestFormatDutchDate(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want string
	}{
		{"march", "2025-03-01", "1 maart 2025"},
		{"june", "2025-06-30", "30 juni 2025"},
		{"january", "2025-01-01", "1 januari 2025"},
		{"december", "2025-12-31", "31 december 2025"},
		{"empty yields placeholder", "", Placeholder},
		{"unparsable returned verbatim", "morgen", "morgen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDutchDate(tt.iso); got != tt.want {
				t.Errorf("FormatDutchDate(%q) = %q, want %q", tt.iso, got, tt.want)
			}
		})
	}
}

func TestFormatDutchDay(t *testing.T) {
	d := time.Date(2025, 8, 31, 14, 0, 0, 0, time.UTC)
	if got := FormatDutchDay(d); got != "31 augustus 2025" {
		t.Errorf("FormatDutchDay = %q, want %q", got, "31 augustus 2025")
	}
}

func TestWorkTypeLabel(t *testing.T) {
	tests := []struct {
		in   models.WorkType
		want string
	}{
		{models.WorkTechnicalDevelopment, "Technische ontwikkeling"},
		{models.WorkScientificResearch, "Technisch-wetenschappelijk onderzoek"},
		{"", Placeholder},
		{"iets-anders", Placeholder},
	}

	for _, tt := range tests {
		if got := WorkTypeLabel(tt.in); got != tt.want {
			t.Errorf("WorkTypeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplicantTypeLabel(t *testing.T) {
	tests := []struct {
		in   models.ApplicantType
		want string
	}{
		{models.ApplicantOnderneming, "Onderneming met personeel"},
		{models.ApplicantZZP, "Zzp'er"},
		{"", Placeholder},
	}

	for _, tt := range tests {
		if got := ApplicantTypeLabel(tt.in); got != tt.want {
			t.Errorf("ApplicantTypeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "€ 0,00"},
		{"cents", 0.5, "€ 0,50"},
		{"hundreds", 950, "€ 950,00"},
		{"thousands", 12500, "€ 12.500,00"},
		{"millions", 1234567.89, "€ 1.234.567,89"},
		{"negative", -250, "-€ 250,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEUR(tt.amount); got != tt.want {
				t.Errorf("FormatEUR(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
