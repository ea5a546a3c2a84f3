package services

import (
	"fmt"
	"strings"
	"time"

	"wbsoaanvraag/models"
)

// Placeholder is rendered wherever a draft field is still empty. The document
// must always be producible, even from an incomplete draft.
const Placeholder = "Niet ingevuld"

// The application uses a single fixed locale for dates; a full localization
// framework is out of scope.
var dutchMonths = [...]string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

// FormatDutchDate formats an ISO date string ("2006-01-02") as a Dutch long
// date, e.g. "1 maart 2025". Empty input yields the placeholder; input that
// does not parse is returned verbatim rather than failing.
func FormatDutchDate(iso string) string {
	if iso == "" {
		return Placeholder
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return FormatDutchDay(t)
}

// FormatDutchDay formats a time as a Dutch long date ("d MMMM yyyy").
func FormatDutchDay(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), dutchMonths[t.Month()-1], t.Year())
}

// WorkTypeLabel maps the two work type values to their document labels.
func WorkTypeLabel(w models.WorkType) string {
	switch w {
	case models.WorkTechnicalDevelopment:
		return "Technische ontwikkeling"
	case models.WorkScientificResearch:
		return "Technisch-wetenschappelijk onderzoek"
	default:
		return Placeholder
	}
}

// ApplicantTypeLabel maps the applicant type to its document label.
func ApplicantTypeLabel(a models.ApplicantType) string {
	switch a {
	case models.ApplicantOnderneming:
		return "Onderneming met personeel"
	case models.ApplicantZZP:
		return "Zzp'er"
	default:
		return Placeholder
	}
}

// FormatEUR formats an amount in Dutch euro notation with dot-grouped
// thousands and a comma decimal separator, e.g. "€ 12.500,00".
func FormatEUR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "€ " + groupThousands(intPart) + "," + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts dots into an integer string, grouping digits in
// threes from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}
