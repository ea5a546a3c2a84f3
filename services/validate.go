package services

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"wbsoaanvraag/models"
)

// A project must run for at least one full day: equal start and end dates are
// rejected.
const minimumDurationDays = 1

// ValidationResult is the outcome of validating one project. Reasons holds a
// user-facing message per unmet rule; Valid is true only when Reasons is
// empty.
type ValidationResult struct {
	Valid   bool
	Reasons []string
}

var kvkPattern = regexp.MustCompile(`^[0-9]{8}$`)

// ValidateProject checks a single project against every rule required before
// it counts as committed: non-empty narrative fields, strictly positive
// hours, a consistent duration inside the program year, a future (or today)
// start date and a chosen work type. It is pure; the caller supplies the
// program year and the current time.
func ValidateProject(p models.Project, programYear int, now time.Time) ValidationResult {
	var reasons []string

	if strings.TrimSpace(p.Title) == "" {
		reasons = append(reasons, "Projecttitel is verplicht")
	}
	if strings.TrimSpace(p.Description.WhatYouWillDo) == "" {
		reasons = append(reasons, "Beschrijving 'Wat ga je doen?' is verplicht")
	}
	if strings.TrimSpace(p.Description.WhatIsNew) == "" {
		reasons = append(reasons, "Beschrijving 'Wat is nieuw?' is verplicht")
	}
	if strings.TrimSpace(p.Description.ProblemsSolved) == "" {
		reasons = append(reasons, "Beschrijving 'Welke problemen los je op?' is verplicht")
	}
	if strings.TrimSpace(p.Activities) == "" {
		reasons = append(reasons, "Werkzaamheden zijn verplicht")
	}
	if p.DeclaredHours <= 0 {
		reasons = append(reasons, "Geschatte S&O-uren moeten groter zijn dan 0")
	}
	if !models.WorkTypeValid(p.WorkType) {
		reasons = append(reasons, "Kies een type S&O-werk")
	}

	reasons = append(reasons, validateDuration(p.Duration, programYear, now)...)

	return ValidationResult{Valid: len(reasons) == 0, Reasons: reasons}
}

func validateDuration(d models.ProjectDuration, programYear int, now time.Time) []string {
	var reasons []string

	start, startErr := time.Parse("2006-01-02", d.StartDate)
	end, endErr := time.Parse("2006-01-02", d.EndDate)

	if d.StartDate == "" || startErr != nil {
		reasons = append(reasons, "Startdatum is verplicht")
	}
	if d.EndDate == "" || endErr != nil {
		reasons = append(reasons, "Einddatum is verplicht")
	}
	if startErr != nil || endErr != nil {
		return reasons
	}

	if end.Sub(start) < minimumDurationDays*24*time.Hour {
		reasons = append(reasons, "Einddatum moet na de startdatum liggen")
	}
	if start.Year() != programYear || end.Year() != programYear {
		reasons = append(reasons, fmt.Sprintf("Looptijd moet binnen het programmajaar %d vallen", programYear))
	}
	// Compared by calendar date: a project may start today, not yesterday.
	if startsBeforeDay(start, now) {
		reasons = append(reasons, "Startdatum mag niet in het verleden liggen")
	}

	return reasons
}

// startsBeforeDay reports whether start falls on a calendar day before the
// day of now (local time).
func startsBeforeDay(start, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start.Before(today)
}

// ValidateCompany checks the company step's fields and returns a field name
// to message map, empty when everything passes.
func ValidateCompany(c models.CompanyData) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(c.CompanyName) == "" {
		errors["bedrijfsnaam"] = "Bedrijfsnaam is verplicht"
	}
	if !kvkPattern.MatchString(c.KvKNumber) {
		errors["kvkNummer"] = "Vul een geldig KvK-nummer in (8 cijfers)"
	}
	if strings.TrimSpace(c.ContactName) == "" {
		errors["contactNaam"] = "Naam contactpersoon is verplicht"
	}
	if _, err := mail.ParseAddress(c.ContactEmail); err != nil {
		errors["contactEmail"] = "Vul een geldig e-mailadres in"
	}
	if !models.ApplicantTypeValid(c.ApplicantType) {
		errors["typeAanvrager"] = "Kies een type aanvrager"
	}

	return errors
}
