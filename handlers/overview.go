package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"wbsoaanvraag/models"
	"wbsoaanvraag/services"
	"wbsoaanvraag/store"
	"wbsoaanvraag/templates"
)

// HandleOverview renders step 3: the full draft summary with derived totals
// and the export actions.
func HandleOverview(s *store.Store, cfg Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		draft := GetDraft(e.Request)

		durations := make([]string, len(draft.Projects))
		workTypes := make([]string, len(draft.Projects))
		for i, p := range draft.Projects {
			if p.Duration.StartDate != "" && p.Duration.EndDate != "" {
				durations[i] = services.FormatDutchDate(p.Duration.StartDate) +
					" tot " + services.FormatDutchDate(p.Duration.EndDate)
			}
			workTypes[i] = services.WorkTypeLabel(p.WorkType)
		}

		data := templates.OverviewData{
			Draft:          draft,
			TotalHours:     services.TotalDeclaredHours(draft.Projects),
			ApplicantLabel: services.ApplicantTypeLabel(draft.Company.ApplicantType),
			DurationLabels: durations,
			WorkTypeLabels: workTypes,
			CanExport:      draft.Company.CompanyName != "" && len(draft.Projects) > 0,
		}
		component := templates.OverviewPage(data, cfg.ProgramYear)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleHoursCostsSave stores the hours/costs section. The total hours are
// always re-derived from the project list; only the estimated costs come
// from the form.
func HandleHoursCostsSave(s *store.Store, cfg Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Ongeldige formulierdata")
		}

		total := services.TotalDeclaredHours(s.Load().Projects)
		patch := models.HoursCostsPatch{TotalHours: &total}

		if raw := strings.TrimSpace(e.Request.FormValue("geschatteKosten")); raw != "" {
			costs, err := strconv.ParseFloat(raw, 64)
			if err != nil || costs < 0 {
				return ErrorToast(e, http.StatusBadRequest, "Vul een geldig kostenbedrag in")
			}
			patch.EstimatedCosts = &costs
		}

		if err := s.UpdateHoursCosts(patch); err != nil {
			log.Printf("hours_costs_save: could not persist hours/costs section: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Opslaan is mislukt. Probeer het opnieuw.")
		}

		SetToast(e, "success", "Uren en kosten opgeslagen")
		return e.Redirect(http.StatusFound, "/aanvraag/overzicht")
	}
}
