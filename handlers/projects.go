package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"wbsoaanvraag/models"
	"wbsoaanvraag/services"
	"wbsoaanvraag/store"
	"wbsoaanvraag/templates"
)

// HandleProjectsForm renders step 2. A draft without projects starts from a
// single empty project, same as a fresh form; that project is only persisted
// once the user saves.
func HandleProjectsForm(s *store.Store, cfg Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projects := GetDraft(e.Request).Projects
		if len(projects) == 0 {
			projects = []models.Project{models.NewProject("1")}
		}

		data := templates.ProjectsFormData{
			Projects: projects,
			Reasons:  make(map[int][]string),
		}
		component := templates.ProjectsPage(data, cfg.ProgramYear)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleProjectsSave is the gated "next step" submit: every project must
// pass validation before the list replaces the stored one. On failure the
// form re-renders with per-project reasons and stored state stays untouched.
func HandleProjectsSave(s *store.Store, cfg Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Ongeldige formulierdata")
		}

		projects := parseProjects(e.Request.Form)

		reasons := make(map[int][]string)
		now := cfg.now()
		for i, p := range projects {
			result := services.ValidateProject(p, cfg.ProgramYear, now)
			if !result.Valid {
				reasons[i] = result.Reasons
			}
		}

		if len(reasons) > 0 {
			SetToast(e, "warning", "Niet alle projecten zijn volledig ingevuld")
			data := templates.ProjectsFormData{Projects: projects, Reasons: reasons}
			component := templates.ProjectsPage(data, cfg.ProgramYear)
			return component.Render(e.Request.Context(), e.Response)
		}

		if err := s.UpdateProjects(projects); err != nil {
			log.Printf("projects_save: could not persist project list: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Opslaan is mislukt. Probeer het opnieuw.")
		}

		SetToast(e, "success", "Projecten opgeslagen")
		return e.Redirect(http.StatusFound, "/aanvraag/overzicht")
	}
}

// HandleProjectsDraftSave is the ungated "tussentijds opslaan": the current
// form state replaces the stored list without validation, so half-filled
// projects survive a browser restart.
func HandleProjectsDraftSave(s *store.Store, cfg Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Ongeldige formulierdata")
		}

		if err := s.UpdateProjects(parseProjects(e.Request.Form)); err != nil {
			log.Printf("projects_draft_save: could not persist project list: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Opslaan is mislukt. Probeer het opnieuw.")
		}

		SetToast(e, "success", "Voortgang opgeslagen")
		return e.Redirect(http.StatusFound, "/aanvraag/projecten")
	}
}

// HandleProjectAdd saves the current form state (ungated) and appends a new
// empty project with the next counter-based id.
func HandleProjectAdd(s *store.Store, cfg Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Ongeldige formulierdata")
		}

		projects := parseProjects(e.Request.Form)
		projects = append(projects, models.NewProject(models.NextProjectID(projects)))

		if err := s.UpdateProjects(projects); err != nil {
			log.Printf("project_add: could not persist project list: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Opslaan is mislukt. Probeer het opnieuw.")
		}

		return e.Redirect(http.StatusFound, "/aanvraag/projecten")
	}
}

// HandleProjectDelete removes one project by id, preserving the order of the
// remaining projects.
func HandleProjectDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Project-id ontbreekt")
		}

		projects := s.Load().Projects
		remaining := make([]models.Project, 0, len(projects))
		for _, p := range projects {
			if p.ID != projectID {
				remaining = append(remaining, p)
			}
		}
		if len(remaining) == len(projects) {
			return ErrorToast(e, http.StatusNotFound, "Project niet gevonden")
		}

		if err := s.UpdateProjects(remaining); err != nil {
			log.Printf("project_delete: could not persist project list: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Verwijderen is mislukt. Probeer het opnieuw.")
		}

		SetToast(e, "success", "Project verwijderd")
		e.Response.Header().Set("HX-Redirect", "/aanvraag/projecten")
		return e.NoContent(http.StatusOK)
	}
}

// parseProjects assembles the project list from the step 2 form, which
// repeats each field name once per project. Projects without an id (fresh
// form rows) get the next counter-based id.
func parseProjects(form url.Values) []models.Project {
	ids := form["id"]
	projects := make([]models.Project, 0, len(ids))

	for i := range ids {
		hours, _ := strconv.Atoi(strings.TrimSpace(formAt(form, "soUren", i)))
		projects = append(projects, models.Project{
			ID:    strings.TrimSpace(ids[i]),
			Title: strings.TrimSpace(formAt(form, "titel", i)),
			Description: models.ProjectDescription{
				WhatYouWillDo:  strings.TrimSpace(formAt(form, "watGaJeDoen", i)),
				WhatIsNew:      strings.TrimSpace(formAt(form, "watIsNieuw", i)),
				ProblemsSolved: strings.TrimSpace(formAt(form, "welkeProblemenLosJeOp", i)),
			},
			Activities:    strings.TrimSpace(formAt(form, "werkzaamheden", i)),
			DeclaredHours: hours,
			Duration: models.ProjectDuration{
				StartDate: strings.TrimSpace(formAt(form, "startDatum", i)),
				EndDate:   strings.TrimSpace(formAt(form, "eindDatum", i)),
			},
			WorkType: models.WorkType(formAt(form, "typeSOWerk", i)),
		})
	}

	for i := range projects {
		if projects[i].ID == "" {
			projects[i].ID = models.NextProjectID(projects)
		}
	}
	return projects
}

func formAt(form url.Values, key string, i int) string {
	values := form[key]
	if i >= len(values) {
		return ""
	}
	return values[i]
}
