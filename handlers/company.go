package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"wbsoaanvraag/models"
	"wbsoaanvraag/services"
	"wbsoaanvraag/store"
	"wbsoaanvraag/templates"
)

// HandleCompanyForm renders step 1 with the current company section.
func HandleCompanyForm(s *store.Store, cfg Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.CompanyFormData{
			Company: GetDraft(e.Request).Company,
			Errors:  make(map[string]string),
		}
		component := templates.CompanyPage(data, cfg.ProgramYear)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCompanySave validates the submitted company fields; on success it
// merges them into the draft and moves on to the projects step, otherwise it
// re-renders the form with the field errors. Validation failure never
// touches stored state.
func HandleCompanySave(s *store.Store, cfg Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Ongeldige formulierdata")
		}

		company := models.CompanyData{
			CompanyName:   strings.TrimSpace(e.Request.FormValue("bedrijfsnaam")),
			KvKNumber:     strings.TrimSpace(e.Request.FormValue("kvkNummer")),
			ContactName:   strings.TrimSpace(e.Request.FormValue("contactNaam")),
			ContactEmail:  strings.TrimSpace(e.Request.FormValue("contactEmail")),
			ApplicantType: models.ApplicantType(e.Request.FormValue("typeAanvrager")),
		}

		errors := services.ValidateCompany(company)
		if len(errors) > 0 {
			SetToast(e, "warning", "Controleer de gemarkeerde velden")
			data := templates.CompanyFormData{Company: company, Errors: errors}
			component := templates.CompanyPage(data, cfg.ProgramYear)
			return component.Render(e.Request.Context(), e.Response)
		}

		patch := models.CompanyPatch{
			CompanyName:   &company.CompanyName,
			KvKNumber:     &company.KvKNumber,
			ContactName:   &company.ContactName,
			ContactEmail:  &company.ContactEmail,
			ApplicantType: &company.ApplicantType,
		}
		if err := s.UpdateCompany(patch); err != nil {
			log.Printf("company_save: could not persist company section: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Opslaan is mislukt. Probeer het opnieuw.")
		}

		SetToast(e, "success", "Bedrijfsgegevens opgeslagen")
		return e.Redirect(http.StatusFound, "/aanvraag/projecten")
	}
}
