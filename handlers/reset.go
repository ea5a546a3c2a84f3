package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"wbsoaanvraag/store"
)

// HandleReset clears the whole draft. The confirmation gate lives here at
// the boundary: the form must carry confirm=true or nothing happens.
func HandleReset(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Ongeldige formulierdata")
		}
		if e.Request.FormValue("confirm") != "true" {
			return ErrorToast(e, http.StatusBadRequest, "Bevestiging ontbreekt")
		}

		if err := s.Reset(); err != nil {
			log.Printf("reset: could not clear draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Wissen is mislukt. Probeer het opnieuw.")
		}

		SetToast(e, "success", "Aanvraag gewist")
		return e.Redirect(http.StatusFound, "/aanvraag")
	}
}
