package handlers

import (
	"fmt"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/pocketbase/pocketbase/core"

	"wbsoaanvraag/services"
	"wbsoaanvraag/store"
)

// exportInFlight guards against rapid repeated export triggers. It exists
// only to reject overlapping runs of the same bounded computation; there is
// no shared state to protect.
var exportInFlight atomic.Bool

// HandleExportPDF renders the draft and streams the PDF as a download. An
// encoder failure surfaces as a single generic notification and leaves the
// draft untouched; no partial file is sent.
func HandleExportPDF(s *store.Store, cfg Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !exportInFlight.CompareAndSwap(false, true) {
			return ErrorToast(e, http.StatusTooManyRequests, "Er wordt al een export gegenereerd")
		}
		defer exportInFlight.Store(false)

		draft := s.Load()
		doc := services.RenderDraft(draft, cfg.ProgramYear, cfg.now())

		pdfBytes, err := services.GeneratePDF(doc)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "PDF genereren is mislukt. Probeer het opnieuw.")
		}

		filename := services.ExportFilename(draft.Company.CompanyName, "pdf")
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleExportExcel streams the overview spreadsheet as a download.
func HandleExportExcel(s *store.Store, cfg Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !exportInFlight.CompareAndSwap(false, true) {
			return ErrorToast(e, http.StatusTooManyRequests, "Er wordt al een export gegenereerd")
		}
		defer exportInFlight.Store(false)

		draft := s.Load()

		xlsxBytes, err := services.GenerateExcel(draft, cfg.ProgramYear, cfg.now())
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Excel genereren is mislukt. Probeer het opnieuw.")
		}

		filename := services.ExportFilename(draft.Company.CompanyName, "xlsx")
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
