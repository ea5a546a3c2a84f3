package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"wbsoaanvraag/models"
)

// OverviewData carries everything the step 3 page shows: the draft, the
// derived totals and the formatted field values.
type OverviewData struct {
	Draft      models.Draft
	TotalHours int

	ApplicantLabel string
	// DurationLabel per project index, already formatted "start tot eind".
	DurationLabels []string
	WorkTypeLabels []string

	CanExport bool
}

// OverviewPage is the full step 3 page.
func OverviewPage(data OverviewData, programYear int) templ.Component {
	return Layout("Fase 3: Overzicht en Indienen", StepOverview, programYear, overviewContent(data))
}

func overviewContent(data OverviewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		c := data.Draft.Company

		io.WriteString(w, `<section class="card">
<div class="card-header"><h3>Bedrijfsgegevens</h3><a href="/aanvraag" class="btn outline">Bewerken</a></div>
<dl class="summary-grid">
`)
		writeSummaryItem(w, "Bedrijfsnaam", c.CompanyName)
		writeSummaryItem(w, "KvK-nummer", c.KvKNumber)
		writeSummaryItem(w, "Contactpersoon", c.ContactName)
		writeSummaryItem(w, "E-mailadres", c.ContactEmail)
		writeSummaryItem(w, "Type aanvrager", data.ApplicantLabel)
		io.WriteString(w, `</dl>
</section>
<section class="card">
<div class="card-header"><h3>Projecten</h3><a href="/aanvraag/projecten" class="btn outline">Bewerken</a></div>
`)

		if len(data.Draft.Projects) == 0 {
			io.WriteString(w, `<p class="hint">Geen projecten ingediend. Voeg minimaal &eacute;&eacute;n project toe.</p>
`)
		}
		for i, p := range data.Draft.Projects {
			title := p.Title
			if title == "" {
				title = "Geen titel"
			}
			fmt.Fprintf(w, `<article class="project-summary">
<h4>Project %d: %s</h4>
`, i+1, templ.EscapeString(title))
			writeSummaryItem(w, "Type S&O-werk", data.WorkTypeLabels[i])
			writeSummaryItem(w, "Geschatte S&O-uren", fmt.Sprintf("%d uur", p.DeclaredHours))
			writeSummaryItem(w, "Looptijd", data.DurationLabels[i])
			writeSummaryItem(w, "Wat ga je doen?", p.Description.WhatYouWillDo)
			writeSummaryItem(w, "Wat is technisch nieuw?", p.Description.WhatIsNew)
			writeSummaryItem(w, "Welke technische problemen los je op?", p.Description.ProblemsSolved)
			writeSummaryItem(w, "Werkzaamheden", p.Activities)
			io.WriteString(w, `</article>
`)
		}

		if len(data.Draft.Projects) > 0 {
			fmt.Fprintf(w, `<div class="totals"><span>Totaal aantal S&amp;O-uren</span><strong>%d uur</strong></div>
`, data.TotalHours)
		}
		io.WriteString(w, `</section>
`)

		if c.ApplicantType == models.ApplicantOnderneming {
			costs := ""
			if v := data.Draft.HoursCosts.EstimatedCosts; v != nil {
				costs = fmt.Sprintf("%.2f", *v)
			}
			fmt.Fprintf(w, `<section class="card">
<h3>Uren en kosten</h3>
<form method="post" action="/aanvraag/uren-kosten">
<div class="form-field">
<label for="geschatteKosten">Geschatte S&amp;O-kosten (&euro;)</label>
<input id="geschatteKosten" name="geschatteKosten" type="number" min="0" step="0.01" value="%s" placeholder="Bijv: 12500">
</div>
<button type="submit" class="btn outline">Opslaan</button>
</form>
</section>
`, costs)
		}

		io.WriteString(w, `<section class="card export">
<h3>Klaar om in te dienen?</h3>
<p>Download je WBSO-aanvraag en dien deze in via het eLoket van RVO.</p>
`)
		if data.CanExport {
			io.WriteString(w, `<a href="/aanvraag/export/pdf" class="btn primary">Download als PDF</a>
<a href="/aanvraag/export/excel" class="btn outline">Download als Excel</a>
`)
		} else {
			io.WriteString(w, `<p class="hint">Vul bedrijfsgegevens en minimaal &eacute;&eacute;n project in om te kunnen downloaden.</p>
`)
		}

		_, err := io.WriteString(w, `</section>
<form method="post" action="/aanvraag/reset" onsubmit="return confirm('Weet je zeker dat je de hele aanvraag wilt wissen?')">
<input type="hidden" name="confirm" value="true">
<button type="submit" class="btn danger">Aanvraag opnieuw beginnen</button>
</form>
`)
		return err
	})
}

func writeSummaryItem(w io.Writer, label, value string) {
	if value == "" {
		value = "Niet ingevuld"
	}
	fmt.Fprintf(w, `<div class="summary-item"><dt>%s</dt><dd>%s</dd></div>
`, templ.EscapeString(label), templ.EscapeString(value))
}
