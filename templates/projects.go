package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"wbsoaanvraag/models"
)

// ProjectsFormData carries the projects step form state. Reasons holds the
// validation reasons per project index from a rejected submit.
type ProjectsFormData struct {
	Projects []models.Project
	Reasons  map[int][]string
}

// ProjectsPage is the full step 2 page.
func ProjectsPage(data ProjectsFormData, programYear int) templ.Component {
	return Layout("Fase 2: Projecten", StepProjects, programYear, projectsForm(data, programYear))
}

func projectsForm(data ProjectsFormData, programYear int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<form method="post" action="/aanvraag/projecten" id="projects-form">`)

		for i, p := range data.Projects {
			writeProjectCard(w, i, p, data.Reasons[i], len(data.Projects) > 1, programYear)
		}

		_, err := io.WriteString(w, `<button type="submit" class="btn outline" formaction="/aanvraag/projecten/add">Voeg nog een project toe</button>
<div class="card help">
<h3>Tips voor je projectbeschrijving</h3>
<ul>
<li>Beschrijf duidelijk wat er technisch nieuw is aan je project</li>
<li>Focus op de technische uitdagingen, niet op commerci&euml;le aspecten</li>
<li>Wees specifiek over de werkzaamheden die je gaat uitvoeren</li>
<li>Schat je uren realistisch in, alleen technische uren tellen mee</li>
</ul>
</div>
<div class="form-actions">
<a href="/aanvraag" class="btn outline">Vorige stap</a>
<button type="submit" class="btn outline" formaction="/aanvraag/projecten/opslaan">Tussentijds opslaan</button>
<button type="submit" class="btn primary">Volgende stap</button>
</div>
</form>
`)
		return err
	})
}

func writeProjectCard(w io.Writer, index int, p models.Project, reasons []string, removable bool, programYear int) {
	fmt.Fprintf(w, `<fieldset class="card project">
<legend>Project %d</legend>
<input type="hidden" name="id" value="%s">
`, index+1, templ.EscapeString(p.ID))

	if removable {
		fmt.Fprintf(w, `<button type="button" class="btn danger" hx-delete="/aanvraag/projecten/%s" hx-confirm="Project verwijderen?">Verwijder project</button>
`, templ.EscapeString(p.ID))
	}

	if len(reasons) > 0 {
		io.WriteString(w, `<ul class="field-error">`)
		for _, reason := range reasons {
			fmt.Fprintf(w, `<li>%s</li>`, templ.EscapeString(reason))
		}
		io.WriteString(w, `</ul>
`)
	}

	fmt.Fprintf(w, `<div class="form-field">
<label>Projecttitel</label>
<input name="titel" value="%s" placeholder="Bijv: Ontwikkeling van een slimme yoga-app">
</div>
`, templ.EscapeString(p.Title))

	writeTextarea(w, "watGaJeDoen", "Wat ga je doen?", p.Description.WhatYouWillDo,
		"Bijv: Een app maken die yoga-houdingen corrigeert")
	writeTextarea(w, "watIsNieuw", "Wat is nieuw?", p.Description.WhatIsNew,
		"Bijv: Gebruik van AI voor real-time houdinganalyse")
	writeTextarea(w, "welkeProblemenLosJeOp", "Welke problemen los je op?", p.Description.ProblemsSolved,
		"Bijv: Nauwkeurige detectie bij weinig licht")
	writeTextarea(w, "werkzaamheden", "Werkzaamheden", p.Activities,
		"Bijv: Ontwerpen van AI-model, testen van prototypes")

	hours := ""
	if p.DeclaredHours > 0 {
		hours = fmt.Sprintf("%d", p.DeclaredHours)
	}
	fmt.Fprintf(w, `<div class="form-field">
<label>Geschatte S&amp;O-uren</label>
<input name="soUren" type="number" min="0" value="%s" placeholder="Bijv: 200">
</div>
`, hours)

	yearMin := fmt.Sprintf("%d-01-01", programYear)
	yearMax := fmt.Sprintf("%d-12-31", programYear)
	fmt.Fprintf(w, `<div class="form-field half">
<label>Startdatum</label>
<input name="startDatum" type="date" min="%s" max="%s" value="%s">
</div>
<div class="form-field half">
<label>Einddatum</label>
<input name="eindDatum" type="date" min="%s" max="%s" value="%s">
</div>
`, yearMin, yearMax, templ.EscapeString(p.Duration.StartDate),
		yearMin, yearMax, templ.EscapeString(p.Duration.EndDate))

	io.WriteString(w, `<div class="form-field">
<label>Type S&amp;O-werk</label>
<select name="typeSOWerk">
`)
	writeOption(w, string(models.WorkTechnicalDevelopment), "Technische ontwikkeling", string(p.WorkType))
	writeOption(w, string(models.WorkScientificResearch), "Technisch-wetenschappelijk onderzoek", string(p.WorkType))
	io.WriteString(w, `</select>
</div>
</fieldset>
`)
}

func writeTextarea(w io.Writer, name, label, value, placeholder string) {
	fmt.Fprintf(w, `<div class="form-field">
<label>%s</label>
<textarea name="%s" placeholder="%s">%s</textarea>
</div>
`, templ.EscapeString(label), name, templ.EscapeString(placeholder), templ.EscapeString(value))
}
