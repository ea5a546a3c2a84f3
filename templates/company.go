package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"wbsoaanvraag/models"
)

// CompanyFormData carries the company step form state: current values plus
// any field errors from a rejected submit.
type CompanyFormData struct {
	Company models.CompanyData
	Errors  map[string]string
}

// CompanyPage is the full step 1 page.
func CompanyPage(data CompanyFormData, programYear int) templ.Component {
	return Layout("Fase 1: Bedrijfsgegevens", StepCompany, programYear, companyForm(data))
}

func companyForm(data CompanyFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		c := data.Company

		io.WriteString(w, `<form method="post" action="/aanvraag" class="card">`)

		fmt.Fprintf(w, `<div class="form-field">
<label for="bedrijfsnaam">Bedrijfsnaam</label>
<input id="bedrijfsnaam" name="bedrijfsnaam" value="%s" placeholder="Voer de naam van uw bedrijf in" required>`,
			templ.EscapeString(c.CompanyName))
		fieldError(w, data.Errors, "bedrijfsnaam")
		io.WriteString(w, `</div>`)

		fmt.Fprintf(w, `<div class="form-field">
<label for="kvkNummer">KvK-nummer</label>
<input id="kvkNummer" name="kvkNummer" value="%s" placeholder="12345678" pattern="[0-9]{8}" required>
<p class="hint">U vindt uw KvK-nummer op uw uittreksel van de Kamer van Koophandel</p>`,
			templ.EscapeString(c.KvKNumber))
		fieldError(w, data.Errors, "kvkNummer")
		io.WriteString(w, `</div>`)

		fmt.Fprintf(w, `<div class="form-field">
<label for="contactNaam">Naam contactpersoon</label>
<input id="contactNaam" name="contactNaam" value="%s" placeholder="Volledige naam" required>`,
			templ.EscapeString(c.ContactName))
		fieldError(w, data.Errors, "contactNaam")
		io.WriteString(w, `</div>`)

		fmt.Fprintf(w, `<div class="form-field">
<label for="contactEmail">E-mailadres</label>
<input id="contactEmail" name="contactEmail" type="email" value="%s" placeholder="naam@bedrijf.nl" required>`,
			templ.EscapeString(c.ContactEmail))
		fieldError(w, data.Errors, "contactEmail")
		io.WriteString(w, `</div>`)

		io.WriteString(w, `<div class="form-field">
<label for="typeAanvrager">Type aanvrager</label>
<select id="typeAanvrager" name="typeAanvrager">
`)
		writeOption(w, "", "Selecteer type aanvrager", string(c.ApplicantType))
		writeOption(w, string(models.ApplicantOnderneming), "Onderneming met personeel", string(c.ApplicantType))
		writeOption(w, string(models.ApplicantZZP), "Zzp'er", string(c.ApplicantType))
		io.WriteString(w, `</select>`)
		fieldError(w, data.Errors, "typeAanvrager")
		io.WriteString(w, `</div>`)

		_, err := io.WriteString(w, `<div class="form-actions">
<button type="submit" class="btn primary">Volgende stap</button>
</div>
</form>
`)
		return err
	})
}

func writeOption(w io.Writer, value, label, selected string) {
	sel := ""
	if value == selected {
		sel = " selected"
	}
	fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, templ.EscapeString(value), sel, templ.EscapeString(label))
}
