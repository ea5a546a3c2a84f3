package services

import (
	"reflect"
	"strings"
	"testing"

	"wbsoaanvraag/models"
)

func sampleDraft() models.Draft {
	return models.Draft{
		Company: models.CompanyData{
			CompanyName:   "Acme BV",
			KvKNumber:     "12345678",
			ContactName:   "J. Jansen",
			ContactEmail:  "j@acme.nl",
			ApplicantType: models.ApplicantOnderneming,
		},
		Projects: []models.Project{validProject()},
	}
}

func findInstruction(doc Document, op Op, fragment string) bool {
	for _, in := range doc.Instructions {
		if in.Op == op && strings.Contains(in.Text, fragment) {
			return true
		}
	}
	return false
}

func TestRenderDraft_EmptyDraftProducesFullDocument(t *testing.T) {
	doc := RenderDraft(models.DefaultDraft(), testProgramYear, testNow)

	if len(doc.Instructions) == 0 {
		t.Fatal("expected instructions for an empty draft")
	}
	if doc.Pages != 1 {
		t.Errorf("expected a single page, got %d", doc.Pages)
	}

	if !findInstruction(doc, OpTitle, "WBSO Aanvraag 2025") {
		t.Error("missing document title")
	}
	for _, heading := range []string{
		"1. Bedrijfsgegevens",
		"2. Projecten",
		"3. Totaal S&O-uren",
		"4. Verklaring",
	} {
		if !findInstruction(doc, OpHeading, heading) {
			t.Errorf("missing heading %q", heading)
		}
	}

	if !findInstruction(doc, OpField, "Bedrijfsnaam: "+Placeholder) {
		t.Error("empty company name should render as placeholder")
	}
	if !findInstruction(doc, OpText, "Nog geen projecten toegevoegd.") {
		t.Error("missing empty-projects note")
	}
	if !findInstruction(doc, OpField, "Totaal aantal S&O-uren: 0 uur") {
		t.Error("empty draft should total 0 hours")
	}
}

func TestRenderDraft_ProjectSection(t *testing.T) {
	doc := RenderDraft(sampleDraft(), testProgramYear, testNow)

	if !findInstruction(doc, OpSubheading, "Project 1: AI Yoga App") {
		t.Error("missing numbered project subheading")
	}
	if !findInstruction(doc, OpField, "Type S&O-werk: Technische ontwikkeling") {
		t.Error("missing work type field")
	}
	if !findInstruction(doc, OpField, "Looptijd: 1 maart 2025 tot 30 juni 2025") {
		t.Error("missing formatted duration field")
	}
	if !findInstruction(doc, OpField, "Geschatte S&O-uren: 200 uur") {
		t.Error("missing declared hours field")
	}
	if !findInstruction(doc, OpText, "Een app maken die yoga-houdingen corrigeert") {
		t.Error("missing project description paragraph")
	}
	if findInstruction(doc, OpText, "Nog geen projecten toegevoegd.") {
		t.Error("empty-projects note should not appear with a project present")
	}
}

func TestRenderDraft_TotalsAndOrder(t *testing.T) {
	draft := sampleDraft()
	second := validProject()
	second.ID = "2"
	second.Title = "Slim Kasklimaat"
	second.DeclaredHours = 50
	draft.Projects = append(draft.Projects, second)

	doc := RenderDraft(draft, testProgramYear, testNow)

	if !findInstruction(doc, OpField, "Totaal aantal S&O-uren: 250 uur") {
		t.Error("expected summed total of 250 hours")
	}

	first, rest := -1, -1
	for i, in := range doc.Instructions {
		if in.Op == OpSubheading && strings.Contains(in.Text, "Project 1: AI Yoga App") {
			first = i
		}
		if in.Op == OpSubheading && strings.Contains(in.Text, "Project 2: Slim Kasklimaat") {
			rest = i
		}
	}
	if first == -1 || rest == -1 {
		t.Fatal("expected both project subheadings")
	}
	if first > rest {
		t.Error("projects rendered out of draft order")
	}
}

func TestRenderDraft_EstimatedCosts(t *testing.T) {
	costs := 12500.0

	draft := sampleDraft()
	draft.HoursCosts.EstimatedCosts = &costs

	doc := RenderDraft(draft, testProgramYear, testNow)
	if !findInstruction(doc, OpField, "Geschatte kosten: € 12.500,00") {
		t.Error("onderneming with costs set should render the costs field")
	}

	// Zzp'ers never get a costs line, even with a stale value in the draft.
	draft.Company.ApplicantType = models.ApplicantZZP
	doc = RenderDraft(draft, testProgramYear, testNow)
	if findInstruction(doc, OpField, "Geschatte kosten") {
		t.Error("zzp draft should not render a costs field")
	}
}

func TestRenderDraft_AttestationAndSignature(t *testing.T) {
	doc := RenderDraft(sampleDraft(), testProgramYear, testNow)

	if !findInstruction(doc, OpText, "naar waarheid zijn ingevuld") {
		t.Error("missing attestation text")
	}
	if !findInstruction(doc, OpField, "Datum: 15 januari 2025") {
		t.Error("missing generation date field")
	}
	if !findInstruction(doc, OpField, "Naam: J. Jansen") {
		t.Error("missing signatory name field")
	}
}

func TestRenderDraft_PaginatesLongDrafts(t *testing.T) {
	draft := sampleDraft()
	draft.Projects = nil
	for i := 0; i < 8; i++ {
		p := validProject()
		p.ID = models.NextProjectID(draft.Projects)
		draft.Projects = append(draft.Projects, p)
	}

	doc := RenderDraft(draft, testProgramYear, testNow)

	if doc.Pages < 2 {
		t.Fatalf("expected multiple pages for 8 projects, got %d", doc.Pages)
	}

	breaks := 0
	for _, in := range doc.Instructions {
		if in.Op == OpPageBreak {
			breaks++
		}
	}
	if breaks != doc.Pages-1 {
		t.Errorf("expected %d page breaks for %d pages, got %d", doc.Pages-1, doc.Pages, breaks)
	}
}

func TestRenderDraft_Deterministic(t *testing.T) {
	draft := sampleDraft()

	a := RenderDraft(draft, testProgramYear, testNow)
	b := RenderDraft(draft, testProgramYear, testNow)

	if !reflect.DeepEqual(a, b) {
		t.Error("same draft, year and clock should render identically")
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"short line untouched", "hello world", 20, []string{"hello world"}},
		{"wraps at word boundary", "one two three four", 9, []string{"one two", "three", "four"}},
		{"preserves explicit newlines", "kop\nregel twee", 20, []string{"kop", "regel twee"}},
		{"blank line preserved", "a\n\nb", 20, []string{"a", "", "b"}},
		{"hard splits long words", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapText(%q, %d) = %v, want %v", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
