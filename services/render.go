package services

import (
	"fmt"
	"strings"
	"time"

	"wbsoaanvraag/models"
)

// Op identifies one kind of draw instruction.
type Op string

const (
	OpTitle      Op = "title"      // document title
	OpHeading    Op = "heading"    // numbered section heading
	OpSubheading Op = "subheading" // project/subsection heading
	OpField      Op = "field"      // "Label: value" line
	OpText       Op = "text"       // one wrapped paragraph line
	OpSpacer     Op = "spacer"     // vertical gap of one line
	OpPageBreak  Op = "pagebreak"  // start a new page
)

// Instruction is a single draw instruction. The sequence is independent of
// any output encoding; encoders replay it onto fixed-size pages.
type Instruction struct {
	Op   Op
	Text string
}

// Document is the ordered instruction sequence for one rendered draft plus
// the resulting page count.
type Document struct {
	Instructions []Instruction
	Pages        int
}

// Page layout in millimeters (A4 portrait), mirroring the coordinate system
// the encoder draws in.
const (
	pageHeight = 297.0
	topMargin  = 20.0
	lineHeight = 7.0

	// Vertical space reserved near the bottom before starting a new project
	// subsection or the totals block.
	projectReserve = 40.0
	totalsReserve  = 60.0
	lineReserve    = 20.0

	// Paragraphs wrap to the content width; at the body font size that is
	// roughly this many characters per line.
	maxLineChars = 90
)

const attestation = "Ondergetekende verklaart dat alle gegevens in deze aanvraag " +
	"naar waarheid zijn ingevuld en dat alle werkzaamheden zullen worden " +
	"uitgevoerd conform de voorwaarden van de WBSO-regeling."

// RenderDraft transforms a draft into the ordered instruction sequence for
// the application document. It never fails: empty fields render as the
// placeholder, so a snapshot document can be produced from any draft. Given
// the same draft, year and clock the output is identical.
func RenderDraft(draft models.Draft, programYear int, now time.Time) Document {
	r := &renderer{y: topMargin, pages: 1}

	r.title(fmt.Sprintf("WBSO Aanvraag %d", programYear))

	r.heading("1. Bedrijfsgegevens")
	r.field("Bedrijfsnaam", orPlaceholder(draft.Company.CompanyName))
	r.field("KvK-nummer", orPlaceholder(draft.Company.KvKNumber))
	r.field("Contactpersoon", orPlaceholder(draft.Company.ContactName))
	r.field("E-mailadres", orPlaceholder(draft.Company.ContactEmail))
	r.field("Type aanvrager", ApplicantTypeLabel(draft.Company.ApplicantType))
	r.spacer()

	r.heading("2. Projecten")
	if len(draft.Projects) == 0 {
		r.paragraph("Nog geen projecten toegevoegd.")
		r.spacer()
	}
	for i, p := range draft.Projects {
		r.breakIfNeeded(projectReserve)

		r.subheading(fmt.Sprintf("Project %d: %s", i+1, orPlaceholder(p.Title)))
		r.field("Type S&O-werk", WorkTypeLabel(p.WorkType))
		r.field("Looptijd", formatDuration(p.Duration))
		r.field("Geschatte S&O-uren", fmt.Sprintf("%d uur", p.DeclaredHours))

		r.subheading("Projectbeschrijving")
		r.paragraph("Wat ga je doen?\n" + orPlaceholder(p.Description.WhatYouWillDo))
		r.spacer()
		r.paragraph("Wat is nieuw?\n" + orPlaceholder(p.Description.WhatIsNew))
		r.spacer()
		r.paragraph("Welke problemen los je op?\n" + orPlaceholder(p.Description.ProblemsSolved))
		r.spacer()

		r.subheading("Werkzaamheden")
		r.paragraph(orPlaceholder(p.Activities))
		r.spacer()
		r.spacer()
	}

	r.breakIfNeeded(totalsReserve)
	r.heading("3. Totaal S&O-uren")
	r.field("Totaal aantal S&O-uren", fmt.Sprintf("%d uur", TotalDeclaredHours(draft.Projects)))
	if draft.Company.ApplicantType == models.ApplicantOnderneming && draft.HoursCosts.EstimatedCosts != nil {
		r.field("Geschatte kosten", FormatEUR(*draft.HoursCosts.EstimatedCosts))
	}
	r.spacer()

	r.heading("4. Verklaring")
	r.paragraph(attestation)
	r.spacer()
	r.field("Datum", FormatDutchDay(now))
	r.spacer()
	r.field("Naam", orPlaceholder(draft.Company.ContactName))

	return Document{Instructions: r.instrs, Pages: r.pages}
}

func formatDuration(d models.ProjectDuration) string {
	if d.StartDate == "" && d.EndDate == "" {
		return Placeholder
	}
	return FormatDutchDate(d.StartDate) + " tot " + FormatDutchDate(d.EndDate)
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// renderer accumulates instructions while tracking the vertical cursor, so
// page breaks land in the sequence exactly where the encoder needs them.
type renderer struct {
	instrs []Instruction
	y      float64
	pages  int
}

func (r *renderer) emit(op Op, text string, height float64) {
	r.instrs = append(r.instrs, Instruction{Op: op, Text: text})
	r.y += height
}

func (r *renderer) title(text string) {
	r.emit(OpTitle, text, lineHeight*2)
}

func (r *renderer) heading(text string) {
	r.emit(OpHeading, text, lineHeight*1.5)
}

func (r *renderer) subheading(text string) {
	r.emit(OpSubheading, text, lineHeight)
}

func (r *renderer) field(label, value string) {
	r.emit(OpField, label+": "+value, lineHeight)
}

// paragraph wraps the text to the content width and emits one OpText per
// line, breaking to a new page when a line would land below the bottom
// margin so no text is silently clipped.
func (r *renderer) paragraph(text string) {
	for _, line := range wrapText(text, maxLineChars) {
		r.breakIfNeeded(lineReserve)
		r.emit(OpText, line, lineHeight)
	}
}

func (r *renderer) spacer() {
	r.emit(OpSpacer, "", lineHeight)
}

// breakIfNeeded inserts a page break and resets the cursor when fewer than
// reserve millimeters remain above the page bottom.
func (r *renderer) breakIfNeeded(reserve float64) {
	if r.y > pageHeight-reserve {
		r.instrs = append(r.instrs, Instruction{Op: OpPageBreak})
		r.y = topMargin
		r.pages++
	}
}

// wrapText greedily wraps text at word boundaries to at most width
// characters per line, preserving explicit newlines. Words longer than the
// width are hard-split.
func wrapText(text string, width int) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		line := ""
		for _, word := range words {
			for len(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				out = append(out, word[:width])
				word = word[width:]
			}
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
