package services

import "strings"

// ExportFilename derives the download filename from the company name:
// lower-cased, whitespace collapsed to single hyphens. An empty company name
// falls back to a bare "wbso-aanvraag" stem.
func ExportFilename(companyName, ext string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(companyName)), "-")
	if slug == "" {
		return "wbso-aanvraag." + ext
	}
	return "wbso-aanvraag-" + slug + "." + ext
}
