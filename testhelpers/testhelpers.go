// Package testhelpers provides utilities for testing the application:
// a throwaway PocketBase instance and draft fixtures.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"wbsoaanvraag/collections"
	"wbsoaanvraag/models"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create the drafts
// table. The temporary directory is cleaned up automatically when the test
// finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// SampleCompany returns a fully populated company section.
func SampleCompany() models.CompanyData {
	return models.CompanyData{
		CompanyName:   "Acme BV",
		KvKNumber:     "12345678",
		ContactName:   "J. Jansen",
		ContactEmail:  "j@acme.nl",
		ApplicantType: models.ApplicantOnderneming,
	}
}

// SampleProject returns a fully populated, date-consistent project with the
// given id and declared hours, running March through June 2025.
func SampleProject(id string, hours int) models.Project {
	return models.Project{
		ID:    id,
		Title: "AI Yoga App",
		Description: models.ProjectDescription{
			WhatYouWillDo:  "Een app maken die yoga-houdingen corrigeert",
			WhatIsNew:      "Gebruik van AI voor real-time houdinganalyse",
			ProblemsSolved: "Nauwkeurige detectie bij weinig licht",
		},
		Activities:    "Ontwerpen van AI-model, testen van prototypes",
		DeclaredHours: hours,
		Duration: models.ProjectDuration{
			StartDate: "2025-03-01",
			EndDate:   "2025-06-30",
		},
		WorkType: models.WorkTechnicalDevelopment,
	}
}

// SampleDraft returns a draft with the sample company and one 200-hour
// project.
func SampleDraft() models.Draft {
	return models.Draft{
		Company:  SampleCompany(),
		Projects: []models.Project{SampleProject("1", 200)},
	}
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
