package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wbsoaanvraag/models"
	"wbsoaanvraag/store"
	"wbsoaanvraag/testhelpers"
)

const testProgramYear = 2025

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestStore creates a throwaway app with a store on top of it.
func newTestStore(t *testing.T) (*pocketbase.PocketBase, *store.Store) {
	t.Helper()

	app := testhelpers.NewTestApp(t)
	return app, store.New(app)
}

func testConfig() Config {
	// Pinned before the fixture projects start, so date rules are stable.
	return Config{
		ProgramYear: testProgramYear,
		Now: func() time.Time {
			return time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
		},
	}
}

// companyPatch turns a full company section into a patch setting every
// field.
func companyPatch(c models.CompanyData) models.CompanyPatch {
	return models.CompanyPatch{
		CompanyName:   &c.CompanyName,
		KvKNumber:     &c.KvKNumber,
		ContactName:   &c.ContactName,
		ContactEmail:  &c.ContactEmail,
		ApplicantType: &c.ApplicantType,
	}
}

// projectsForm encodes a project list the way the step 2 form posts it:
// every field name repeated once per project, in project order.
func projectsForm(projects ...models.Project) url.Values {
	form := url.Values{}
	for _, p := range projects {
		form.Add("id", p.ID)
		form.Add("titel", p.Title)
		form.Add("watGaJeDoen", p.Description.WhatYouWillDo)
		form.Add("watIsNieuw", p.Description.WhatIsNew)
		form.Add("welkeProblemenLosJeOp", p.Description.ProblemsSolved)
		form.Add("werkzaamheden", p.Activities)
		form.Add("soUren", strconv.Itoa(p.DeclaredHours))
		form.Add("startDatum", p.Duration.StartDate)
		form.Add("eindDatum", p.Duration.EndDate)
		form.Add("typeSOWerk", string(p.WorkType))
	}
	return form
}
