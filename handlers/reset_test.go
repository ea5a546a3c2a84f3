package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestHandleReset_WithConfirmation(t *testing.T) {
	app, s := newTestStore(t)
	seedSampleDraft(t, s)

	handler := HandleReset(s)

	form := url.Values{}
	form.Set("confirm", "true")

	req := httptest.NewRequest(http.MethodPost, "/aanvraag/reset",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/aanvraag" {
		t.Errorf("expected redirect to step 1, got %q", loc)
	}

	draft := s.Load()
	if draft.Company.CompanyName != "" || len(draft.Projects) != 0 {
		t.Error("expected draft to be back at defaults after reset")
	}
}

func TestHandleReset_MissingConfirmation(t *testing.T) {
	app, s := newTestStore(t)
	seedSampleDraft(t, s)

	handler := HandleReset(s)

	req := httptest.NewRequest(http.MethodPost, "/aanvraag/reset",
		strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 without confirmation, got %d", rec.Code)
	}
	if got := s.Load().Company.CompanyName; got != "Acme BV" {
		t.Error("draft must survive an unconfirmed reset")
	}
}
