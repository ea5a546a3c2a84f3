package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"wbsoaanvraag/models"
	"wbsoaanvraag/store"
)

type contextKey string

const draftContextKey contextKey = "draft"

// DraftMiddleware loads the draft once per request and stashes it in the
// request context, so the step views all read the same snapshot.
func DraftMiddleware(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		draft := s.Load()
		ctx := context.WithValue(e.Request.Context(), draftContextKey, draft)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

// GetDraft returns the draft loaded by DraftMiddleware, or the default draft
// when the middleware did not run (tests, stray routes).
func GetDraft(r *http.Request) models.Draft {
	if draft, ok := r.Context().Value(draftContextKey).(models.Draft); ok {
		return draft
	}
	return models.DefaultDraft()
}
