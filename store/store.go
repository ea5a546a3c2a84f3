// Package store owns the canonical application draft: default
// initialization, field-level merge updates and write-through persistence to
// the drafts collection.
package store

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wbsoaanvraag/models"
)

// StorageKey is the fixed, versioned key the draft record lives under. Bump
// the suffix on a breaking schema change so an older cached shape is left
// behind instead of colliding with the new one.
const StorageKey = "wbso_aanvraag_v1"

// Store wraps the app and funnels every draft mutation through named
// operations, each of which synchronously writes the full draft back.
type Store struct {
	app *pocketbase.PocketBase
}

func New(app *pocketbase.PocketBase) *Store {
	return &Store{app: app}
}

// Load returns the persisted draft merged over the defaults. A missing record
// or unparsable content is not an error: the condition is logged and the
// default draft is returned, so a corrupt cache can never block the user.
func (s *Store) Load() models.Draft {
	draft := models.DefaultDraft()

	record, err := s.app.FindFirstRecordByData("drafts", "key", StorageKey)
	if err != nil {
		return draft
	}

	raw := record.GetString("data")
	if raw == "" {
		return draft
	}

	// Unmarshaling over a prefilled default draft backfills any section or
	// field missing from an older persisted shape.
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		log.Printf("store: discarding unparsable draft under %q: %v", StorageKey, err)
		return models.DefaultDraft()
	}

	if draft.Projects == nil {
		draft.Projects = []models.Project{}
	}
	return draft
}

// UpdateCompany merges the patch over the existing company section and
// persists the draft. Nil patch fields leave the stored value unchanged.
func (s *Store) UpdateCompany(patch models.CompanyPatch) error {
	draft := s.Load()

	c := &draft.Company
	if patch.CompanyName != nil {
		c.CompanyName = *patch.CompanyName
	}
	if patch.KvKNumber != nil {
		c.KvKNumber = *patch.KvKNumber
	}
	if patch.ContactName != nil {
		c.ContactName = *patch.ContactName
	}
	if patch.ContactEmail != nil {
		c.ContactEmail = *patch.ContactEmail
	}
	if patch.ApplicantType != nil {
		c.ApplicantType = *patch.ApplicantType
	}

	return s.save(draft)
}

// UpdateProjects replaces the full ordered project list and persists the
// draft. The list is defensively copied so later mutation of the caller's
// slice cannot alias stored state.
func (s *Store) UpdateProjects(projects []models.Project) error {
	draft := s.Load()
	draft.Projects = models.CloneProjects(projects)
	return s.save(draft)
}

// UpdateHoursCosts merges the patch over the existing hours/costs section and
// persists the draft.
func (s *Store) UpdateHoursCosts(patch models.HoursCostsPatch) error {
	draft := s.Load()

	if patch.TotalHours != nil {
		draft.HoursCosts.TotalHours = *patch.TotalHours
	}
	if patch.EstimatedCosts != nil {
		draft.HoursCosts.EstimatedCosts = patch.EstimatedCosts
	}

	return s.save(draft)
}

// Reset deletes the persisted draft so the next Load returns pure defaults.
// The user confirmation gate belongs at the handler boundary, not here.
func (s *Store) Reset() error {
	record, err := s.app.FindFirstRecordByData("drafts", "key", StorageKey)
	if err != nil {
		// Nothing persisted, nothing to clear.
		return nil
	}
	if err := s.app.Delete(record); err != nil {
		return fmt.Errorf("delete draft record: %w", err)
	}
	return nil
}

// save serializes the draft and writes it through to the drafts record,
// creating the record on first save.
func (s *Store) save(draft models.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	record, err := s.app.FindFirstRecordByData("drafts", "key", StorageKey)
	if err != nil {
		col, err := s.app.FindCollectionByNameOrId("drafts")
		if err != nil {
			return fmt.Errorf("find drafts collection: %w", err)
		}
		record = core.NewRecord(col)
		record.Set("key", StorageKey)
	}

	record.Set("data", string(data))
	if err := s.app.Save(record); err != nil {
		return fmt.Errorf("save draft record: %w", err)
	}
	return nil
}
