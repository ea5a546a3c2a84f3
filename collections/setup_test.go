package collections_test

import (
	"testing"

	"wbsoaanvraag/collections"
	"wbsoaanvraag/testhelpers"
)

func TestSetup_CreatesDraftsCollection(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("drafts")
	if err != nil {
		t.Fatalf("expected drafts collection to exist: %v", err)
	}

	for _, field := range []string{"key", "data", "created", "updated"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("expected field %q on drafts collection", field)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// NewTestApp already ran Setup once; a second run must not fail or
	// duplicate the collection.
	collections.Setup(app)

	col, err := app.FindCollectionByNameOrId("drafts")
	if err != nil {
		t.Fatalf("drafts collection missing after second setup: %v", err)
	}
	if col == nil {
		t.Fatal("expected drafts collection")
	}
}
