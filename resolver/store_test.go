package resolver

import (
	"testing"

	"github.com/pharmanav/ndcfinder/resolver/entities"
)

func TestConceptStoreDeduplicates(t *testing.T) {
	store := NewConceptStore()

	first := entities.Concept{ID: "123", Name: "metoprolol tartrate 50 MG", TermType: "SCD", Synonym: "--"}
	duplicate := entities.Concept{ID: "123", Name: "a different name", TermType: "SBD", Synonym: "--"}

	if !store.Add(first) {
		t.Fatal("Expected first Add to return true")
	}
	if store.Add(duplicate) {
		t.Error("Expected duplicate Add to return false")
	}

	if store.Len() != 1 {
		t.Errorf("Expected 1 concept, got %d", store.Len())
	}

	// First-seen wins
	all := store.All()
	if all[0].TermType != "SCD" {
		t.Errorf("Expected first-seen term type SCD, got %s", all[0].TermType)
	}
}

func TestConceptStoreLenMatchesDistinctIDs(t *testing.T) {
	store := NewConceptStore()

	ids := []string{"1", "2", "3", "2", "1", "4"}
	for _, id := range ids {
		store.Add(entities.Concept{ID: id})
	}

	if store.Len() != 4 {
		t.Errorf("Expected 4 distinct concepts, got %d", store.Len())
	}
}

func TestConceptStoreHas(t *testing.T) {
	store := NewConceptStore()

	if store.Has("99") {
		t.Error("Expected Has to be false on empty store")
	}

	store.Add(entities.Concept{ID: "99"})
	if !store.Has("99") {
		t.Error("Expected Has to be true after Add")
	}
}

func TestConceptStorePreservesInsertionOrder(t *testing.T) {
	store := NewConceptStore()

	for _, id := range []string{"c", "a", "b"} {
		store.Add(entities.Concept{ID: id})
	}

	all := store.All()
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("Expected position %d to be %s, got %s", i, id, all[i].ID)
		}
	}
}

func TestConceptStoreEligible(t *testing.T) {
	store := NewConceptStore()
	store.Add(entities.Concept{ID: "1", TermType: "IN"})
	store.Add(entities.Concept{ID: "2", TermType: "SCD"})
	store.Add(entities.Concept{ID: "3", TermType: "MIN"})
	store.Add(entities.Concept{ID: "4", TermType: "SBD"})

	eligible := store.Eligible(map[string]struct{}{"IN": {}, "MIN": {}})

	if len(eligible) != 2 {
		t.Fatalf("Expected 2 eligible concepts, got %d", len(eligible))
	}
	if eligible[0].ID != "2" || eligible[1].ID != "4" {
		t.Errorf("Expected eligible concepts [2 4], got [%s %s]", eligible[0].ID, eligible[1].ID)
	}
}
