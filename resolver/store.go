package resolver

import "github.com/pharmanav/ndcfinder/resolver/entities"

// ConceptStore is an insertion-ordered, id-deduplicated collection of
// concepts. It is write-once within a resolution run; there is no removal.
type ConceptStore struct {
	concepts []entities.Concept
	seen     map[string]struct{}
}

// NewConceptStore creates an empty store.
func NewConceptStore() *ConceptStore {
	return &ConceptStore{
		seen: make(map[string]struct{}),
	}
}

// Has reports whether a concept with the given id is already present.
func (s *ConceptStore) Has(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// Add inserts the concept unless its id is already present. First-seen wins;
// a duplicate is a no-op and returns false.
func (s *ConceptStore) Add(c entities.Concept) bool {
	if s.Has(c.ID) {
		return false
	}
	s.seen[c.ID] = struct{}{}
	s.concepts = append(s.concepts, c)
	return true
}

// Len returns the number of distinct concepts added.
func (s *ConceptStore) Len() int {
	return len(s.concepts)
}

// All returns the concepts in insertion order.
func (s *ConceptStore) All() []entities.Concept {
	return s.concepts
}

// Eligible returns the concepts whose term type is not in excluded,
// preserving insertion order.
func (s *ConceptStore) Eligible(excluded map[string]struct{}) []entities.Concept {
	var eligible []entities.Concept
	for _, c := range s.concepts {
		if _, skip := excluded[c.TermType]; skip {
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible
}
