package resolver

import (
	"fmt"

	"github.com/pharmanav/ndcfinder/logging"
	"github.com/pharmanav/ndcfinder/resolver/entities"
)

// ResolveClass resolves an ATC therapeutic class name to NDC records.
//
// Every matching class (levels 1-4) contributes its member drugs. Each new
// member enters the store under its own minimal-concept term type, followed
// by its related dispensable concepts tagged with their group term type.
// Only concepts outside the ingredient/minimal-concept types are eligible for
// the primary NDC fetch. When nothing is eligible, or no member ever produced
// a related-concept group, the member names are searched in the openFDA
// directory instead: class membership lists often return only
// ingredient-level concepts with no directly dispensable product.
func (r *Resolver) ResolveClass(atcClassName string) ([]entities.NDCRecord, error) {
	classes, err := r.terminology.ClassesByName(atcClassName)
	if err != nil {
		return nil, fmt.Errorf("searching ATC classes for %q: %w", atcClassName, err)
	}
	if len(classes) == 0 {
		logging.Info("No ATC classes found", "name", atcClassName)
		return nil, nil
	}

	store := NewConceptStore()
	foundConcepts := false

	for _, class := range classes {
		members, err := r.terminology.ClassMembers(class.ClassID)
		if err != nil {
			return nil, fmt.Errorf("fetching members of class %s: %w", class.ClassID, err)
		}

		for _, member := range members {
			if store.Has(member.MinConcept.Rxcui) {
				continue
			}

			store.Add(entities.Concept{
				ID:       member.MinConcept.Rxcui,
				Name:     member.MinConcept.Name,
				TermType: member.MinConcept.TTY,
				Synonym:  entities.NotAvailable,
			})

			related, err := r.terminology.RelatedConcepts(member.MinConcept.Rxcui)
			if err != nil {
				return nil, fmt.Errorf("fetching related concepts for member %s: %w", member.MinConcept.Rxcui, err)
			}
			if collectRelated(store, related) {
				foundConcepts = true
			}
		}
	}

	eligible := store.Eligible(classExcludedTermTypes)
	if len(eligible) > 0 && foundConcepts {
		logging.Info("Resolving NDCs from class concepts", "name", atcClassName, "concepts", len(eligible))
		return r.fetchNDCRecords(eligible)
	}

	logging.Info("No dispensable class concepts, falling back to product directory", "name", atcClassName)

	var records []entities.NDCRecord
	for _, class := range classes {
		members, err := r.terminology.ClassMembers(class.ClassID)
		if err != nil {
			return nil, fmt.Errorf("fetching members of class %s: %w", class.ClassID, err)
		}

		for _, member := range members {
			recs, err := r.fallbackByName(member.MinConcept.Name)
			if err != nil {
				return nil, err
			}
			records = append(records, recs...)
		}
	}

	return records, nil
}
