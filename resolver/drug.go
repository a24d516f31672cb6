package resolver

import (
	"fmt"

	"github.com/pharmanav/ndcfinder/logging"
	"github.com/pharmanav/ndcfinder/resolver/entities"
)

// ResolveDrug resolves a generic or brand drug name to NDC records.
//
// The name is searched in the terminology source first; every matching RxCUI
// contributes its related dispensable concepts, deduplicated by RxCUI. When
// at least one concept was found, NDC records come from the terminology
// source. When the name matched but no related concepts exist, the openFDA
// directory is searched directly instead. A name with no terminology match
// returns an empty result without touching the fallback source.
func (r *Resolver) ResolveDrug(drugName string) ([]entities.NDCRecord, error) {
	rxcuis, err := r.terminology.FindRxcuis(drugName)
	if err != nil {
		return nil, fmt.Errorf("searching identifiers for %q: %w", drugName, err)
	}
	if len(rxcuis) == 0 {
		logging.Info("No identifiers found for drug name", "name", drugName)
		return nil, nil
	}

	store := NewConceptStore()
	for _, rxcui := range rxcuis {
		related, err := r.terminology.RelatedConcepts(rxcui)
		if err != nil {
			return nil, fmt.Errorf("fetching related concepts for %s: %w", rxcui, err)
		}
		collectRelated(store, related)
	}

	if store.Len() > 0 {
		logging.Info("Resolving NDCs from terminology concepts", "name", drugName, "concepts", store.Len())
		return r.fetchNDCRecords(store.All())
	}

	logging.Info("No related concepts found, falling back to product directory", "name", drugName)
	return r.fallbackByName(drugName)
}
