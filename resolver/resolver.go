// Package resolver turns a drug name or ATC class name into National Drug
// Code records by traversing the RxNav terminology APIs, with the openFDA
// NDC Directory as fallback when the terminology graph yields no dispensable
// concepts.
package resolver

import (
	"errors"
	"fmt"

	"github.com/pharmanav/ndcfinder/interfaces"
	"github.com/pharmanav/ndcfinder/logging"
	"github.com/pharmanav/ndcfinder/resolver/entities"
)

// classExcludedTermTypes are the term types that never carry NDCs directly:
// ingredients and the minimal-concept entries added for class members.
var classExcludedTermTypes = map[string]struct{}{
	"IN":  {},
	"MIN": {},
}

// Compile-time check that Resolver implements the Resolver interface.
var _ interfaces.Resolver = (*Resolver)(nil)

// Resolver runs both resolution pipelines. It is stateless across calls;
// every call builds its own ConceptStore, so one Resolver may serve
// concurrent requests as long as its clients do.
type Resolver struct {
	terminology interfaces.Terminology
	products    interfaces.ProductDirectory
	progress    func(done, total int)
}

// New creates a resolver over the given terminology and product sources.
func New(terminology interfaces.Terminology, products interfaces.ProductDirectory) *Resolver {
	return &Resolver{
		terminology: terminology,
		products:    products,
	}
}

// SetProgress installs a callback invoked after each concept during the
// primary NDC fetch. A nil callback keeps the resolver silent.
func (r *Resolver) SetProgress(fn func(done, total int)) {
	r.progress = fn
}

func (r *Resolver) reportProgress(done, total int) {
	if r.progress != nil {
		r.progress(done, total)
	}
}

// collectRelated adds every concept of every non-empty related-concept group
// to the store, tagged with the group term type. It reports whether any group
// carried concepts.
func collectRelated(store *ConceptStore, related *entities.RelatedConceptsResult) bool {
	found := false
	for _, group := range related.RelatedGroup.ConceptGroup {
		if len(group.ConceptProperties) == 0 {
			continue
		}
		found = true
		for _, prop := range group.ConceptProperties {
			synonym := prop.Synonym
			if synonym == "" {
				synonym = entities.NotAvailable
			}
			store.Add(entities.Concept{
				ID:       prop.Rxcui,
				Name:     prop.Name,
				TermType: group.TTY,
				Synonym:  synonym,
			})
		}
	}
	return found
}

// fetchNDCRecords visits every concept in order, fetching its NDC properties
// and RxTerms detail, and emits one record per NDC property entry. Concepts
// whose responses lack the expected lists contribute zero records.
func (r *Resolver) fetchNDCRecords(concepts []entities.Concept) ([]entities.NDCRecord, error) {
	var records []entities.NDCRecord

	for i, c := range concepts {
		props, err := r.terminology.NDCProperties(c.ID)
		if err != nil {
			return nil, fmt.Errorf("fetching NDC properties for %s: %w", c.ID, err)
		}

		info, err := r.terminology.TermInfo(c.ID)
		if err != nil {
			return nil, fmt.Errorf("fetching term detail for %s: %w", c.ID, err)
		}

		records = append(records, primaryRecords(c, props, info)...)
		r.reportProgress(i+1, len(concepts))
	}

	return records, nil
}

// fallbackByName queries the product directory by name. Upstream failures are
// tolerated and yield zero results; any other error kind propagates.
func (r *Resolver) fallbackByName(name string) ([]entities.NDCRecord, error) {
	products, err := r.products.SearchByGenericName(name)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			logging.Debug("Fallback lookup yielded no results", "name", name, "error", err)
			return nil, nil
		}
		return nil, err
	}

	var records []entities.NDCRecord
	for _, product := range products {
		records = append(records, fallbackRecords(product)...)
	}

	return records, nil
}
