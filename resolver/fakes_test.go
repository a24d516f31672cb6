package resolver

import "github.com/pharmanav/ndcfinder/resolver/entities"

// fakeTerminology is a scriptable Terminology implementation for pipeline tests.
type fakeTerminology struct {
	rxcuis    map[string][]string
	related   map[string]*entities.RelatedConceptsResult
	ndcProps  map[string]*entities.NDCPropertiesResult
	termInfo  map[string]*entities.RxTermsResult
	classes   map[string][]entities.RxClassMinConcept
	members   map[string][]entities.DrugMember
	propsErr  error
	calls     map[string]int
	relatedTo []string
}

func newFakeTerminology() *fakeTerminology {
	return &fakeTerminology{
		rxcuis:   make(map[string][]string),
		related:  make(map[string]*entities.RelatedConceptsResult),
		ndcProps: make(map[string]*entities.NDCPropertiesResult),
		termInfo: make(map[string]*entities.RxTermsResult),
		classes:  make(map[string][]entities.RxClassMinConcept),
		members:  make(map[string][]entities.DrugMember),
		calls:    make(map[string]int),
	}
}

func (f *fakeTerminology) FindRxcuis(name string) ([]string, error) {
	f.calls["FindRxcuis"]++
	return f.rxcuis[name], nil
}

func (f *fakeTerminology) RelatedConcepts(rxcui string) (*entities.RelatedConceptsResult, error) {
	f.calls["RelatedConcepts"]++
	f.relatedTo = append(f.relatedTo, rxcui)
	if r, ok := f.related[rxcui]; ok {
		return r, nil
	}
	return &entities.RelatedConceptsResult{}, nil
}

func (f *fakeTerminology) NDCProperties(rxcui string) (*entities.NDCPropertiesResult, error) {
	f.calls["NDCProperties"]++
	if f.propsErr != nil {
		return nil, f.propsErr
	}
	if r, ok := f.ndcProps[rxcui]; ok {
		return r, nil
	}
	return &entities.NDCPropertiesResult{}, nil
}

func (f *fakeTerminology) TermInfo(rxcui string) (*entities.RxTermsResult, error) {
	f.calls["TermInfo"]++
	if r, ok := f.termInfo[rxcui]; ok {
		return r, nil
	}
	return &entities.RxTermsResult{}, nil
}

func (f *fakeTerminology) ClassesByName(className string) ([]entities.RxClassMinConcept, error) {
	f.calls["ClassesByName"]++
	return f.classes[className], nil
}

func (f *fakeTerminology) ClassMembers(classID string) ([]entities.DrugMember, error) {
	f.calls["ClassMembers"]++
	return f.members[classID], nil
}

func (f *fakeTerminology) Version() (string, error) {
	f.calls["Version"]++
	return "test-version", nil
}

// fakeDirectory is a scriptable ProductDirectory implementation.
type fakeDirectory struct {
	products map[string][]entities.Product
	errs     map[string]error
	calls    int
	queries  []string
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		products: make(map[string][]entities.Product),
		errs:     make(map[string]error),
	}
}

func (f *fakeDirectory) SearchByGenericName(name string) ([]entities.Product, error) {
	f.calls++
	f.queries = append(f.queries, name)
	if err := f.errs[name]; err != nil {
		return nil, err
	}
	return f.products[name], nil
}

// relatedWith builds a related-concepts result with one concept per group.
func relatedWith(groups map[string][]entities.ConceptProperty) *entities.RelatedConceptsResult {
	result := &entities.RelatedConceptsResult{}
	for tty, props := range groups {
		result.RelatedGroup.ConceptGroup = append(result.RelatedGroup.ConceptGroup, entities.ConceptGroup{
			TTY:               tty,
			ConceptProperties: props,
		})
	}
	return result
}

// propsWith builds an NDC-properties result with a single property entry.
func propsWith(ndc string) *entities.NDCPropertiesResult {
	return &entities.NDCPropertiesResult{
		NDCPropertyList: &entities.NDCPropertyGroup{
			NDCProperty: []entities.NDCProperty{
				{NdcItem: ndc, NDC9: "0000-0000", NDC10: "0000-0000-00"},
			},
		},
	}
}

// infoWith builds an RxTerms result with the given generic name.
func infoWith(name string) *entities.RxTermsResult {
	return &entities.RxTermsResult{
		RxtermsProperties: &entities.RxTermsProperties{
			FullGenericName: name,
			Route:           "Oral",
			Strength:        "50 mg",
		},
	}
}

// productWith builds a single-package openFDA listing.
func productWith(generic, brand, packageNDC string) entities.Product {
	return entities.Product{
		ProductNDC:  "1111-2222",
		GenericName: generic,
		BrandName:   brand,
		LabelerName: "Acme Pharma",
		Route:       []string{"ORAL"},
		Packaging: []entities.ProductPackaging{
			{PackageNDC: packageNDC, Description: "30 TABLET in 1 BOTTLE"},
		},
	}
}
