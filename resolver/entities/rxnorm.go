package entities

// Response shapes for the RxNav REST API (https://rxnav.nlm.nih.gov/REST).
// Only the fields the resolver reads are declared; optional nested lists are
// pointers so that absence can be distinguished from emptiness.

// RxcuiSearchResult is the body of /rxcui.json?name=...
type RxcuiSearchResult struct {
	IDGroup struct {
		Name     string   `json:"name"`
		RxnormID []string `json:"rxnormId"`
	} `json:"idGroup"`
}

// RelatedConceptsResult is the body of /rxcui/{rxcui}/related.json?tty=...
type RelatedConceptsResult struct {
	RelatedGroup struct {
		Rxcui        string         `json:"rxcui"`
		ConceptGroup []ConceptGroup `json:"conceptGroup"`
	} `json:"relatedGroup"`
}

// ConceptGroup is one term-type bucket inside a related-concepts response.
type ConceptGroup struct {
	TTY               string            `json:"tty"`
	ConceptProperties []ConceptProperty `json:"conceptProperties"`
}

// ConceptProperty is a single related concept.
type ConceptProperty struct {
	Rxcui    string `json:"rxcui"`
	Name     string `json:"name"`
	Synonym  string `json:"synonym"`
	TTY      string `json:"tty"`
	Language string `json:"language"`
	Suppress string `json:"suppress"`
}

// NDCPropertiesResult is the body of /ndcproperties.json?id={rxcui}.
// NDCPropertyList is nil when the concept has no dispensable product.
type NDCPropertiesResult struct {
	NDCPropertyList *NDCPropertyGroup `json:"ndcPropertyList"`
}

// NDCPropertyGroup wraps the property entries of one concept.
type NDCPropertyGroup struct {
	NDCProperty []NDCProperty `json:"ndcProperty"`
}

// NDCProperty describes one packaged product attached to a concept.
type NDCProperty struct {
	NdcItem             string               `json:"ndcItem"`
	NDC9                string               `json:"ndc9"`
	NDC10               string               `json:"ndc10"`
	Rxcui               string               `json:"rxcui"`
	SplSetIDItem        string               `json:"splSetIdItem"`
	PackagingList       *PackagingList       `json:"packagingList"`
	PropertyConceptList *PropertyConceptList `json:"propertyConceptList"`
}

// PackagingList holds the human-readable packaging descriptions.
type PackagingList struct {
	Packaging []string `json:"packaging"`
}

// PropertyConceptList holds named property/value pairs such as LABELER.
type PropertyConceptList struct {
	PropertyConcept []PropertyConcept `json:"propertyConcept"`
}

// PropertyConcept is one named property within an NDC property entry.
type PropertyConcept struct {
	PropCategory string `json:"propCategory"`
	PropName     string `json:"propName"`
	PropValue    string `json:"propValue"`
}

// RxTermsResult is the body of /RxTerms/rxcui/{rxcui}/allinfo.json.
// RxtermsProperties is nil when RxTerms has no entry for the concept.
type RxTermsResult struct {
	RxtermsProperties *RxTermsProperties `json:"rxtermsProperties"`
}

// RxTermsProperties is the RxTerms drug-detail record.
type RxTermsProperties struct {
	BrandName       string `json:"brandName"`
	DisplayName     string `json:"displayName"`
	FullGenericName string `json:"fullGenericName"`
	FullName        string `json:"fullName"`
	Route           string `json:"route"`
	RxtermsDoseForm string `json:"rxtermsDoseForm"`
	Strength        string `json:"strength"`
	Rxcui           string `json:"rxcui"`
}

// VersionResult is the body of /version.json, used by the upstream monitor.
type VersionResult struct {
	Version    string `json:"version"`
	APIVersion string `json:"apiVersion"`
}
