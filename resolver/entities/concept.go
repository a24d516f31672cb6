package entities

// NotAvailable is the sentinel used wherever a source does not provide a value.
const NotAvailable = "--"

// Concept is a single drug-terminology concept collected during a resolution run.
// ID is the RxCUI and acts as the primary key within one run.
type Concept struct {
	ID       string `json:"rxcui"`
	Name     string `json:"name"`
	TermType string `json:"termType"`
	Synonym  string `json:"synonym"`
}

// NDCRecord is one canonical output row, regardless of which source produced it.
// Records sourced from the openFDA fallback carry the NotAvailable sentinel in
// ConceptID and TermType because no terminology concept exists for them.
type NDCRecord struct {
	ConceptID    string `json:"rxcui"`
	TermType     string `json:"termType"`
	Name         string `json:"name"`
	NDC          string `json:"ndc"`
	NDC9         string `json:"ndc9"`
	NDC10        string `json:"ndc10"`
	SplID        string `json:"splId"`
	Description  string `json:"description"`
	Manufacturer string `json:"manufacturer"`
	Route        string `json:"route"`
	Strength     string `json:"strength"`
}
