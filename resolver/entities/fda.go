package entities

// Response shapes for the openFDA NDC Directory (https://api.fda.gov/drug/ndc.json).

// ProductSearchResult is the body of a /drug/ndc.json search.
type ProductSearchResult struct {
	Results []Product `json:"results"`
}

// Product is one NDC Directory listing.
type Product struct {
	ProductNDC        string             `json:"product_ndc"`
	GenericName       string             `json:"generic_name"`
	BrandName         string             `json:"brand_name"`
	LabelerName       string             `json:"labeler_name"`
	DosageForm        string             `json:"dosage_form"`
	Route             []string           `json:"route"`
	ActiveIngredients []ActiveIngredient `json:"active_ingredients"`
	Packaging         []ProductPackaging `json:"packaging"`
	OpenFDA           OpenFDA            `json:"openfda"`
}

// ActiveIngredient is one active ingredient with its strength text.
type ActiveIngredient struct {
	Name     string `json:"name"`
	Strength string `json:"strength"`
}

// ProductPackaging is one package-level entry within a product listing.
type ProductPackaging struct {
	PackageNDC  string `json:"package_ndc"`
	Description string `json:"description"`
	Sample      bool   `json:"sample"`
}

// OpenFDA carries the cross-reference identifiers openFDA attaches to a listing.
type OpenFDA struct {
	SplSetID []string `json:"spl_set_id"`
	Rxcui    []string `json:"rxcui"`
	UNII     []string `json:"unii"`
}
