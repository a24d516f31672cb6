package resolver

import (
	"fmt"
	"strings"

	"github.com/pharmanav/ndcfinder/resolver/entities"
)

// labelerPropName is the property-concept name carrying the labeler
// (manufacturer) within an NDC property entry.
const labelerPropName = "LABELER"

// primaryRecords maps one concept plus its NDC-properties and RxTerms
// responses to canonical records, one per NDC property entry. A concept whose
// responses lack the property list or the RxTerms detail contributes zero
// records.
func primaryRecords(c entities.Concept, props *entities.NDCPropertiesResult, info *entities.RxTermsResult) []entities.NDCRecord {
	if props == nil || props.NDCPropertyList == nil || info == nil || info.RxtermsProperties == nil {
		return nil
	}

	detail := info.RxtermsProperties

	var records []entities.NDCRecord
	for _, prop := range props.NDCPropertyList.NDCProperty {
		records = append(records, entities.NDCRecord{
			ConceptID:    c.ID,
			TermType:     c.TermType,
			Name:         detail.FullGenericName,
			NDC:          prop.NdcItem,
			NDC9:         prop.NDC9,
			NDC10:        prop.NDC10,
			SplID:        prop.SplSetIDItem,
			Description:  packagingDescription(prop.PackagingList),
			Manufacturer: labelerName(prop.PropertyConceptList),
			Route:        detail.Route,
			Strength:     detail.Strength,
		})
	}

	return records
}

// packagingDescription returns the first packaging entry, or the sentinel
// when the source carries no packaging list.
func packagingDescription(list *entities.PackagingList) string {
	if list == nil || len(list.Packaging) == 0 {
		return entities.NotAvailable
	}
	return list.Packaging[0]
}

// labelerName returns the value of the first property concept named LABELER.
// Absence yields an empty value, not an error.
func labelerName(list *entities.PropertyConceptList) string {
	if list == nil {
		return ""
	}
	for _, pc := range list.PropertyConcept {
		if pc.PropName == labelerPropName {
			return pc.PropValue
		}
	}
	return ""
}

// fallbackRecords maps one openFDA listing to canonical records, one per
// packaging entry. No terminology concept exists for these rows, so concept
// id and term type carry the sentinel.
func fallbackRecords(p entities.Product) []entities.NDCRecord {
	name := fmt.Sprintf("%s (%s)", p.GenericName, p.BrandName)

	route := ""
	if len(p.Route) > 0 {
		route = strings.ToLower(p.Route[0])
	}

	splID := ""
	if len(p.OpenFDA.SplSetID) > 0 {
		splID = p.OpenFDA.SplSetID[0]
	}

	strengths := make([]string, 0, len(p.ActiveIngredients))
	for _, ing := range p.ActiveIngredients {
		strengths = append(strengths, fmt.Sprintf("%s %s", ing.Name, ing.Strength))
	}
	strength := strings.Join(strengths, "; ")

	var records []entities.NDCRecord
	for _, pkg := range p.Packaging {
		description := pkg.Description
		if description == "" {
			description = entities.NotAvailable
		}

		records = append(records, entities.NDCRecord{
			ConceptID:    entities.NotAvailable,
			TermType:     entities.NotAvailable,
			Name:         name,
			NDC:          PackNDC11(pkg.PackageNDC),
			NDC9:         p.ProductNDC,
			NDC10:        pkg.PackageNDC,
			SplID:        splID,
			Description:  description,
			Manufacturer: p.LabelerName,
			Route:        route,
			Strength:     strength,
		})
	}

	return records
}

// PackNDC11 normalizes a hyphenated labeler-product-package code to the
// 11-digit NDC form by zero-padding the segments to widths 5, 4 and 2.
// A code without hyphens is returned unchanged: it is either already
// normalized or malformed, and the caller keeps the raw value either way.
func PackNDC11(code string) string {
	if !strings.Contains(code, "-") {
		return code
	}

	parts := strings.Split(code, "-")
	if len(parts) != 3 {
		return strings.Join(parts, "")
	}

	return padSegment(parts[0], 5) + padSegment(parts[1], 4) + padSegment(parts[2], 2)
}

// padSegment left-pads a numeric segment with zeros to the given width.
func padSegment(segment string, width int) string {
	for len(segment) < width {
		segment = "0" + segment
	}
	return segment
}
