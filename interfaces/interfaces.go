// Package interfaces defines the core abstractions of the NDC finder
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"time"

	"github.com/pharmanav/ndcfinder/resolver/entities"
)

// UpstreamStatus is a snapshot of the last probe of the terminology service.
type UpstreamStatus struct {
	RxNavVersion string
	Healthy      bool
	Error        string
	LastChecked  time.Time
}

// LookupStats aggregates the lookups served since process start.
type LookupStats struct {
	DrugLookups   int64
	ClassLookups  int64
	RecordsServed int64
}

// Terminology defines the contract for the primary terminology source
// (the RxNorm, RxTerms and RxClass endpoints of RxNav).
type Terminology interface {
	// FindRxcuis returns the RxCUIs matching a drug name, possibly none.
	FindRxcuis(name string) ([]string, error)

	// RelatedConcepts returns the related concepts of an RxCUI restricted to
	// the dispensable term types (SCD, SBD, GPCK, BPCK).
	RelatedConcepts(rxcui string) (*entities.RelatedConceptsResult, error)

	// NDCProperties returns the NDC property entries of a concept.
	NDCProperties(rxcui string) (*entities.NDCPropertiesResult, error)

	// TermInfo returns the RxTerms detail record of a concept.
	TermInfo(rxcui string) (*entities.RxTermsResult, error)

	// ClassesByName returns the ATC classes (levels 1-4) matching a class name.
	ClassesByName(className string) ([]entities.RxClassMinConcept, error)

	// ClassMembers returns the member drugs of an ATC class.
	ClassMembers(classID string) ([]entities.DrugMember, error)

	// Version returns the RxNorm data version, used for health probing.
	Version() (string, error)
}

// ProductDirectory defines the contract for the secondary product listing
// source (the openFDA NDC Directory), queried on the fallback path only.
type ProductDirectory interface {
	// SearchByGenericName returns the NDC Directory listings for a generic
	// or brand name, possibly none.
	SearchByGenericName(name string) ([]entities.Product, error)
}

// Resolver defines the contract shared by both resolution pipelines.
type Resolver interface {
	ResolveDrug(drugName string) ([]entities.NDCRecord, error)
	ResolveClass(atcClassName string) ([]entities.NDCRecord, error)
}

// StatusStore defines the contract for the shared status container consumed
// by the health endpoint and fed by the upstream monitor.
type StatusStore interface {
	GetUpstreamStatus() UpstreamStatus
	SetUpstreamStatus(status UpstreamStatus)
	RecordLookup(kind string, recordCount int)
	GetLookupStats() LookupStats
	GetServerStartTime() time.Time
}

// Monitor defines the contract for background upstream health monitoring.
type Monitor interface {
	Start() error
	Stop()
}
