package resolver

import (
	"errors"
	"testing"

	"github.com/pharmanav/ndcfinder/resolver/entities"
)

func TestResolveDrugNoMatches(t *testing.T) {
	terminology := newFakeTerminology()
	directory := newFakeDirectory()

	records, err := New(terminology, directory).ResolveDrug("notadrug")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty result, got %d records", len(records))
	}
	if directory.calls != 0 {
		t.Errorf("Expected no fallback call, got %d", directory.calls)
	}
	if terminology.calls["RelatedConcepts"] != 0 {
		t.Errorf("Expected no related-concepts calls, got %d", terminology.calls["RelatedConcepts"])
	}
}

func TestResolveDrugEndToEnd(t *testing.T) {
	terminology := newFakeTerminology()
	terminology.rxcuis["metoprolol"] = []string{"6918"}
	terminology.related["6918"] = relatedWith(map[string][]entities.ConceptProperty{
		"SCD": {{Rxcui: "866924", Name: "metoprolol tartrate 50 MG Oral Tablet"}},
		"SBD": {{Rxcui: "866926", Name: "metoprolol tartrate 50 MG Oral Tablet [Lopressor]"}},
	})
	terminology.ndcProps["866924"] = propsWith("00093073301")
	terminology.ndcProps["866926"] = propsWith("00078042105")
	terminology.termInfo["866924"] = infoWith("metoprolol tartrate")
	terminology.termInfo["866926"] = infoWith("metoprolol tartrate")

	directory := newFakeDirectory()
	res := New(terminology, directory)

	var progressCalls [][2]int
	res.SetProgress(func(done, total int) {
		progressCalls = append(progressCalls, [2]int{done, total})
	})

	records, err := res.ResolveDrug("metoprolol")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	for _, rec := range records {
		if rec.ConceptID == entities.NotAvailable {
			t.Errorf("Expected non-sentinel concept id, got %s", rec.ConceptID)
		}
	}

	if directory.calls != 0 {
		t.Errorf("Expected no fallback call on the primary path, got %d", directory.calls)
	}

	if len(progressCalls) != 2 {
		t.Fatalf("Expected 2 progress reports, got %d", len(progressCalls))
	}
	if progressCalls[1] != [2]int{2, 2} {
		t.Errorf("Expected final progress 2/2, got %v", progressCalls[1])
	}
}

func TestResolveDrugFallbackWhenNoConcepts(t *testing.T) {
	terminology := newFakeTerminology()
	terminology.rxcuis["obscurol"] = []string{"424242"}
	// no related concepts configured: every group comes back empty

	directory := newFakeDirectory()
	directory.products["obscurol"] = []entities.Product{
		productWith("obscurol", "Obscura", "1111-2222-33"),
	}

	records, err := New(terminology, directory).ResolveDrug("obscurol")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 fallback record, got %d", len(records))
	}

	if records[0].ConceptID != entities.NotAvailable {
		t.Errorf("Expected sentinel concept id, got %s", records[0].ConceptID)
	}
	if terminology.calls["NDCProperties"] != 0 {
		t.Errorf("Expected no primary NDC-properties calls, got %d", terminology.calls["NDCProperties"])
	}
	if directory.calls != 1 {
		t.Errorf("Expected exactly one fallback call, got %d", directory.calls)
	}
}

func TestResolveDrugFallbackUpstreamErrorSwallowed(t *testing.T) {
	terminology := newFakeTerminology()
	terminology.rxcuis["obscurol"] = []string{"424242"}

	directory := newFakeDirectory()
	directory.errs["obscurol"] = &UpstreamError{API: apiFDA, URL: "http://x", Err: errors.New("connection refused")}

	records, err := New(terminology, directory).ResolveDrug("obscurol")
	if err != nil {
		t.Fatalf("Expected swallowed upstream error, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected zero records, got %d", len(records))
	}
}

func TestResolveDrugFallbackOtherErrorPropagates(t *testing.T) {
	terminology := newFakeTerminology()
	terminology.rxcuis["obscurol"] = []string{"424242"}

	directory := newFakeDirectory()
	directory.errs["obscurol"] = errors.New("programming error")

	_, err := New(terminology, directory).ResolveDrug("obscurol")
	if err == nil {
		t.Fatal("Expected non-upstream error to propagate")
	}
}

func TestResolveDrugPrimaryErrorPropagates(t *testing.T) {
	terminology := newFakeTerminology()
	terminology.rxcuis["metoprolol"] = []string{"6918"}
	terminology.related["6918"] = relatedWith(map[string][]entities.ConceptProperty{
		"SCD": {{Rxcui: "866924", Name: "metoprolol tartrate 50 MG Oral Tablet"}},
	})
	terminology.propsErr = &UpstreamError{API: apiRxNav, URL: "http://x", Err: errors.New("boom")}

	_, err := New(terminology, newFakeDirectory()).ResolveDrug("metoprolol")
	if err == nil {
		t.Fatal("Expected primary-path upstream error to propagate")
	}
}

func TestResolveDrugDeduplicatesAcrossIdentifiers(t *testing.T) {
	terminology := newFakeTerminology()
	terminology.rxcuis["metoprolol"] = []string{"6918", "6919"}
	shared := relatedWith(map[string][]entities.ConceptProperty{
		"SCD": {{Rxcui: "866924", Name: "metoprolol tartrate 50 MG Oral Tablet"}},
	})
	terminology.related["6918"] = shared
	terminology.related["6919"] = shared
	terminology.ndcProps["866924"] = propsWith("00093073301")
	terminology.termInfo["866924"] = infoWith("metoprolol tartrate")

	records, err := New(terminology, newFakeDirectory()).ResolveDrug("metoprolol")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected concept visited once after dedup, got %d records", len(records))
	}
}
