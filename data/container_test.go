package data

import (
	"testing"
	"time"

	"github.com/pharmanav/ndcfinder/interfaces"
)

func TestStatusContainerUpstreamStatus(t *testing.T) {
	sc := NewStatusContainer()

	initial := sc.GetUpstreamStatus()
	if !initial.LastChecked.IsZero() {
		t.Error("Expected zero last-checked time before the first probe")
	}

	status := interfaces.UpstreamStatus{
		RxNavVersion: "07-Jul-2025",
		Healthy:      true,
		LastChecked:  time.Now(),
	}
	sc.SetUpstreamStatus(status)

	got := sc.GetUpstreamStatus()
	if got.RxNavVersion != "07-Jul-2025" || !got.Healthy {
		t.Errorf("Unexpected status after set: %+v", got)
	}
}

func TestStatusContainerLookupCounters(t *testing.T) {
	sc := NewStatusContainer()

	sc.RecordLookup("drug", 5)
	sc.RecordLookup("drug", 3)
	sc.RecordLookup("class", 10)

	stats := sc.GetLookupStats()
	if stats.DrugLookups != 2 {
		t.Errorf("Expected 2 drug lookups, got %d", stats.DrugLookups)
	}
	if stats.ClassLookups != 1 {
		t.Errorf("Expected 1 class lookup, got %d", stats.ClassLookups)
	}
	if stats.RecordsServed != 18 {
		t.Errorf("Expected 18 records served, got %d", stats.RecordsServed)
	}
}

func TestStatusContainerUnknownKind(t *testing.T) {
	sc := NewStatusContainer()

	sc.RecordLookup("bogus", 99)

	stats := sc.GetLookupStats()
	if stats.DrugLookups != 0 || stats.ClassLookups != 0 || stats.RecordsServed != 0 {
		t.Errorf("Expected unknown kind to be ignored, got %+v", stats)
	}
}

func TestStatusContainerStartTime(t *testing.T) {
	before := time.Now()
	sc := NewStatusContainer()
	after := time.Now()

	start := sc.GetServerStartTime()
	if start.Before(before) || start.After(after) {
		t.Errorf("Expected start time between %s and %s, got %s", before, after, start)
	}
}
