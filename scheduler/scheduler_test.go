package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/pharmanav/ndcfinder/data"
	"github.com/pharmanav/ndcfinder/resolver/entities"
)

// versionOnly stubs the terminology contract; the monitor only probes Version.
type versionOnly struct {
	version string
	err     error
	calls   int
}

func (v *versionOnly) FindRxcuis(string) ([]string, error) { return nil, nil }
func (v *versionOnly) RelatedConcepts(string) (*entities.RelatedConceptsResult, error) {
	return nil, nil
}
func (v *versionOnly) NDCProperties(string) (*entities.NDCPropertiesResult, error) {
	return nil, nil
}
func (v *versionOnly) TermInfo(string) (*entities.RxTermsResult, error) { return nil, nil }
func (v *versionOnly) ClassesByName(string) ([]entities.RxClassMinConcept, error) {
	return nil, nil
}
func (v *versionOnly) ClassMembers(string) ([]entities.DrugMember, error) { return nil, nil }

func (v *versionOnly) Version() (string, error) {
	v.calls++
	return v.version, v.err
}

func TestProbeRecordsHealthyStatus(t *testing.T) {
	status := data.NewStatusContainer()
	m := NewUpstreamMonitor(&versionOnly{version: "07-Jul-2025"}, status, time.Minute)

	m.probe()

	got := status.GetUpstreamStatus()
	if !got.Healthy {
		t.Error("Expected healthy status")
	}
	if got.RxNavVersion != "07-Jul-2025" {
		t.Errorf("Expected recorded version, got %s", got.RxNavVersion)
	}
	if got.LastChecked.IsZero() {
		t.Error("Expected last-checked timestamp to be set")
	}
}

func TestProbeRecordsFailure(t *testing.T) {
	status := data.NewStatusContainer()
	m := NewUpstreamMonitor(&versionOnly{err: errors.New("unexpected status 503")}, status, time.Minute)

	m.probe()

	got := status.GetUpstreamStatus()
	if got.Healthy {
		t.Error("Expected unhealthy status")
	}
	if got.Error == "" {
		t.Error("Expected error message to be recorded")
	}
}

func TestStartRunsInitialProbe(t *testing.T) {
	status := data.NewStatusContainer()
	stub := &versionOnly{version: "07-Jul-2025"}
	m := NewUpstreamMonitor(stub, status, time.Hour)

	if err := m.Start(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer m.Stop()

	if stub.calls == 0 {
		t.Error("Expected an immediate probe on start")
	}
	if status.GetUpstreamStatus().LastChecked.IsZero() {
		t.Error("Expected status to be populated after start")
	}
}
