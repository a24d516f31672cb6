// Package data provides thread-safe status storage for the server mode.
// It includes the StatusContainer struct with atomic operations so that the
// upstream monitor, the handlers and the health endpoint never contend.
package data

import (
	"sync/atomic"
	"time"

	"github.com/pharmanav/ndcfinder/interfaces"
	"github.com/pharmanav/ndcfinder/logging"
)

// Compile-time check to ensure StatusContainer implements StatusStore
var _ interfaces.StatusStore = (*StatusContainer)(nil)

// StatusContainer holds upstream status and lookup counters with atomic
// values for lock-free reads.
type StatusContainer struct {
	upstreamStatus  atomic.Value // interfaces.UpstreamStatus
	drugLookups     atomic.Int64
	classLookups    atomic.Int64
	recordsServed   atomic.Int64
	serverStartTime atomic.Value // time.Time
}

// NewStatusContainer creates a container initialized with an unknown
// upstream status and the current start time.
func NewStatusContainer() *StatusContainer {
	sc := &StatusContainer{}
	sc.upstreamStatus.Store(interfaces.UpstreamStatus{})
	sc.serverStartTime.Store(time.Now())
	return sc
}

// GetUpstreamStatus returns the last recorded upstream status.
func (sc *StatusContainer) GetUpstreamStatus() interfaces.UpstreamStatus {
	if v := sc.upstreamStatus.Load(); v != nil {
		if status, ok := v.(interfaces.UpstreamStatus); ok {
			return status
		}
	}

	logging.Warn("Upstream status is empty or invalid")
	return interfaces.UpstreamStatus{}
}

// SetUpstreamStatus atomically replaces the upstream status snapshot.
func (sc *StatusContainer) SetUpstreamStatus(status interfaces.UpstreamStatus) {
	sc.upstreamStatus.Store(status)
}

// RecordLookup counts one served lookup of the given kind ("drug" or
// "class") and the records it produced.
func (sc *StatusContainer) RecordLookup(kind string, recordCount int) {
	switch kind {
	case "drug":
		sc.drugLookups.Add(1)
	case "class":
		sc.classLookups.Add(1)
	default:
		logging.Warn("Unknown lookup kind", "kind", kind)
		return
	}
	sc.recordsServed.Add(int64(recordCount))
}

// GetLookupStats returns the lookup counters since process start.
func (sc *StatusContainer) GetLookupStats() interfaces.LookupStats {
	return interfaces.LookupStats{
		DrugLookups:   sc.drugLookups.Load(),
		ClassLookups:  sc.classLookups.Load(),
		RecordsServed: sc.recordsServed.Load(),
	}
}

// GetServerStartTime returns the process start time.
func (sc *StatusContainer) GetServerStartTime() time.Time {
	if v := sc.serverStartTime.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}

	logging.Warn("Could not get the server start time")
	return time.Time{}
}
