// Package handlers provides HTTP request handlers for the NDC lookup
// endpoints, the health check, and JSON response formatting with input
// validation.
package handlers

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pharmanav/ndcfinder/interfaces"
	"github.com/pharmanav/ndcfinder/logging"
	"github.com/pharmanav/ndcfinder/metrics"
	"github.com/pharmanav/ndcfinder/resolver/entities"
	"github.com/pharmanav/ndcfinder/validation"
)

// RespondWithJSON writes a JSON response with the given status code
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		logging.Warn("Failed to write response", "error", err)
	}
}

// lookupResponse wraps a result set with its count.
type lookupResponse struct {
	Query   string               `json:"query"`
	Count   int                  `json:"count"`
	Records []entities.NDCRecord `json:"records"`
}

// lookup validates the term, resolves it and writes the outcome.
func lookup(w http.ResponseWriter, kind string, term string,
	resolve func(string) ([]entities.NDCRecord, error), status interfaces.StatusStore) {

	if err := validation.ValidateTerm(term); err != nil {
		logging.Warn("Unusual user input", "kind", kind, "term", term, "error", err)
		http.Error(w, "Invalid search term", http.StatusBadRequest)
		return
	}

	normalized := validation.NormalizeTerm(term)

	records, err := resolve(normalized)
	if err != nil {
		logging.Error("Lookup failed", "kind", kind, "term", normalized, "error", err)
		metrics.LookupTotals.WithLabelValues(kind, "error").Inc()
		http.Error(w, "Upstream lookup failed", http.StatusBadGateway)
		return
	}

	status.RecordLookup(kind, len(records))

	if len(records) == 0 {
		metrics.LookupTotals.WithLabelValues(kind, "empty").Inc()
		http.Error(w, "No NDC records found", http.StatusNotFound)
		return
	}

	metrics.LookupTotals.WithLabelValues(kind, "ok").Inc()
	RespondWithJSON(w, http.StatusOK, lookupResponse{
		Query:   normalized,
		Count:   len(records),
		Records: records,
	})
}

// LookupDrug resolves a drug name to NDC records
func LookupDrug(res interfaces.Resolver, status interfaces.StatusStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		lookup(w, "drug", name, res.ResolveDrug, status)
	}
}

// LookupClass resolves an ATC class name to NDC records
func LookupClass(res interfaces.Resolver, status interfaces.StatusStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		lookup(w, "class", name, res.ResolveClass, status)
	}
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status        string                 `json:"status"`
	UptimeSeconds float64                `json:"uptime_seconds"`
	Upstream      map[string]interface{} `json:"upstream"`
	Lookups       map[string]interface{} `json:"lookups"`
	System        map[string]interface{} `json:"system"`
}

// HealthCheck returns server health information
func HealthCheck(status interfaces.StatusStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		uptime := time.Since(status.GetServerStartTime())
		upstream := status.GetUpstreamStatus()
		stats := status.GetLookupStats()

		// The service degrades rather than fails when RxNav is unreachable:
		// the fallback source may still answer.
		var healthStatus string
		httpStatus := http.StatusOK
		switch {
		case upstream.LastChecked.IsZero():
			healthStatus = "starting"
		case !upstream.Healthy:
			healthStatus = "degraded"
		default:
			healthStatus = "healthy"
		}

		response := HealthResponse{
			Status:        healthStatus,
			UptimeSeconds: uptime.Seconds(),
			Upstream: map[string]interface{}{
				"rxnorm_version": upstream.RxNavVersion,
				"healthy":        upstream.Healthy,
				"last_checked":   upstream.LastChecked.Format(time.RFC3339),
				"error":          upstream.Error,
			},
			Lookups: map[string]interface{}{
				"drug":           stats.DrugLookups,
				"class":          stats.ClassLookups,
				"records_served": stats.RecordsServed,
			},
			System: map[string]interface{}{
				"goroutines": runtime.NumGoroutine(),
				"alloc_mb":   int(m.Alloc / 1024 / 1024),
				"num_gc":     m.NumGC,
			},
		}

		RespondWithJSON(w, httpStatus, response)
	}
}
