package resolver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pharmanav/ndcfinder/config"
	"github.com/pharmanav/ndcfinder/interfaces"
	"github.com/pharmanav/ndcfinder/logging"
	"github.com/pharmanav/ndcfinder/metrics"
	"github.com/pharmanav/ndcfinder/resolver/entities"
)

// API labels used for metrics and error reporting.
const (
	apiRxNav = "rxnav"
	apiFDA   = "fda"
)

// relatedTermTypes are the four dispensable term types requested from the
// related-concepts endpoint: clinical drug, branded drug, generic pack,
// branded pack.
const relatedTermTypes = "SCD SBD GPCK BPCK"

// Compile-time checks that Client satisfies both source contracts.
var (
	_ interfaces.Terminology      = (*Client)(nil)
	_ interfaces.ProductDirectory = (*Client)(nil)
)

// Client performs HTTP GET + JSON decode against the RxNav and openFDA APIs.
type Client struct {
	httpClient *http.Client
	rxnavBase  string
	fdaBase    string
	fdaLimit   int
	quiet      bool
}

// NewClient creates a client from configuration. When quiet is true the
// client does not log individual upstream calls.
func NewClient(cfg *config.Config, quiet bool) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		rxnavBase:  cfg.RxNavBaseURL,
		fdaBase:    cfg.FDABaseURL,
		fdaLimit:   cfg.FDAPageLimit,
		quiet:      quiet,
	}
}

// getJSON fetches rawURL and decodes the body into out. Every failure mode
// (transport, status, decode) is reported as *UpstreamError.
func (c *Client) getJSON(api string, rawURL string, out any) error {
	start := time.Now()

	resp, err := c.httpClient.Get(rawURL)
	if err != nil {
		metrics.ObserveUpstream(api, "error", time.Since(start))
		return &UpstreamError{API: api, URL: rawURL, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn("Failed to close response body", "error", err)
		}
	}()

	metrics.ObserveUpstream(api, strconv.Itoa(resp.StatusCode), time.Since(start))

	if !c.quiet {
		logging.Debug("Upstream request",
			"api", api,
			"url", rawURL,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{API: api, URL: rawURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{API: api, URL: rawURL, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return nil
}

// FindRxcuis returns the RxCUIs matching a drug name.
func (c *Client) FindRxcuis(name string) ([]string, error) {
	query := url.Values{"name": {name}, "search": {"2"}}
	rawURL := fmt.Sprintf("%s/REST/rxcui.json?%s", c.rxnavBase, query.Encode())

	var result entities.RxcuiSearchResult
	if err := c.getJSON(apiRxNav, rawURL, &result); err != nil {
		return nil, err
	}

	return result.IDGroup.RxnormID, nil
}

// RelatedConcepts returns the related concepts of an RxCUI restricted to the
// dispensable term types.
func (c *Client) RelatedConcepts(rxcui string) (*entities.RelatedConceptsResult, error) {
	query := url.Values{"tty": {relatedTermTypes}}
	rawURL := fmt.Sprintf("%s/REST/rxcui/%s/related.json?%s", c.rxnavBase, url.PathEscape(rxcui), query.Encode())

	var result entities.RelatedConceptsResult
	if err := c.getJSON(apiRxNav, rawURL, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// NDCProperties returns the NDC property entries of a concept.
func (c *Client) NDCProperties(rxcui string) (*entities.NDCPropertiesResult, error) {
	query := url.Values{"id": {rxcui}}
	rawURL := fmt.Sprintf("%s/REST/ndcproperties.json?%s", c.rxnavBase, query.Encode())

	var result entities.NDCPropertiesResult
	if err := c.getJSON(apiRxNav, rawURL, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// TermInfo returns the RxTerms detail record of a concept.
func (c *Client) TermInfo(rxcui string) (*entities.RxTermsResult, error) {
	rawURL := fmt.Sprintf("%s/REST/RxTerms/rxcui/%s/allinfo.json", c.rxnavBase, url.PathEscape(rxcui))

	var result entities.RxTermsResult
	if err := c.getJSON(apiRxNav, rawURL, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// ClassesByName returns the ATC classes (levels 1-4) matching a class name.
func (c *Client) ClassesByName(className string) ([]entities.RxClassMinConcept, error) {
	query := url.Values{"className": {className}, "classTypes": {"ATC1-4"}}
	rawURL := fmt.Sprintf("%s/REST/rxclass/class/byName.json?%s", c.rxnavBase, query.Encode())

	var result entities.ClassSearchResult
	if err := c.getJSON(apiRxNav, rawURL, &result); err != nil {
		return nil, err
	}

	return result.RxclassMinConceptList.RxclassMinConcept, nil
}

// ClassMembers returns the member drugs of an ATC class.
func (c *Client) ClassMembers(classID string) ([]entities.DrugMember, error) {
	query := url.Values{"classId": {classID}, "relaSource": {"ATC"}}
	rawURL := fmt.Sprintf("%s/REST/rxclass/classMembers.json?%s", c.rxnavBase, query.Encode())

	var result entities.ClassMembersResult
	if err := c.getJSON(apiRxNav, rawURL, &result); err != nil {
		return nil, err
	}

	return result.DrugMemberGroup.DrugMember, nil
}

// Version returns the RxNorm data version.
func (c *Client) Version() (string, error) {
	rawURL := fmt.Sprintf("%s/REST/version.json", c.rxnavBase)

	var result entities.VersionResult
	if err := c.getJSON(apiRxNav, rawURL, &result); err != nil {
		return "", err
	}

	return result.Version, nil
}

// SearchByGenericName queries the openFDA NDC Directory by generic name.
func (c *Client) SearchByGenericName(name string) ([]entities.Product, error) {
	search := fmt.Sprintf("generic_name:%q", name)
	query := url.Values{"search": {search}, "limit": {strconv.Itoa(c.fdaLimit)}}
	rawURL := fmt.Sprintf("%s/drug/ndc.json?%s", c.fdaBase, query.Encode())

	var result entities.ProductSearchResult
	if err := c.getJSON(apiFDA, rawURL, &result); err != nil {
		return nil, err
	}

	return result.Results, nil
}
