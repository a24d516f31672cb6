package resolver

import "fmt"

// UpstreamError wraps transport failures, non-2xx responses and JSON decode
// failures from the remote services. The fallback paths tolerate exactly this
// error kind; anything else propagates to the caller.
type UpstreamError struct {
	API string
	URL string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s request failed: %s: %v", e.API, e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
