package llm

import "fmt"

// RequestError reports a non-success HTTP status from an upstream
// provider. Adapters never retry; the dispatch layer decides whether the
// error triggers an aggregator fallback.
type RequestError struct {
	Provider   Provider
	StatusCode int
	Status     string
	Body       string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s API error: %s - %s", e.Provider, e.Status, e.Body)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Status)
}

// ShapeError reports a 2xx upstream response whose body did not contain
// the expected completion fields. Treated exactly like RequestError for
// fallback purposes; returning a partial or garbage string is never an
// option.
type ShapeError struct {
	Provider Provider
	Reason   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s returned a malformed response: %s", e.Provider, e.Reason)
}
