package fetcher

import "fmt"

// Fetcher interface defines the contract for fetching implementations
type Fetcher interface {
	// Fetch performs a single GET against url and returns the raw body.
	// Transport failures, timeouts and non-2xx responses are returned as errors.
	Fetch(url string) ([]byte, error)
}

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}
