package llm

import (
	"fmt"

	"portfolio-api/internal/jsonutil"
)

// APIError is returned when the generation API answers with a non-success status.
type APIError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bad status %d: %s", e.StatusCode, string(e.Body))
}

// Details returns the error body as parsed JSON, or as raw text when it is not JSON.
func (e *APIError) Details() jsonutil.Lenient {
	return jsonutil.ParseLenient(e.Body)
}
