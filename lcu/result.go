package lcu

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Result is the outcome of a successful request: either no content (HTTP 204) or a decoded JSON value.
type Result[T any] struct {
	NoContent bool
	Value     T
}

// Any returns the untyped representation of a result.
// For no content, it is the value returned by [NoContentValue].
func (r Result[T]) Any() any {
	if r.NoContent {
		return NoContentValue()
	}
	return r.Value
}

// NoContentValue returns the value {"status": 204}, which stands in for an empty response body.
// The status is a [json.Number], as it would be when a client decodes the same JSON.
func NoContentValue() map[string]any {
	return map[string]any{"status": json.Number(strconv.Itoa(http.StatusNoContent))}
}
