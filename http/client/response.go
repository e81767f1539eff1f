package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gclaussn/go-lcu/lcu"
)

// decodeJSONResponseBody decodes the body of any response with a status code other than 204.
// The status code is not interpreted otherwise, since the LCU responds with a JSON body in case of errors as well.
func decodeJSONResponseBody[T any](title string, res *http.Response) (lcu.Result[T], error) {
	if res.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, res.Body) // drain, so that the connection can be reused
		return lcu.Result[T]{NoContent: true}, nil
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return lcu.Result[T]{}, lcu.Error{
			Type:       lcu.ErrorTransport,
			Title:      title,
			Detail:     fmt.Sprintf("failed to read response body: %v", err),
			StatusCode: res.StatusCode,
			Cause:      err,
		}
	}

	var v T
	if err := unmarshalJSON(b, &v); err != nil {
		return lcu.Result[T]{}, lcu.Error{
			Type:       lcu.ErrorDecode,
			Title:      title,
			Detail:     fmt.Sprintf("failed to decode JSON response body: %v", err),
			StatusCode: res.StatusCode,
			Cause:      err,
		}
	}

	return lcu.Result[T]{Value: v}, nil
}

// unmarshalJSON decodes numbers, which end up in an any, as [json.Number], so that large IDs keep their precision.
func unmarshalJSON(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("invalid character after top-level value")
	}
	return nil
}
