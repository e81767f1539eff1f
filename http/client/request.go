package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gclaussn/go-lcu/http/common"
	"github.com/gclaussn/go-lcu/lcu"
)

// Get sends a GET request to an endpoint and decodes the JSON response body into a T.
func Get[T any](ctx context.Context, c *Client, endpoint string) (lcu.Result[T], error) {
	return do[T](ctx, c, http.MethodGet, endpoint, nil, false)
}

// Post sends a POST request with a JSON encoded body to an endpoint and decodes the JSON response body into a T.
func Post[T any](ctx context.Context, c *Client, endpoint string, body any) (lcu.Result[T], error) {
	return do[T](ctx, c, http.MethodPost, endpoint, body, true)
}

// PostNoBody sends a POST request without body to an endpoint and decodes the JSON response body into a T.
func PostNoBody[T any](ctx context.Context, c *Client, endpoint string) (lcu.Result[T], error) {
	return do[T](ctx, c, http.MethodPost, endpoint, nil, false)
}

// Put sends a PUT request with a JSON encoded body to an endpoint and decodes the JSON response body into a T.
func Put[T any](ctx context.Context, c *Client, endpoint string, body any) (lcu.Result[T], error) {
	return do[T](ctx, c, http.MethodPut, endpoint, body, true)
}

// Delete sends a DELETE request to an endpoint and decodes the JSON response body into a T.
func Delete[T any](ctx context.Context, c *Client, endpoint string) (lcu.Result[T], error) {
	return do[T](ctx, c, http.MethodDelete, endpoint, nil, false)
}

func do[T any](ctx context.Context, c *Client, method string, endpoint string, reqBody any, hasReqBody bool) (lcu.Result[T], error) {
	url := c.url(endpoint)
	title := method + " " + url

	var body io.Reader
	if hasReqBody {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return lcu.Result[T]{}, lcu.Error{
				Type:   lcu.ErrorEncode,
				Title:  title,
				Detail: fmt.Sprintf("failed to create JSON request body: %v", err),
				Cause:  err,
			}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return lcu.Result[T]{}, lcu.Error{
			Type:   lcu.ErrorTransport,
			Title:  title,
			Detail: fmt.Sprintf("failed to create request: %v", err),
			Cause:  err,
		}
	}

	req.Header.Set(common.HeaderAccept, common.ContentTypeJson)
	if hasReqBody {
		req.Header.Set(common.HeaderContentType, common.ContentTypeJson)
	}

	if c.options.OnRequest != nil {
		if err := c.options.OnRequest(req); err != nil {
			return lcu.Result[T]{}, lcu.Error{
				Type:   lcu.ErrorTransport,
				Title:  title,
				Detail: fmt.Sprintf("request hook failed: %v", err),
				Cause:  err,
			}
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return lcu.Result[T]{}, lcu.Error{
			Type:   lcu.ErrorTransport,
			Title:  title,
			Detail: fmt.Sprintf("failed to execute request: %v", err),
			Cause:  err,
		}
	}

	defer func() {
		res.Body.Close() // OnResponse may replace the body
	}()

	if c.options.OnResponse != nil {
		if err := c.options.OnResponse(res); err != nil {
			return lcu.Result[T]{}, lcu.Error{
				Type:       lcu.ErrorTransport,
				Title:      title,
				Detail:     fmt.Sprintf("response hook failed: %v", err),
				StatusCode: res.StatusCode,
				Cause:      err,
			}
		}
	}

	return decodeJSONResponseBody[T](title, res)
}
