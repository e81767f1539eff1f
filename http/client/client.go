package client

import (
	"context"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gclaussn/go-lcu/http/common"
	"github.com/gclaussn/go-lcu/lcu"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// New creates a client for the default or the remoting REST API of a League Client.
//
// The token of the selected identity is attached to every request, made by the client.
// No connection is established, when a client is created.
func New(info lcu.ConnectionInfo, remoting bool, customizers ...func(*Options)) (*Client, error) {
	options := NewOptions()
	for _, customizer := range customizers {
		customizer(&options)
	}

	if err := options.Validate(); err != nil {
		return nil, lcu.Error{
			Type:   lcu.ErrorConstruction,
			Title:  "failed to create client",
			Detail: err.Error(),
			Cause:  err,
		}
	}

	identity := info.Identity(remoting)
	if err := identity.Validate(); err != nil {
		return nil, lcu.Error{
			Type:   lcu.ErrorConstruction,
			Title:  "failed to create client",
			Detail: err.Error(),
			Cause:  err,
		}
	}

	httpClient := http.Client{
		Transport: &authTransport{
			authorization: authorization(identity.Token),
			base:          newTransport(options),
		},
		Timeout: options.Timeout,
	}

	client := Client{
		httpClient: &httpClient,
		remoting:   remoting,
		info:       info,
		options:    options,
	}

	return &client, nil
}

func NewOptions() Options {
	return Options{}
}

type Options struct {
	// Time limit for requests, including reading the response body. Zero means no limit.
	Timeout time.Duration `validate:"gte=0"`

	// Optional root certificates, used to verify the certificate chain of the League Client.
	// If not set, the certificate is not verified at all.
	// In both cases, the host name is not verified, since the League Client's certificate has no IP SAN.
	RootCAs *x509.CertPool `validate:"-"`

	// Optional transport, a client's token is attached to. If not set, a pooled transport is used.
	// When set, RootCAs is ignored.
	Transport http.RoundTripper `validate:"-"`

	// OnRequest is an optional function that accepts a [*http.Request]. It is called before a HTTP request is send.
	// The request does not contain the authorization header.
	OnRequest func(*http.Request) error
	// OnResponse is an optional function that accepts a [*http.Response]. It is called after a HTTP response is returned.
	OnResponse func(*http.Response) error
}

func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %v", err)
	}
	return nil
}

// Client sends requests to one of the two REST APIs of a League Client.
//
// A client is immutable and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	remoting   bool
	info       lcu.ConnectionInfo
	options    Options
}

// ConnectionInfo returns the connection info, the client has been created with.
func (c *Client) ConnectionInfo() lcu.ConnectionInfo {
	return c.info
}

// Remoting determines if the client sends requests to the remoting REST API.
func (c *Client) Remoting() bool {
	return c.remoting
}

// Get sends a GET request to an endpoint and returns the decoded JSON response body.
// If the response status is 204, {"status": 204} is returned.
func (c *Client) Get(ctx context.Context, endpoint string) (any, error) {
	result, err := Get[any](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}
	return result.Any(), nil
}

// Post sends a POST request with a JSON encoded body to an endpoint.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (any, error) {
	result, err := Post[any](ctx, c, endpoint, body)
	if err != nil {
		return nil, err
	}
	return result.Any(), nil
}

// PostNoBody sends a POST request without body to an endpoint.
func (c *Client) PostNoBody(ctx context.Context, endpoint string) (any, error) {
	result, err := PostNoBody[any](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}
	return result.Any(), nil
}

// Put sends a PUT request with a JSON encoded body to an endpoint.
func (c *Client) Put(ctx context.Context, endpoint string, body any) (any, error) {
	result, err := Put[any](ctx, c, endpoint, body)
	if err != nil {
		return nil, err
	}
	return result.Any(), nil
}

// Delete sends a DELETE request to an endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string) (any, error) {
	result, err := Delete[any](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}
	return result.Any(), nil
}

// Shutdown closes idle connections. The client can still be used afterwards.
func (c *Client) Shutdown() {
	c.httpClient.CloseIdleConnections()
}

// port resolves the port of the identity, whose token is attached by the transport.
func (c *Client) port() uint16 {
	return c.info.Identity(c.remoting).Port
}

// url appends the endpoint as it is, since it may already contain an encoded query.
func (c *Client) url(endpoint string) string {
	return fmt.Sprintf("%s://%s:%d%s", common.Scheme, lcu.Host, c.port(), endpoint)
}

func authorization(token string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(lcu.AuthUsername+":"+token))
}
