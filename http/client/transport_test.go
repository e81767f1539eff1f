package client

import (
	"context"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/gclaussn/go-lcu/http/common"
	"github.com/gclaussn/go-lcu/lcu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTransport records requests and responds with a fixed status code and body.
type recordingTransport struct {
	status int
	body   string

	requests []*http.Request
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.requests = append(t.requests, req)

	return &http.Response{
		StatusCode: t.status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(t.body)),
		Request:    req,
	}, nil
}

func TestTransport(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	info := lcu.ConnectionInfo{
		Port:          2999,
		Token:         "T1",
		RemotingPort:  3000,
		RemotingToken: "T2",
	}

	newClient := func(remoting bool, transport *recordingTransport) *Client {
		c, err := New(info, remoting, func(o *Options) {
			o.Transport = transport
		})
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		return c
	}

	t.Run("default identity", func(t *testing.T) {
		transport := &recordingTransport{status: http.StatusOK, body: `{"gameName":"test"}`}
		c := newClient(false, transport)

		// when
		v, err := c.Get(context.Background(), "/lol-summoner/v1/current-summoner")
		require.NoError(err)

		// then
		assert.Equal(map[string]any{"gameName": "test"}, v)

		require.Len(transport.requests, 1)

		req := transport.requests[0]
		assert.Equal(http.MethodGet, req.Method)
		assert.Equal("https://127.0.0.1:2999/lol-summoner/v1/current-summoner", req.URL.String())
		assert.Equal("Basic "+base64.StdEncoding.EncodeToString([]byte("riot:T1")), req.Header.Get(common.HeaderAuthorization))
	})

	t.Run("remoting identity", func(t *testing.T) {
		transport := &recordingTransport{status: http.StatusNoContent}
		c := newClient(true, transport)

		// when
		v, err := c.PostNoBody(context.Background(), "/process-control/v1/process")
		require.NoError(err)

		// then
		assert.Equal(map[string]any{"status": json.Number("204")}, v)

		require.Len(transport.requests, 1)

		req := transport.requests[0]
		assert.Equal(http.MethodPost, req.Method)
		assert.Equal("https://127.0.0.1:3000/process-control/v1/process", req.URL.String())
		assert.Equal("Basic "+base64.StdEncoding.EncodeToString([]byte("riot:T2")), req.Header.Get(common.HeaderAuthorization))
		assert.True(req.Body == nil || req.Body == http.NoBody, "expected no request body")
	})

	t.Run("every method", func(t *testing.T) {
		type send func(c *Client) (any, error)

		sends := map[string]send{
			http.MethodGet: func(c *Client) (any, error) {
				return c.Get(context.Background(), "/x")
			},
			http.MethodPost: func(c *Client) (any, error) {
				return c.Post(context.Background(), "/x", map[string]int{"b": 2})
			},
			"POST_NO_BODY": func(c *Client) (any, error) {
				return c.PostNoBody(context.Background(), "/x")
			},
			http.MethodPut: func(c *Client) (any, error) {
				return c.Put(context.Background(), "/x", []int{1, 2})
			},
			http.MethodDelete: func(c *Client) (any, error) {
				return c.Delete(context.Background(), "/x")
			},
		}

		for name, send := range sends {
			t.Run(name, func(t *testing.T) {
				for _, remoting := range []bool{false, true} {
					transport := &recordingTransport{status: http.StatusNoContent}
					c := newClient(remoting, transport)

					v, err := send(c)
					assert.NoError(err)
					assert.Equal(map[string]any{"status": json.Number("204")}, v)

					transport = &recordingTransport{status: http.StatusOK, body: `{"a":1}`}
					c = newClient(remoting, transport)

					v, err = send(c)
					assert.NoError(err)
					assert.Equal(map[string]any{"a": json.Number("1")}, v)

					transport = &recordingTransport{status: http.StatusOK, body: "oops"}
					c = newClient(remoting, transport)

					v, err = send(c)
					assert.Nil(v)

					var lcuErr lcu.Error
					if assert.ErrorAs(err, &lcuErr) {
						assert.Equal(lcu.ErrorDecode, lcuErr.Type)
					}

					identity := info.Identity(remoting)
					for _, req := range transport.requests {
						assert.Equal(identity.Port, mustParsePort(t, req.URL.Port()))
						assert.Equal(authorization(identity.Token), req.Header.Get(common.HeaderAuthorization))
					}
				}
			})
		}
	})

	t.Run("hooks do not see authorization", func(t *testing.T) {
		transport := &recordingTransport{status: http.StatusOK, body: `{}`}

		var (
			hookAuthorization = "not called"
			hookStatus        int
		)

		c, err := New(info, false, func(o *Options) {
			o.Transport = transport
			o.OnRequest = func(r *http.Request) error {
				hookAuthorization = r.Header.Get(common.HeaderAuthorization)
				return nil
			}
			o.OnResponse = func(r *http.Response) error {
				hookStatus = r.StatusCode
				return nil
			}
		})
		require.NoError(err)

		_, err = c.Get(context.Background(), "/x")
		require.NoError(err)

		assert.Empty(hookAuthorization)
		assert.Equal(http.StatusOK, hookStatus)
		assert.NotEmpty(transport.requests[0].Header.Get(common.HeaderAuthorization))
	})
}

func TestTypedRequests(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	type summoner struct {
		GameName      string `json:"gameName"`
		SummonerLevel int    `json:"summonerLevel"`
	}

	newClient := func(transport *recordingTransport) *Client {
		c, err := New(lcu.ConnectionInfo{Port: 2999}, false, func(o *Options) {
			o.Transport = transport
		})
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		return c
	}

	t.Run("value", func(t *testing.T) {
		c := newClient(&recordingTransport{status: http.StatusOK, body: `{"gameName":"test","summonerLevel":30}`})

		result, err := Get[summoner](context.Background(), c, "/lol-summoner/v1/current-summoner")
		require.NoError(err)

		assert.False(result.NoContent)
		assert.Equal(summoner{GameName: "test", SummonerLevel: 30}, result.Value)
	})

	t.Run("no content", func(t *testing.T) {
		for _, request := range []func(c *Client) (bool, error){
			func(c *Client) (bool, error) {
				result, err := Post[summoner](context.Background(), c, "/x", summoner{})
				return result.NoContent, err
			},
			func(c *Client) (bool, error) {
				result, err := PostNoBody[summoner](context.Background(), c, "/x")
				return result.NoContent, err
			},
			func(c *Client) (bool, error) {
				result, err := Put[summoner](context.Background(), c, "/x", summoner{})
				return result.NoContent, err
			},
			func(c *Client) (bool, error) {
				result, err := Delete[summoner](context.Background(), c, "/x")
				return result.NoContent, err
			},
		} {
			noContent, err := request(newClient(&recordingTransport{status: http.StatusNoContent}))
			assert.NoError(err)
			assert.True(noContent)
		}
	})

	t.Run("shape mismatch returns decode error", func(t *testing.T) {
		c := newClient(&recordingTransport{status: http.StatusOK, body: `["not","an","object"]`})

		_, err := Get[summoner](context.Background(), c, "/lol-summoner/v1/current-summoner")

		var lcuErr lcu.Error
		require.ErrorAs(err, &lcuErr)
		assert.Equal(lcu.ErrorDecode, lcuErr.Type)
	})
}

func TestVerifyChain(t *testing.T) {
	assert := assert.New(t)

	assert.EqualError(verifyChain(x509.NewCertPool(), nil), "no peer certificate presented")
	assert.ErrorContains(verifyChain(x509.NewCertPool(), [][]byte{[]byte("invalid")}), "failed to parse peer certificate")
}

func TestNewTransport(t *testing.T) {
	assert := assert.New(t)

	transport, ok := newTransport(NewOptions()).(*http.Transport)
	if !assert.True(ok, "expected *http.Transport") {
		return
	}

	assert.Nil(transport.Proxy)
	assert.True(transport.TLSClientConfig.InsecureSkipVerify)
	assert.Nil(transport.TLSClientConfig.VerifyPeerCertificate)

	transport = newTransport(Options{RootCAs: x509.NewCertPool()}).(*http.Transport)
	assert.NotNil(transport.TLSClientConfig.VerifyPeerCertificate)
}

func mustParsePort(t *testing.T, s string) uint16 {
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		t.Fatalf("failed to parse port %s: %v", s, err)
	}
	return uint16(port)
}
