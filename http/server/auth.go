package server

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gclaussn/go-lcu/http/common"
	"go.uber.org/zap"
)

type basicAuthHandler struct {
	username string
	password string
	handler  http.Handler
	logger   *zap.SugaredLogger
	record   func(Request)
}

func (h *basicAuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	r.Body = io.NopCloser(bytes.NewReader(b)) // make body readable again

	h.record(Request{
		Method:        r.Method,
		Path:          r.URL.Path,
		RawQuery:      r.URL.RawQuery,
		Authorization: r.Header.Get(common.HeaderAuthorization),
		ContentType:   r.Header.Get(common.HeaderContentType),
		Body:          b,
	})

	username, password, ok := r.BasicAuth()
	if !ok || username != h.username || password != h.password {
		h.logger.Infow("authentication failed", "method", r.Method, "uri", r.RequestURI, "remoteAddr", r.RemoteAddr)
		encodeJSONErrorResponseBody(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	h.handler.ServeHTTP(w, r)
}
