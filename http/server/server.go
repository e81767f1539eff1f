package server

import (
	"crypto/x509"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gclaussn/go-lcu/http/common"
	"github.com/gclaussn/go-lcu/lcu"
	"go.uber.org/zap"
)

// New creates a server, which accepts the given token.
// The server is not listening, until ListenAndServe is called.
func New(token string, customizers ...func(*Options)) *Server {
	options := NewOptions()
	for _, customizer := range customizers {
		customizer(&options)
	}

	mux := http.NewServeMux()

	server := Server{
		mux:     mux,
		options: options,
	}

	handler := &basicAuthHandler{
		username: lcu.AuthUsername,
		password: token,
		handler:  mux,
		logger:   options.Logger,
		record:   server.record,
	}

	server.httpServer = httptest.NewUnstartedServer(handler)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		encodeJSONErrorResponseBody(w, http.StatusNotFound, "Invalid URI format")
	})

	return &server
}

func NewOptions() Options {
	return Options{
		Logger: zap.NewNop().Sugar(),
	}
}

type Options struct {
	Logger *zap.SugaredLogger // Logs failed authentications.
}

// Server is a local stand-in for one of the REST APIs of a League Client, intended for testing.
// It serves HTTPS on 127.0.0.1, using a self-signed certificate.
type Server struct {
	httpServer *httptest.Server
	mux        *http.ServeMux
	options    Options

	mutex    sync.Mutex
	requests []Request
}

// Request is a request, received by a server.
type Request struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	ContentType   string
	Body          []byte
}

// Handle registers a handler, responding with a fixed status code and body.
// The pattern must be in the format of a [http.ServeMux] pattern, e.g. "GET /lol-summoner/v1/current-summoner".
// An empty body results in no body and no content type.
func (s *Server) Handle(pattern string, status int, body string) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		if body != "" {
			w.Header().Set(common.HeaderContentType, common.ContentTypeJson)
		}
		w.WriteHeader(status)
		if body != "" {
			w.Write([]byte(body))
		}
	})
}

// HandleFunc registers a custom handler function.
func (s *Server) HandleFunc(pattern string, handlerFunc http.HandlerFunc) {
	s.mux.HandleFunc(pattern, handlerFunc)
}

// Certificate returns the server's self-signed certificate.
func (s *Server) Certificate() *x509.Certificate {
	return s.httpServer.Certificate()
}

func (s *Server) ListenAndServe() {
	s.httpServer.StartTLS()
}

// Port returns the port, the server is listening on.
func (s *Server) Port() uint16 {
	_, port, err := net.SplitHostPort(s.httpServer.Listener.Addr().String())
	if err != nil {
		return 0
	}

	v, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}

// Requests returns all requests, received so far - including the ones that failed authentication.
func (s *Server) Requests() []Request {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	requests := make([]Request, len(s.requests))
	copy(requests, s.requests)
	return requests
}

func (s *Server) Shutdown() {
	s.httpServer.Close()
}

func (s *Server) record(req Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.requests = append(s.requests, req)
}
