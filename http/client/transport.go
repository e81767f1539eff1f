package client

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"

	"github.com/gclaussn/go-lcu/http/common"
	"github.com/hashicorp/go-cleanhttp"
)

// authTransport attaches the authorization of a single identity to every request.
type authTransport struct {
	authorization string
	base          http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context()) // a RoundTripper must not modify the original request
	req.Header.Set(common.HeaderAuthorization, t.authorization)
	return t.base.RoundTrip(req)
}

func (t *authTransport) CloseIdleConnections() {
	type closeIdler interface {
		CloseIdleConnections()
	}
	if base, ok := t.base.(closeIdler); ok {
		base.CloseIdleConnections()
	}
}

func newTransport(options Options) http.RoundTripper {
	if options.Transport != nil {
		return options.Transport
	}

	transport := cleanhttp.DefaultPooledTransport()
	transport.Proxy = nil // loopback only
	transport.TLSClientConfig = newTLSConfig(options.RootCAs)
	return transport
}

func newTLSConfig(rootCAs *x509.CertPool) *tls.Config {
	tlsConfig := tls.Config{
		InsecureSkipVerify: true,
	}

	if rootCAs != nil {
		tlsConfig.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			return verifyChain(rootCAs, rawCerts)
		}
	}

	return &tlsConfig
}

// verifyChain verifies the certificate chain, presented by a peer, without verifying the host name.
func verifyChain(rootCAs *x509.CertPool, rawCerts [][]byte) error {
	if len(rawCerts) == 0 {
		return errors.New("no peer certificate presented")
	}

	certs := make([]*x509.Certificate, len(rawCerts))
	for i, rawCert := range rawCerts {
		cert, err := x509.ParseCertificate(rawCert)
		if err != nil {
			return fmt.Errorf("failed to parse peer certificate: %v", err)
		}
		certs[i] = cert
	}

	intermediates := x509.NewCertPool()
	for _, cert := range certs[1:] {
		intermediates.AddCert(cert)
	}

	_, err := certs[0].Verify(x509.VerifyOptions{
		Roots:         rootCAs,
		Intermediates: intermediates,
	})
	return err
}
