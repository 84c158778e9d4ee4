package store

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// newTransport returns a transport tuned for many concurrent requests to a
// single host, with HTTP/2 enabled.
func newTransport() (*http.Transport, error) {
	transport := &http.Transport{
		MaxIdleConns:          200,
		MaxIdleConnsPerHost:   50,
		MaxConnsPerHost:       100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if err := http2.ConfigureTransport(transport); err != nil {
		return nil, fmt.Errorf("failed to configure HTTP/2: %w", err)
	}
	return transport, nil
}

// newHTTPClient wraps newTransport in a client with a generous overall
// request timeout. Per-operation deadlines are the caller's business.
func newHTTPClient() (*http.Client, error) {
	transport, err := newTransport()
	if err != nil {
		return nil, err
	}
	return &http.Client{
		Transport: transport,
		Timeout:   120 * time.Second,
	}, nil
}
