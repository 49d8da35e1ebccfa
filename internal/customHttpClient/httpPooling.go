package customHttpClient

import (
	"net/http"

	"github.com/nyayai/LegalAPI/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// PooledClient reuses connections across model calls to avoid the per-request
// handshake latency. The caller owns the timeout via request contexts.
func PooledClient() *http.Client {
	return &http.Client{Transport: customTransport}
}
