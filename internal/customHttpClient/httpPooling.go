package customHttpClient

import (
	"net/http"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
)

var pooledTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// Pooled returns a client that reuses connections to the embedding provider,
// which otherwise pays a TLS handshake per chunk.
func Pooled() *http.Client {
	return &http.Client{Transport: pooledTransport}
}
