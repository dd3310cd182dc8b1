package httpclient

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hood-sync/internal/core/logger"
	"hood-sync/internal/core/proxy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies that requests pass through the logging transport.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	logger.Init("development", "debug")

	client := NewSecureClient(Options{Timeout: time.Second})
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests are returned to the caller.
func TestLoggingRoundTripper_Error(t *testing.T) {
	logger.Init("development", "debug")

	client := NewSecureClient(Options{Timeout: time.Second})
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

// TestNewSecureClient_TLSFloor verifies the TLS policy of the Hood.de transport.
func TestNewSecureClient_TLSFloor(t *testing.T) {
	client := NewSecureClient(Options{Timeout: 5 * time.Second})

	lrt, ok := client.Transport.(*LoggingRoundTripper)
	require.True(t, ok)
	transport, ok := lrt.Proxied.(*http.Transport)
	require.True(t, ok)

	require.NotNil(t, transport.TLSClientConfig)
	assert.Equal(t, uint16(tls.VersionTLS12), transport.TLSClientConfig.MinVersion)
	assert.False(t, transport.TLSClientConfig.InsecureSkipVerify)
	assert.Equal(t, 5*time.Second, client.Timeout)
}

// TestNewSecureClient_RejectsUntrustedCertificate verifies certificates are checked.
func TestNewSecureClient_RejectsUntrustedCertificate(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewSecureClient(Options{Timeout: 2 * time.Second})
	_, err := client.Get(ts.URL)
	require.Error(t, err)
}

// TestNewSecureClient_Proxy verifies the proxy is wired into the transport.
func TestNewSecureClient_Proxy(t *testing.T) {
	client := NewSecureClient(Options{
		Timeout: time.Second,
		Proxy:   proxy.Settings{Enabled: true, Hostname: "proxy.local", Port: 3128},
	})

	transport := client.Transport.(*LoggingRoundTripper).Proxied.(*http.Transport)
	req, err := http.NewRequest(http.MethodPost, "https://www.hood.de/api.htm", nil)
	require.NoError(t, err)

	u, err := transport.Proxy(req)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "proxy.local:3128", u.Host)
}
