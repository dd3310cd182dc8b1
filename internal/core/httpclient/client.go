package httpclient

import (
	"crypto/tls"
	"net/http"
	"strconv"
	"time"

	"hood-sync/internal/core/logger"
	"hood-sync/internal/core/metrics"
	"hood-sync/internal/core/proxy"

	"go.uber.org/zap"
)

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int64("content_length", req.ContentLength),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		metrics.OutboundRequests.WithLabelValues(req.Method, "error").Inc()
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.OutboundRequests.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// Options configures the secure client.
type Options struct {
	// Timeout is the hard ceiling for a whole request; per call deadlines come from the context.
	Timeout time.Duration
	// Proxy routes requests through an outbound proxy when enabled.
	Proxy proxy.Settings
}

// NewSecureClient returns a logging client that refuses anything below TLS 1.2 and always
// verifies certificates. The transport keeps connections alive across calls.
func NewSecureClient(opts Options) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if u := opts.Proxy.URL(); u != nil {
		transport.Proxy = http.ProxyURL(u)
		logger.Get().Info("Using outbound proxy", zap.String("proxy", opts.Proxy.HostPort()))
	}

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: transport,
		},
		Timeout: opts.Timeout,
	}
}
