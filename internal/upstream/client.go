package upstream

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"chatproxy-go/internal/config"
	"chatproxy-go/internal/constants"
	"chatproxy-go/internal/monitoring"
	"chatproxy-go/internal/monitoring/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Client issues upstream vendor calls. The underlying http.Client carries no
// overall timeout so event streams are never cut mid-flight; per-phase
// timeouts (dial, TLS, response header) live on the transport.
type Client struct {
	cfg *config.Config
	cli *http.Client
}

func durationOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

func New(cfg *config.Config) *Client {
	dialTO := durationOrDefault(cfg.DialTimeoutSec, constants.DefaultDialTimeout)
	tlsTO := durationOrDefault(cfg.TLSHandshakeTimeoutSec, constants.DefaultTLSHandshakeTimeout)
	hdrTO := durationOrDefault(cfg.ResponseHeaderTimeoutSec, constants.DefaultResponseHeaderTimeout)

	tr := &http.Transport{
		Proxy: getProxyFunc(cfg.ProxyURL),
		DialContext: (&net.Dialer{
			Timeout:   dialTO,
			KeepAlive: constants.DefaultKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   tlsTO,
		ResponseHeaderTimeout: hdrTO,
		ExpectContinueTimeout: constants.DefaultExpectContinueTimeout,
		MaxIdleConns:          constants.BaseMaxIdleConns,
		MaxIdleConnsPerHost:   constants.BaseMaxIdleConnsPerHost,
		IdleConnTimeout:       constants.BaseIdleConnTimeout,
	}
	return &Client{cfg: cfg, cli: &http.Client{Transport: tr, Timeout: 0}}
}

// getProxyFunc returns appropriate proxy function based on configuration
func getProxyFunc(proxyURL string) func(*http.Request) (*url.URL, error) {
	if proxyURL != "" {
		if parsedURL, err := url.Parse(proxyURL); err == nil {
			return http.ProxyURL(parsedURL)
		}
	}
	return http.ProxyFromEnvironment
}

// Do executes the target and returns the raw response.
//
// IMPORTANT: Caller is responsible for closing resp.Body when err is nil.
// Cancelling ctx aborts the call and releases the upstream connection,
// which is how caller disconnects propagate mid-stream.
func (c *Client) Do(ctx context.Context, t *Target) (*http.Response, error) {
	spanCtx, span := tracing.StartSpan(ctx, "upstream", "Upstream.Do",
		trace.WithAttributes(
			attribute.String("http.method", t.Method),
			attribute.String("upstream.provider", string(t.Provider)),
		))
	defer span.End()
	ctx = spanCtx

	req, err := http.NewRequestWithContext(ctx, t.Method, t.URL, bytes.NewReader(t.Body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	for k, vals := range t.Header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.cli.Do(req)
	monitoring.UpstreamRequestDuration.WithLabelValues(string(t.Provider)).Observe(time.Since(start).Seconds())
	if err != nil {
		monitoring.UpstreamRequestsTotal.WithLabelValues(string(t.Provider), "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	monitoring.UpstreamRequestsTotal.WithLabelValues(string(t.Provider), statusClass(resp.StatusCode)).Inc()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, fmt.Sprintf("http_status=%d", resp.StatusCode))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return resp, nil
}

func statusClass(code int) string {
	if code <= 0 {
		return "error"
	}
	return fmt.Sprintf("%dxx", code/100)
}
