package netutil

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIPString returns the caller's IP as text, or "" when none can
// be determined. Used for rate-limit bucketing of keyless requests.
func ClientIPString(c *gin.Context) string {
	if c == nil {
		return ""
	}
	ip := extractIP(c.Request)
	if ip == nil {
		return ""
	}
	return ip.String()
}

// extractIP prefers proxy headers over the socket address so buckets
// stay per-caller behind a reverse proxy.
func extractIP(r *http.Request) net.IP {
	if r == nil {
		return nil
	}
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		first := strings.TrimSpace(strings.SplitN(xf, ",", 2)[0])
		if ip := net.ParseIP(first); ip != nil {
			return ip
		}
	}
	if xr := r.Header.Get("X-Real-IP"); xr != "" {
		if ip := net.ParseIP(strings.TrimSpace(xr)); ip != nil {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		host = strings.TrimSpace(r.RemoteAddr)
	}
	return net.ParseIP(host)
}
