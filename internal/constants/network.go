package constants

import "time"

// HTTP client connection pool settings. Streaming responses hold a
// connection for their whole lifetime, so the pool is sized generously.
const (
	BaseMaxIdleConns        = 2048
	BaseMaxIdleConnsPerHost = 2048
	BaseIdleConnTimeout     = 90 * time.Second

	DefaultKeepAlive = 30 * time.Second
)
