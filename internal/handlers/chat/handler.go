package chat

import (
	"io"
	"net/http"
	"strings"

	"chatproxy-go/internal/config"
	"chatproxy-go/internal/constants"
	common "chatproxy-go/internal/handlers/common"
	"chatproxy-go/internal/logging"
	"chatproxy-go/internal/monitoring"
	"chatproxy-go/internal/upstream"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Handler proxies chat requests to the selected vendor and relays the
// upstream event stream back to the caller untouched. It keeps no state
// across requests.
type Handler struct {
	cfg    *config.Config
	client *upstream.Client
}

func New(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg, client: upstream.New(cfg)}
}

// NewWithClient is used by tests to inject a client.
func NewWithClient(cfg *config.Config, client *upstream.Client) *Handler {
	return &Handler{cfg: cfg, client: client}
}

// Chat handles POST /api/chat. Request lifecycle:
// validate key and provider, build the upstream target, dispatch, then
// either relay the error payload with its original status or switch to
// SSE and pump bytes until the upstream stream ends or the caller leaves.
func (h *Handler) Chat(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		common.AbortWithError(c, http.StatusBadRequest, "invalid_request_error", "read request body: "+err.Error())
		return
	}
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		common.AbortWithError(c, http.StatusBadRequest, "invalid_request_error", "request body must be a JSON object")
		return
	}

	providerName := gjson.GetBytes(raw, "provider").String()
	c.Set("provider", providerName)
	c.Set("model", gjson.GetBytes(raw, "model").String())

	// Key resolution: the request header wins over configured fallbacks.
	// Both checks run before any upstream call is attempted.
	key := strings.TrimSpace(c.GetHeader("x-api-key"))
	if key == "" {
		key = strings.TrimSpace(h.cfg.KeyFor(providerName))
	}
	if key == "" {
		common.AbortWithError(c, http.StatusUnauthorized, "invalid_api_key", "API key not provided")
		return
	}

	provider, ok := upstream.ParseProvider(providerName)
	if !ok {
		common.AbortWithError(c, http.StatusBadRequest, "invalid_request_error", "unsupported provider: "+providerName)
		return
	}

	target, err := h.buildTarget(provider, key, raw)
	if err != nil {
		common.AbortWithError(c, http.StatusInternalServerError, "server_error", "build upstream request: "+err.Error())
		return
	}

	// The caller's request context propagates here, so a client disconnect
	// cancels the upstream call and releases its connection.
	resp, err := h.client.Do(c.Request.Context(), target)
	if err != nil {
		logging.WithReq(c, log.Fields{"provider": providerName, "error": err.Error()}).Warn("upstream unreachable")
		common.AbortWithError(c, http.StatusBadGateway, "upstream_error", "upstream request failed")
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		h.relayError(c, target.Provider, resp)
		return
	}

	h.relayStream(c, target.Provider, resp)
}

func (h *Handler) buildTarget(provider upstream.Provider, key string, raw []byte) (*upstream.Target, error) {
	switch provider {
	case upstream.ProviderGoogle:
		return upstream.GoogleTarget(h.cfg.GoogleBaseURL, key, raw)
	default:
		return upstream.OpenAITarget(h.cfg.OpenAIBaseURL, key, raw)
	}
}

// relayError passes an upstream error through with the original status code
// and the raw body, preserving vendor error semantics for the caller. The
// body is streamed without any size bound so it arrives intact regardless
// of how large the vendor makes it.
func (h *Handler) relayError(c *gin.Context, provider upstream.Provider, resp *http.Response) {
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	logging.WithReq(c, log.Fields{
		"provider": string(provider),
		"status":   resp.StatusCode,
	}).Info("relayed upstream error")

	c.Header("Content-Type", contentType)
	c.Status(resp.StatusCode)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		logging.WithReq(c, log.Fields{
			"provider": string(provider),
			"error":    err.Error(),
		}).Warn("error relay interrupted")
	}
}

// relayStream copies the upstream body to the caller chunk by chunk,
// flushing after each write so events arrive as they are produced. The
// bytes are not parsed or reframed. Once streaming has begun, a failure
// can only terminate the stream; no status can be signalled anymore.
func (h *Handler) relayStream(c *gin.Context, provider upstream.Provider, resp *http.Response) {
	defer resp.Body.Close()

	writer, flusher := common.PrepareSSE(c)

	var written int64
	buf := make([]byte, constants.RelayBufferSize)
	reason := "eof"
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := writer.Write(buf[:n]); writeErr != nil {
				reason = "client_gone"
				break
			}
			if flusher != nil {
				flusher.Flush()
			}
			written += int64(n)
		}
		if readErr != nil {
			if readErr != io.EOF {
				reason = "upstream_error"
				logging.WithReq(c, log.Fields{
					"provider":   string(provider),
					"bytes_sent": written,
					"error":      readErr.Error(),
				}).Warn("stream terminated")
			}
			break
		}
	}

	monitoring.RelayBytesTotal.WithLabelValues(string(provider)).Add(float64(written))
	monitoring.RelayDisconnectsTotal.WithLabelValues(string(provider), reason).Inc()
}
