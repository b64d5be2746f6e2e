package upstream

import (
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Provider identifies a supported upstream vendor.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGoogle Provider = "google"
)

// API path constants. These define the contract with the upstream endpoints.
const (
	// PathOpenAIChat is the OpenAI-compatible chat completions endpoint.
	PathOpenAIChat = "/v1/chat/completions"
	// PathGooglePrefix is the Google Generative Language model prefix.
	// Append "<model>:streamGenerateContent" for streaming generation.
	PathGooglePrefix = "/v1beta/models/"
)

// ParseProvider validates a provider name from an incoming request.
func ParseProvider(s string) (Provider, bool) {
	switch Provider(s) {
	case ProviderOpenAI:
		return ProviderOpenAI, true
	case ProviderGoogle:
		return ProviderGoogle, true
	}
	return "", false
}

// Target is the fully resolved upstream call: URL, method, headers and body.
// It is derived deterministically from the inbound request and never stored.
type Target struct {
	Provider Provider
	Method   string
	URL      string
	Header   http.Header
	Body     []byte
}

// OpenAITarget builds the upstream call for the OpenAI-compatible vendor.
// The body is the inbound JSON minus the proxy-owned "provider" field with
// "stream" forced to true; every other field passes through byte-exact.
// Authentication travels in the Authorization header.
func OpenAITarget(baseURL, key string, raw []byte) (*Target, error) {
	body, err := sjson.DeleteBytes(raw, "provider")
	if err != nil {
		return nil, err
	}
	body, err = sjson.SetBytes(body, "stream", true)
	if err != nil {
		return nil, err
	}

	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	hdr.Set("Authorization", "Bearer "+key)

	return &Target{
		Provider: ProviderOpenAI,
		Method:   http.MethodPost,
		URL:      baseURL + PathOpenAIChat,
		Header:   hdr,
		Body:     body,
	}, nil
}

// GoogleTarget builds the upstream call for the Google Generative Language
// vendor. Authentication travels in the URL query string, and streaming is
// requested with alt=sse. The body is the inbound JSON minus the
// proxy-owned fields (provider, model, messages): the caller is expected to
// supply Google's "contents" payload directly, and the proxy performs no
// format translation.
func GoogleTarget(baseURL, key string, raw []byte) (*Target, error) {
	model := gjson.GetBytes(raw, "model").String()

	body := raw
	var err error
	for _, field := range []string{"provider", "model", "messages"} {
		body, err = sjson.DeleteBytes(body, field)
		if err != nil {
			return nil, err
		}
	}

	q := url.Values{}
	q.Set("key", key)
	q.Set("alt", "sse")

	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")

	return &Target{
		Provider: ProviderGoogle,
		Method:   http.MethodPost,
		URL:      baseURL + PathGooglePrefix + url.PathEscape(model) + ":streamGenerateContent?" + q.Encode(),
		Header:   hdr,
		Body:     body,
	}, nil
}
