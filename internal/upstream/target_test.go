package upstream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestParseProvider(t *testing.T) {
	if p, ok := ParseProvider("openai"); !ok || p != ProviderOpenAI {
		t.Errorf("Expected openai provider, got %q ok=%v", p, ok)
	}
	if p, ok := ParseProvider("google"); !ok || p != ProviderGoogle {
		t.Errorf("Expected google provider, got %q ok=%v", p, ok)
	}
	for _, bad := range []string{"", "anthropic", "OPENAI"} {
		if _, ok := ParseProvider(bad); ok {
			t.Errorf("Expected %q to be rejected", bad)
		}
	}
}

func TestOpenAITarget(t *testing.T) {
	raw := []byte(`{"provider":"openai","model":"gpt-4o","messages":[{"role":"user","content":"hi"}],"temperature":0.5}`)

	target, err := OpenAITarget("https://api.openai.com", "sk-test", raw)
	assert.NoError(t, err)

	assert.Equal(t, "POST", target.Method)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", target.URL)
	assert.Equal(t, "Bearer sk-test", target.Header.Get("Authorization"))
	assert.Equal(t, "application/json", target.Header.Get("Content-Type"))

	body := string(target.Body)
	assert.False(t, gjson.Get(body, "provider").Exists(), "provider field must be stripped")
	assert.True(t, gjson.Get(body, "stream").Bool(), "stream must be forced true")
	assert.Equal(t, "gpt-4o", gjson.Get(body, "model").String())
	assert.Equal(t, "hi", gjson.Get(body, "messages.0.content").String())
	// Passthrough fields survive untouched
	assert.Equal(t, 0.5, gjson.Get(body, "temperature").Float())
}

func TestOpenAITarget_StreamOverridden(t *testing.T) {
	raw := []byte(`{"provider":"openai","model":"gpt-4o","messages":[],"stream":false}`)

	target, err := OpenAITarget("https://api.openai.com", "sk-test", raw)
	assert.NoError(t, err)
	assert.True(t, gjson.GetBytes(target.Body, "stream").Bool())
}

func TestGoogleTarget(t *testing.T) {
	raw := []byte(`{"provider":"google","model":"gemini-pro","contents":[{"parts":[{"text":"hi"}]}]}`)

	target, err := GoogleTarget("https://generativelanguage.googleapis.com", "g-key", raw)
	assert.NoError(t, err)

	assert.Contains(t, target.URL, "models/gemini-pro:streamGenerateContent")
	assert.Contains(t, target.URL, "alt=sse")
	assert.Contains(t, target.URL, "key=g-key")
	assert.Empty(t, target.Header.Get("Authorization"), "google auth travels in the query string")

	body := string(target.Body)
	assert.False(t, gjson.Get(body, "provider").Exists())
	assert.False(t, gjson.Get(body, "model").Exists())
	assert.Equal(t, "hi", gjson.Get(body, "contents.0.parts.0.text").String())
}

func TestGoogleTarget_StripsMessages(t *testing.T) {
	raw := []byte(`{"provider":"google","model":"gemini-pro","messages":[{"role":"user"}],"contents":[]}`)

	target, err := GoogleTarget("https://generativelanguage.googleapis.com", "g-key", raw)
	assert.NoError(t, err)
	assert.False(t, gjson.GetBytes(target.Body, "messages").Exists())
	assert.True(t, gjson.GetBytes(target.Body, "contents").Exists())
}

func TestGoogleTarget_EscapesKey(t *testing.T) {
	raw := []byte(`{"provider":"google","model":"gemini-pro"}`)

	target, err := GoogleTarget("https://generativelanguage.googleapis.com", "k&e y", raw)
	assert.NoError(t, err)
	assert.False(t, strings.Contains(target.URL, "k&e y"), "key must be query-escaped")
}
