package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatproxy-go/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestClientDo(t *testing.T) {
	var gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("data: {}\n\n"))
	}))
	defer srv.Close()

	cli := New(config.Default())
	target := &Target{
		Provider: ProviderOpenAI,
		Method:   http.MethodPost,
		URL:      srv.URL + PathOpenAIChat,
		Header:   http.Header{"Authorization": []string{"Bearer k"}},
		Body:     []byte(`{"model":"gpt-4o"}`),
	}

	resp, err := cli.Do(context.Background(), target)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer k", gotAuth)
	assert.Equal(t, `{"model":"gpt-4o"}`, gotBody)
}

func TestClientDo_TransportError(t *testing.T) {
	cli := New(config.Default())
	target := &Target{
		Provider: ProviderOpenAI,
		Method:   http.MethodPost,
		// Port 1 is essentially never listening locally.
		URL:  "http://127.0.0.1:1",
		Body: []byte(`{}`),
	}

	resp, err := cli.Do(context.Background(), target)
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestClientDo_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cli := New(config.Default())
	_, err := cli.Do(ctx, &Target{Provider: ProviderGoogle, Method: http.MethodPost, URL: srv.URL, Body: []byte(`{}`)})
	assert.Error(t, err)
}
