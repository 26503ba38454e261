package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallWithoutEndpoint(t *testing.T) {
	client := NewClient("")

	result := client.Call(context.Background(), map[string]string{"action": "login"})

	assert.Equal(t, KindConfig, result.Kind)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}

func TestCallSuccess(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"success":true,"person":"Adriana"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.Call(context.Background(), map[string]string{
		"action": "login",
		"person": "Luciano",
		"pin":    "1234",
	})

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "text/plain;charset=utf-8", gotContentType)
	assert.Equal(t, "login", gotBody["action"])

	assert.Equal(t, KindOK, result.Kind)
	assert.True(t, result.Success)
	assert.Equal(t, "Adriana", result.Person)
	require.NoError(t, result.Err())
}

func TestCallRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"PIN incorreto"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.Call(context.Background(), map[string]string{"action": "login"})

	assert.Equal(t, KindRemote, result.Kind)
	assert.Equal(t, "PIN incorreto", result.Message)
	require.Error(t, result.Err())
}

func TestCallMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>deploy page</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.Call(context.Background(), map[string]string{"action": "login"})

	assert.Equal(t, KindMalformed, result.Kind)
	assert.False(t, result.Success)
}

func TestCallTimeoutIsDistinctFromConnectivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.timeout = 50 * time.Millisecond

	result := client.Call(context.Background(), map[string]string{"action": "login"})
	assert.Equal(t, KindTimeout, result.Kind)

	// A dead endpoint fails with connectivity, not timeout.
	dead := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	result = NewClient(deadURL).Call(context.Background(), map[string]string{"action": "login"})
	assert.Equal(t, KindConnectivity, result.Kind)
}

func TestResultErrKinds(t *testing.T) {
	assert.NoError(t, Result{Kind: KindOK, Success: true}.Err())
	assert.Error(t, Result{Kind: KindConfig}.Err())
	assert.Error(t, Result{Kind: KindTimeout}.Err())
	assert.Error(t, Result{Kind: KindConnectivity}.Err())
	assert.Error(t, Result{Kind: KindMalformed}.Err())
	assert.Error(t, Result{Kind: KindRemote}.Err())
}
