package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/VictoriaMetrics/metrics"
	"github.com/ValentinKolb/hKV/rpc/common"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st := &httpServerTransport{}
	st.RegisterHandler(func(req []byte) []byte {
		return append([]byte("echo:"), req...)
	})
	server := httptest.NewServer(st.newMux())
	t.Cleanup(server.Close)
	return server
}

func TestSendReceive(t *testing.T) {
	server := newTestServer(t)

	client := NewHttpClientTransport()
	if err := client.Connect(common.ClientConfig{Endpoints: []string{server.URL}, TimeoutSecond: 5}); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer client.Close()

	resp, err := client.Send([]byte("ping"))
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if string(resp) != "echo:ping" {
		t.Errorf("Expected 'echo:ping', got %q", resp)
	}
}

func TestRequestIDHeader(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+ExecutePath, "application/octet-stream", bytes.NewReader([]byte("x")))
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Error("Expected a generated request id")
	}

	req, _ := http.NewRequest(http.MethodPost, server.URL+ExecutePath, bytes.NewReader([]byte("x")))
	req.Header.Set(RequestIDHeader, "abc")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp2.Body.Close()
	if got := resp2.Header.Get(RequestIDHeader); got != "abc" {
		t.Errorf("Expected request id 'abc' to be kept, got %q", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t)
	metrics.GetOrCreateCounter(`hkv_http_test_total`).Inc()

	resp, err := http.Get(server.URL + MetricsPath)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "hkv_http_test_total 1") {
		t.Errorf("Expected test counter in metrics output, got:\n%s", body)
	}
}

func TestWrongMethod(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + ExecutePath)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", resp.StatusCode)
	}
}

func TestExecuteURL(t *testing.T) {
	testCases := map[string]string{
		"localhost:8080":         "http://localhost:8080/execute",
		"http://localhost:8080/": "http://localhost:8080/execute",
		"https://kv.example.com": "https://kv.example.com/execute",
	}
	for in, want := range testCases {
		if got := executeURL(in); got != want {
			t.Errorf("executeURL(%q) = %q, want %q", in, got, want)
		}
	}
}
