package base

import (
	"bytes"
	"fmt"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ValentinKolb/hKV/rpc/common"
)

// --------------------------------------------------------------------------
// Test connectors (unix sockets)
// --------------------------------------------------------------------------

type testServerConnector struct{}

func (testServerConnector) GetName() string { return "test" }

func (testServerConnector) Listen(config common.ServerConfig) (net.Listener, error) {
	return net.Listen("unix", config.Endpoint)
}

type testClientConnector struct{}

func (testClientConnector) GetName() string { return "test" }

func (testClientConnector) Connect(endpoint string) (net.Conn, error) {
	return net.Dial("unix", endpoint)
}

func (testClientConnector) UpgradeConnection(net.Conn, common.ClientConfig) error { return nil }

// startServer starts an echo server that prefixes every request with "echo:"
func startServer(t *testing.T, workers int) string {
	t.Helper()
	socket := filepath.Join(t.TempDir(), "hkv.sock")

	server := NewBaseServerTransport(testServerConnector{}, 1024)
	server.RegisterHandler(func(req []byte) []byte {
		return append([]byte("echo:"), req...)
	})

	done := make(chan error, 1)
	go func() {
		done <- server.Listen(common.ServerConfig{Endpoint: socket, TimeoutSecond: 5, WorkersPerConn: workers})
	}()
	t.Cleanup(func() {
		server.Close()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Listen returned error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("Server did not stop after Close")
		}
	})

	// Wait until the socket accepts connections
	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, err := net.Dial("unix", socket)
		if err == nil {
			conn.Close()
			return socket
		}
		if time.Now().After(deadline) {
			t.Fatalf("Server did not start: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// --------------------------------------------------------------------------
// Tests
// --------------------------------------------------------------------------

func TestFrameRoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	payloads := [][]byte{[]byte("hello"), {}, bytes.Repeat([]byte{7}, 4096)}

	go func() {
		for i, p := range payloads {
			if err := writeFrame(client, uint64(i+1), p); err != nil {
				t.Errorf("writeFrame failed: %v", err)
				return
			}
		}
	}()

	// a small buffer forces the allocation path for large payloads
	buf := make([]byte, 16)
	for i, want := range payloads {
		requestID, data, err := readFrame(server, buf)
		if err != nil {
			t.Fatalf("readFrame failed: %v", err)
		}
		if requestID != uint64(i+1) {
			t.Errorf("Expected request ID %d, got %d", i+1, requestID)
		}
		if !bytes.Equal(data, want) {
			t.Errorf("Expected payload of %d bytes, got %d bytes", len(want), len(data))
		}
	}
}

func TestSendReceive(t *testing.T) {
	socket := startServer(t, 4)

	client := NewBaseClientTransport(testClientConnector{})
	if err := client.Connect(common.ClientConfig{Endpoints: []string{socket}, TimeoutSecond: 5, RetryCount: 2, ConnectionsPerEndpoint: 2}); err != nil {
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

func TestConcurrentRequestsAreCorrelated(t *testing.T) {
	socket := startServer(t, 8)

	client := NewBaseClientTransport(testClientConnector{})
	if err := client.Connect(common.ClientConfig{Endpoints: []string{socket}, TimeoutSecond: 5}); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer client.Close()

	const numWorkers = 16
	const requestsPerWorker = 50

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func(workerId int) {
			defer wg.Done()
			for i := 0; i < requestsPerWorker; i++ {
				req := fmt.Sprintf("w%d-r%d", workerId, i)
				resp, err := client.Send([]byte(req))
				if err != nil {
					t.Errorf("Send failed: %v", err)
					return
				}
				if string(resp) != "echo:"+req {
					t.Errorf("Expected response for %q, got %q", req, resp)
					return
				}
			}
		}(w)
	}
	wg.Wait()
}

func TestConnectFailsWithoutServer(t *testing.T) {
	client := NewBaseClientTransport(testClientConnector{})
	err := client.Connect(common.ClientConfig{Endpoints: []string{filepath.Join(t.TempDir(), "missing.sock")}})
	if err == nil {
		client.Close()
		t.Fatal("Expected Connect to fail without a server")
	}

	if err := client.Connect(common.ClientConfig{}); err == nil {
		t.Error("Expected Connect to fail without endpoints")
	}
}

func TestSendAfterClose(t *testing.T) {
	socket := startServer(t, 1)

	client := NewBaseClientTransport(testClientConnector{})
	if err := client.Connect(common.ClientConfig{Endpoints: []string{socket}, TimeoutSecond: 5}); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	client.Close()

	if _, err := client.Send([]byte("ping")); err == nil {
		t.Error("Expected Send to fail after Close")
	}
}
