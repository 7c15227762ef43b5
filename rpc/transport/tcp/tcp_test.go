package tcp

import (
	"net"
	"testing"
	"time"

	"github.com/ValentinKolb/hKV/rpc/common"
)

// freeAddr reserves a loopback port and releases it for the server under test.
func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to reserve port: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()
	return addr
}

func TestSendReceive(t *testing.T) {
	addr := freeAddr(t)

	st := NewTCPDefaultServerTransport()
	st.RegisterHandler(func(req []byte) []byte { return append([]byte("tcp:"), req...) })

	done := make(chan error, 1)
	go func() {
		done <- st.Listen(common.ServerConfig{Endpoint: addr, TimeoutSecond: 5})
	}()

	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			_ = conn.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Server did not start listening")
		}
		time.Sleep(10 * time.Millisecond)
	}

	ct := NewTCPClientTransport()
	if err := ct.Connect(common.ClientConfig{Endpoints: []string{addr}, TimeoutSecond: 5}); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	for _, msg := range []string{"a", "bc", ""} {
		resp, err := ct.Send([]byte(msg))
		if err != nil || string(resp) != "tcp:"+msg {
			t.Errorf("Send(%q) = %q, %v", msg, resp, err)
		}
	}
	_ = ct.Close()

	if err := st.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := <-done; err != nil {
		t.Errorf("Listen returned error: %v", err)
	}
}

func TestUpgradeConnection(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	defer l.Close()
	go func() {
		if c, err := l.Accept(); err == nil {
			_ = c.Close()
		}
	}()

	c := &clientConnector{}
	conn, err := c.Connect(l.Addr().String())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer conn.Close()
	if err := c.UpgradeConnection(conn, common.ClientConfig{}); err != nil {
		t.Errorf("UpgradeConnection failed: %v", err)
	}

	// non-TCP connections are left alone
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()
	if err := c.UpgradeConnection(a, common.ClientConfig{}); err != nil {
		t.Errorf("Expected no error for pipe connection, got %v", err)
	}
}
