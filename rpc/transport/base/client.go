package base

import (
	"fmt"
	"math/rand"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ValentinKolb/hKV/rpc/common"
	"github.com/ValentinKolb/hKV/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

var Logger = logger.GetLogger("transport/rpc")

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IClientConnector defines the interface for transport-specific connection operations
type IClientConnector interface {
	// Connect establishes a single connection to the endpoint
	Connect(endpoint string) (net.Conn, error)

	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string

	// UpgradeConnection applies protocol-specific settings to an established connection
	UpgradeConnection(conn net.Conn, config common.ClientConfig) error
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// responseResult contains the result of a request
type responseResult struct {
	data []byte
	err  error
}

// clientConnection represents a single net connection. A lost connection is
// re-established lazily by the next request that uses it.
type clientConnection struct {
	endpoint string
	parent   *clientTransport
	pending  *xsync.MapOf[uint64, chan responseResult]

	connMu sync.Mutex // Protects conn and serializes writes
	conn   net.Conn
}

// clientTransport implements the core client transport functionality
// independent of the specific transport medium (unix, tcp, etc.)
type clientTransport struct {
	connector     IClientConnector
	config        common.ClientConfig
	connections   []*clientConnection
	connectionsMu sync.RWMutex
	nextConnIndex uint64      // Atomic counter for Round Robin
	nextRequestID uint64      // Atomic counter for unique request IDs
	stopping      atomic.Bool // Signals shutdown
}

// -----------------------------------------------------------
// Transport Factory Method (used for tcp, unix, etc.)
// -----------------------------------------------------------

// NewBaseClientTransport creates a new base client transport with the specified connector
func NewBaseClientTransport(connector IClientConnector) transport.IRPCClientTransport {
	return &clientTransport{
		connector: connector,
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCClientTransport)
// --------------------------------------------------------------------------

func (t *clientTransport) Connect(config common.ClientConfig) error {
	if len(config.Endpoints) == 0 {
		return fmt.Errorf("no endpoints provided")
	}

	// Close all existing connections
	t.closeConnections()

	t.config = config
	t.stopping.Store(false)

	connectionsPerEP := config.Connections()
	connections := make([]*clientConnection, 0, len(config.Endpoints)*connectionsPerEP)
	connected := 0

	for _, endpoint := range config.Endpoints {
		for i := 0; i < connectionsPerEP; i++ {
			clientConn := &clientConnection{
				endpoint: endpoint,
				parent:   t,
				pending:  xsync.NewMapOf[uint64, chan responseResult](),
			}
			connections = append(connections, clientConn)

			// Establish the initial connection
			clientConn.connMu.Lock()
			_, err := clientConn.connectLocked()
			clientConn.connMu.Unlock()
			if err != nil {
				Logger.Warningf("Failed to connect to %s (connection %d/%d): %v", endpoint, i+1, connectionsPerEP, err)
				continue
			}
			connected++
			Logger.Debugf("Connected to %s (connection %d/%d)", endpoint, i+1, connectionsPerEP)
		}
	}

	if connected == 0 {
		for _, c := range connections {
			c.close()
		}
		return fmt.Errorf("failed to connect to any endpoint")
	}

	t.connectionsMu.Lock()
	t.connections = connections
	t.connectionsMu.Unlock()

	Logger.Infof("Connected to %d out of %d connections to %d endpoints using %s transport",
		connected, len(connections), len(config.Endpoints), t.connector.GetName())

	return nil
}

func (t *clientTransport) Send(req []byte) ([]byte, error) {
	// We always try at least once, and up to RetryCount times
	maxRetries := t.config.RetryCount
	if maxRetries < 1 {
		maxRetries = 1
	}

	// Initial backoff duration in milliseconds
	backoffMs := 50

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if t.stopping.Load() {
			return nil, fmt.Errorf("transport is closed")
		}

		conn := t.getNextConnection()
		if conn == nil {
			return nil, fmt.Errorf("no connections available")
		}

		data, err := conn.send(req)
		if err == nil {
			return data, nil
		}

		lastErr = err
		Logger.Debugf("Request attempt %d/%d failed: %v", i+1, maxRetries, err)

		if i < maxRetries-1 {
			// Exponential backoff with a small random jitter (+-10%)
			jitter := float64(backoffMs) * (0.9 + 0.2*rand.Float64())
			time.Sleep(time.Duration(jitter) * time.Millisecond)
			backoffMs *= 2
		}
	}

	return nil, fmt.Errorf("failed to send request after %d attempts: %w", maxRetries, lastErr)
}

func (t *clientTransport) Close() error {
	t.stopping.Store(true)
	t.closeConnections()
	return nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// getNextConnection selects the next connection via Round Robin
func (t *clientTransport) getNextConnection() *clientConnection {
	t.connectionsMu.RLock()
	defer t.connectionsMu.RUnlock()

	if len(t.connections) == 0 {
		return nil
	}
	if len(t.connections) == 1 {
		return t.connections[0]
	}
	index := atomic.AddUint64(&t.nextConnIndex, 1) % uint64(len(t.connections))
	return t.connections[index]
}

// closeConnections closes all active connections
func (t *clientTransport) closeConnections() {
	t.connectionsMu.Lock()
	defer t.connectionsMu.Unlock()

	for _, conn := range t.connections {
		conn.close()
	}
	t.connections = nil
}

// timeout returns the configured request timeout, 0 if there is none
func (t *clientTransport) timeout() time.Duration {
	return time.Duration(t.config.TimeoutSecond) * time.Second
}

// connectLocked returns the current connection or dials a new one.
// The caller must hold connMu.
func (c *clientConnection) connectLocked() (net.Conn, error) {
	if c.conn != nil {
		return c.conn, nil
	}
	if c.parent.stopping.Load() {
		return nil, fmt.Errorf("transport is closed")
	}

	conn, err := c.parent.connector.Connect(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.endpoint, err)
	}
	if err := c.parent.connector.UpgradeConnection(conn, c.parent.config); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to upgrade connection to %s: %w", c.endpoint, err)
	}

	c.conn = conn
	go c.readResponses(conn)
	return conn, nil
}

// drop closes conn if it is still the current connection and fails all pending requests
func (c *clientConnection) drop(conn net.Conn, cause error) {
	c.connMu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	c.connMu.Unlock()
	conn.Close()

	c.pending.Range(func(requestID uint64, respCh chan responseResult) bool {
		if ch, ok := c.pending.LoadAndDelete(requestID); ok {
			ch <- responseResult{err: cause}
		}
		return true
	})
}

// close closes the connection for good
func (c *clientConnection) close() {
	c.connMu.Lock()
	conn := c.conn
	c.connMu.Unlock()
	if conn != nil {
		c.drop(conn, fmt.Errorf("transport is closed"))
	}
}

// send writes one request and waits for its response
func (c *clientConnection) send(req []byte) ([]byte, error) {
	requestID := atomic.AddUint64(&c.parent.nextRequestID, 1)
	timeout := c.parent.timeout()

	// Register the request before writing, the response may arrive immediately
	respCh := make(chan responseResult, 1)
	c.pending.Store(requestID, respCh)
	defer c.pending.Delete(requestID)

	c.connMu.Lock()
	conn, err := c.connectLocked()
	if err == nil {
		if timeout > 0 {
			conn.SetWriteDeadline(time.Now().Add(timeout))
		}
		err = writeFrame(conn, requestID, req)
	}
	c.connMu.Unlock()

	if err != nil {
		if conn != nil {
			c.drop(conn, fmt.Errorf("write to %s failed: %w", c.endpoint, err))
		}
		return nil, err
	}

	// Wait for response or timeout
	var timeoutCh <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case result := <-respCh:
		return result.data, result.err
	case <-timeoutCh:
		return nil, fmt.Errorf("request %d timed out after %s", requestID, timeout)
	}
}

// readResponses reads responses from conn and distributes them to waiting requests.
// It returns when conn fails or is closed.
func (c *clientConnection) readResponses(conn net.Conn) {
	for {
		requestID, data, err := readFrame(conn, nil)
		if err != nil {
			if !c.parent.stopping.Load() {
				Logger.Warningf("Lost connection to %s: %v", c.endpoint, err)
			}
			c.drop(conn, fmt.Errorf("error reading response: %w", err))
			return
		}

		respCh, found := c.pending.LoadAndDelete(requestID)
		if !found {
			Logger.Warningf("Received response for unknown request ID %d", requestID)
			continue
		}
		respCh <- responseResult{data: data}
	}
}
