package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// RPC server configuration struct
// --------------------------------------------------------------------------

// ServerConfig holds all configuration parameters of an hKV server.
type ServerConfig struct {
	// Endpoint the transport listens on (host:port for tcp, http and grpc, a path for unix)
	Endpoint string

	// TimeoutSecond is the read/write deadline of a single connection round trip
	TimeoutSecond int64

	// WorkersPerConn limits the number of requests processed concurrently per connection
	WorkersPerConn int

	// Metrics enables the VictoriaMetrics store decorator
	Metrics bool

	// StatsIntervalSecond is the interval of the periodic statistics log, 0 disables it
	StatsIntervalSecond int64

	LogLevel string
}

// String renders the configuration as an aligned, sectioned table for the startup log.
func (c *ServerConfig) String() string {
	var w configWriter

	w.section("RPC Server")
	w.field("Endpoint", c.Endpoint)
	w.field("Timeout", seconds(c.TimeoutSecond))
	w.field("Workers Per Conn", strconv.Itoa(c.Workers()))

	w.section("Observability")
	w.field("Store Metrics", strconv.FormatBool(c.Metrics))
	if c.StatsIntervalSecond > 0 {
		w.field("Stats Interval", seconds(c.StatsIntervalSecond))
	} else {
		w.field("Stats Interval", "disabled")
	}

	w.section("Logging")
	w.field("Log Level", c.LogLevel)

	return w.String()
}

// Workers returns the number of workers per connection, at least 1.
func (c *ServerConfig) Workers() int {
	return max(1, c.WorkersPerConn)
}

// --------------------------------------------------------------------------
// RPC client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds the settings shared by all client transports.
type ClientConfig struct {
	Endpoints              []string
	TimeoutSecond          int
	RetryCount             int
	ConnectionsPerEndpoint int
}

// String renders the client configuration in the same layout as ServerConfig.String.
func (c *ClientConfig) String() string {
	var w configWriter

	w.section("Client Configuration")
	w.field("Timeout", seconds(int64(c.TimeoutSecond)))
	w.field("Retry Count", strconv.Itoa(c.RetryCount))
	w.field("Connections Per Endpoint", strconv.Itoa(c.Connections()))

	w.section("Endpoints")
	for i, endpoint := range c.Endpoints {
		w.field(strconv.Itoa(i), endpoint)
	}

	return w.String()
}

// Connections returns the number of connections per endpoint, at least 1.
func (c *ClientConfig) Connections() int {
	return max(1, c.ConnectionsPerEndpoint)
}

// --------------------------------------------------------------------------
// Formatting helpers
// --------------------------------------------------------------------------

// configWriter builds the upper-case section headers and indented name/value rows
// used by the config printers.
type configWriter struct {
	strings.Builder
}

func (w *configWriter) section(title string) {
	fmt.Fprintf(w, "\n%s\n", strings.ToUpper(title))
}

func (w *configWriter) field(name, value string) {
	fmt.Fprintf(w, "  %-24s: %s\n", name, value)
}

func seconds(n int64) string {
	return fmt.Sprintf("%d sec", n)
}
