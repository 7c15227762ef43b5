package client

import (
	"fmt"

	"github.com/ValentinKolb/hKV/lib/command"
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/rpc/common"
	"github.com/ValentinKolb/hKV/rpc/serializer"
	"github.com/ValentinKolb/hKV/rpc/transport"
)

// NewRPCClient connects the transport and returns a client for an hKV server.
func NewRPCClient(
	config common.ClientConfig,
	transport transport.IRPCClientTransport,
	serializer serializer.IRPCSerializer,
) (*Client, error) {
	if err := transport.Connect(config); err != nil {
		return nil, err
	}
	return &Client{
		config:     config,
		transport:  transport,
		serializer: serializer,
	}, nil
}

// Client sends commands to an hKV server.
//
// Execute returns the raw response of any command. The typed methods (Hget, Hset, ...)
// return the payload of a successful response and a *ResponseError otherwise.
//
// Thread-safety: A Client is safe for concurrent use if its transport is.
type Client struct {
	config     common.ClientConfig
	transport  transport.IRPCClientTransport
	serializer serializer.IRPCSerializer
}

// Execute sends the request and returns the response of the server
func (c *Client) Execute(req command.CommandRequest) (command.CommandResponse, error) {
	return invokeRPCRequest(req, c.transport, c.serializer)
}

// Close closes the transport
func (c *Client) Close() error {
	return c.transport.Close()
}

// --------------------------------------------------------------------------
// Typed Commands
// --------------------------------------------------------------------------

// Hget returns the value of the key. Missing keys are reported as a 404 *ResponseError,
// see IsNotFound.
func (c *Client) Hget(table, key string) (kv.Value, error) {
	return c.value(command.NewHget(table, key))
}

// Hmget returns one value per key, the default value for missing keys
func (c *Client) Hmget(table string, keys []string) ([]kv.Value, error) {
	return c.values(command.NewHmget(table, keys))
}

// Hgetall returns all pairs of the table sorted by key
func (c *Client) Hgetall(table string) ([]kv.Pair, error) {
	resp, err := c.Execute(command.NewHgetall(table))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return resp.Pairs, nil
}

// Hset stores the value and returns the previous one (the default value if there was none)
func (c *Client) Hset(table, key string, value kv.Value) (kv.Value, error) {
	return c.value(command.NewHset(table, key, value))
}

// Hmset stores all pairs and returns the previous values in request order
func (c *Client) Hmset(table string, pairs []kv.Pair) ([]kv.Value, error) {
	return c.values(command.NewHmset(table, pairs))
}

// Hdel removes the key and returns the removed value (the default value if there was none)
func (c *Client) Hdel(table, key string) (kv.Value, error) {
	return c.value(command.NewHdel(table, key))
}

// Hmdel removes all keys and returns the removed values in request order
func (c *Client) Hmdel(table string, keys []string) ([]kv.Value, error) {
	return c.values(command.NewHmdel(table, keys))
}

// Hexists reports whether the key exists
func (c *Client) Hexists(table, key string) (bool, error) {
	v, err := c.value(command.NewHexists(table, key))
	if err != nil {
		return false, err
	}
	return v.AsBool()
}

// Hmexists reports for each key whether it exists
func (c *Client) Hmexists(table string, keys []string) ([]bool, error) {
	values, err := c.values(command.NewHmexists(table, keys))
	if err != nil {
		return nil, err
	}
	result := make([]bool, len(values))
	for i, v := range values {
		// a key whose check failed on the server is reported as absent
		if v.IsNone() {
			continue
		}
		if result[i], err = v.AsBool(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

func (c *Client) value(req command.CommandRequest) (kv.Value, error) {
	resp, err := c.Execute(req)
	if err != nil {
		return kv.Value{}, err
	}
	return singleValue(resp)
}

func (c *Client) values(req command.CommandRequest) ([]kv.Value, error) {
	resp, err := c.Execute(req)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// String returns the client configuration
func (c *Client) String() string {
	return fmt.Sprintf("hKV client%s", c.config.String())
}
