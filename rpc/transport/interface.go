package transport

import (
	"github.com/ValentinKolb/hKV/rpc/common"
)

// --------------------------------------------------------------------------
// Server Transport
// --------------------------------------------------------------------------

// ServerHandleFunc is a function type that handles incoming requests.
// This function is called by a server transport layer when a request is received.
// It takes the serialized request and returns the serialized response.
type ServerHandleFunc func(req []byte) (resp []byte)

// IRPCServerTransport is the interface for the RPC transport layer
type IRPCServerTransport interface {
	// RegisterHandler registers a handler for the transport layer.
	// This handler is called for every received request.
	RegisterHandler(handler ServerHandleFunc)
	// Listen starts the transport layer and serves requests until Close is called.
	// It returns nil after Close and an error if the transport could not be started.
	Listen(config common.ServerConfig) error
	// Close stops listening. Requests that are already being processed are finished.
	Close() error
}

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IRPCClientTransport is the interface for the RPC client transport
type IRPCClientTransport interface {
	// Connect initializes the transport with the given configuration
	Connect(config common.ClientConfig) error
	// Send sends a request to the server and returns the response
	Send(req []byte) (resp []byte, err error)
	// Close closes the transport connection
	Close() error
}
