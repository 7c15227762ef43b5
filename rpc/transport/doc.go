// Package transport defines the interfaces and abstractions for RPC communication
// in hKV. It provides a common contract that all transport implementations must
// fulfill, enabling protocol-agnostic communication.
//
// Transports only move bytes: the serialized command.CommandRequest to the server and
// the serialized command.CommandResponse back. Serialization is done by the rpc/server
// and rpc/client packages.
//
// Key Components:
//
//   - IRPCClientTransport: Interface for client-side transport implementations that
//     handles connection management and request sending.
//
//   - IRPCServerTransport: Interface for server-side transport implementations that
//     receives requests and passes them to the registered handler.
//
//   - ServerHandleFunc: Function type for request handling callbacks.
//
// Implementations:
//
//   - base: Framed request/response protocol over any stream connection
//   - tcp, unix: Connectors for the base transport
//   - http: One POST request per command, plus a Prometheus /metrics endpoint
//   - grpc: A unary gRPC method carrying the serialized messages
package transport
