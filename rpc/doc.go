// Package rpc provides the network layer of hKV. It moves command requests and responses
// between clients and a server running a service.Service.
//
// The package is organized into several subpackages:
//
//   - common: Configuration structures for servers and clients and the logger setup.
//
//   - transport: Network communication abstractions with pluggable implementations
//     (TCP, Unix sockets, HTTP, gRPC).
//
//   - serializer: Request and response serialization (JSON or the protobuf wire format
//     described in api/abi.proto).
//
//   - client: The RPC client with one method per command, plus a store.IStore adapter
//     that forwards storage calls to a remote server.
//
//   - server: Glues a service, a transport and a serializer together.
package rpc
