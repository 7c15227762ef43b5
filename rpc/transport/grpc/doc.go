// Package grpc implements the RPC transport on top of gRPC.
//
// The server registers a single unary method, /hkv.CommandService/Execute, whose request and
// response messages are the frames produced by the configured rpc serializer. A raw codec
// (content-subtype "hkv-raw") moves these frames without encoding them a second time, so
// the same serializer can be used with every transport and no generated stubs are needed.
// When the proto serializer is used the bytes on the wire are exactly the Request and
// Response messages of api/abi.proto.
//
// Key Components:
//
//   - grpcServerTransport: Implements IRPCServerTransport with a grpc.Server. Close stops
//     the server gracefully, running calls are finished first.
//
//   - grpcClientTransport: Implements IRPCClientTransport. It holds one grpc.ClientConn per
//     endpoint, picks them round-robin and retries failed calls on the next endpoint.
//
// Thread-safety: Both transports are safe for concurrent use after Connect/Listen.
package grpc
