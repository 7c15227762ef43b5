// Package server glues the hKV command service to the RPC layer.
//
// An RPCServer owns a service.Service, a transport and a serializer. For every request the
// transport receives, the server:
//
//  1. decodes the bytes into a command.CommandRequest,
//  2. runs it through service.Service.Execute (hooks plus dispatch),
//  3. encodes the command.CommandResponse and hands it back to the transport.
//
// Requests that cannot be decoded never reach the service; they are answered with a
// response carrying status 500 and the message "Failed to decode protobuf message: ...".
// A response that cannot be encoded is replaced by an encode error response.
//
// Usage Example:
//
//	svc := service.NewBuilder(memstore.NewMemStore()).
//	  Use(service.LogHooks{}).
//	  Build()
//
//	s := server.NewRPCServer(
//	  common.ServerConfig{Endpoint: "0.0.0.0:8080", TimeoutSecond: 5, LogLevel: "info"},
//	  svc,
//	  tcp.NewTCPDefaultServerTransport(),
//	  serializer.NewProtoSerializer(),
//	)
//
//	if err := s.Serve(); err != nil {
//	  log.Fatalf("Server error: %v", err)
//	}
package server
