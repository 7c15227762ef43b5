package server

import (
	"errors"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/ValentinKolb/hKV/lib/command"
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/service"
	"github.com/ValentinKolb/hKV/rpc/common"
	"github.com/ValentinKolb/hKV/rpc/serializer"
	"github.com/ValentinKolb/hKV/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("rpc")

// NewRPCServer creates a new RPC server.
// The server decodes every request with the serializer, lets the service execute it and
// sends the encoded response back through the transport.
//
// Usage:
//
//	s := server.NewRPCServer(
//		config,
//		service.New(memstore.NewMemStore()),
//		tcp.NewTCPDefaultServerTransport(),
//		serializer.NewProtoSerializer(),
//	)
//
//	if err := s.Serve(); err != nil {
//		panic(err)
//	}
func NewRPCServer(
	config common.ServerConfig,
	svc service.Service,
	transport transport.IRPCServerTransport,
	serializer serializer.IRPCSerializer,
) *RPCServer {
	// https://github.com/golang/go/issues/17393
	if runtime.GOOS == "darwin" {
		signal.Ignore(syscall.Signal(0xd))
	}

	Logger.Infof("Created RPC Server")
	Logger.Infof(config.String())

	return &RPCServer{
		config:     config,
		service:    svc,
		transport:  transport,
		serializer: serializer,
	}
}

// RPCServer connects a service.Service to a transport.
//
// Thread-safety: Handle may be called concurrently, the service itself is safe for
// concurrent use. Serve must only be called once.
type RPCServer struct {
	config     common.ServerConfig
	service    service.Service
	transport  transport.IRPCServerTransport
	serializer serializer.IRPCSerializer
}

// Serve registers the request handler and serves requests until Close is called
func (s *RPCServer) Serve() error {
	s.transport.RegisterHandler(s.Handle)
	return s.transport.Listen(s.config)
}

// Close stops the transport
func (s *RPCServer) Close() error {
	return s.transport.Close()
}

// Handle processes a single serialized request and returns the serialized response.
// Requests that cannot be decoded are answered with a decode error response (status 500).
func (s *RPCServer) Handle(req []byte) []byte {
	var resp command.CommandResponse

	var cmd command.CommandRequest
	if err := s.serializer.DeserializeRequest(req, &cmd); err != nil {
		Logger.Warningf("Failed to decode request: %v", err)
		resp = command.ErrorResponse(asDecodeError(err))
	} else {
		resp = s.service.Execute(cmd)
	}

	b, err := s.serializer.SerializeResponse(resp)
	if err != nil {
		Logger.Errorf("Failed to encode response %s: %v", resp, err)
		b, err = s.serializer.SerializeResponse(command.ErrorResponse(kv.EncodeError(err)))
		if err != nil {
			Logger.Errorf("Failed to encode error response: %v", err)
			return nil
		}
	}
	return b
}

// asDecodeError makes sure err carries the decode error code
func asDecodeError(err error) error {
	var kvErr *kv.Error
	if errors.As(err, &kvErr) && kvErr.Code == kv.ErrCDecode {
		return err
	}
	return kv.DecodeError(err)
}
