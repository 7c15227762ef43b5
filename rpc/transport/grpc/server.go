package grpc

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/ValentinKolb/hKV/rpc/common"
	"github.com/ValentinKolb/hKV/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
	"google.golang.org/grpc"
)

var Logger = logger.GetLogger("transport/rpc")

const (
	serviceName = "hkv.CommandService"
	executeName = "/" + serviceName + "/Execute"
)

// commandServer is the handler type of the gRPC service description
type commandServer interface {
	Execute(ctx context.Context, req *frame) (*frame, error)
}

// serviceDesc describes the single unary method of the command service (see api/abi.proto).
// It is written by hand because requests and responses are opaque frames.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*commandServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Execute",
			Handler:    executeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/abi.proto",
}

func executeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(frame)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(commandServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: executeName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(commandServer).Execute(ctx, req.(*frame))
	}
	return interceptor(ctx, in, info, handler)
}

func NewGrpcServerTransport() transport.IRPCServerTransport {
	return &grpcServerTransport{}
}

type grpcServerTransport struct {
	handler transport.ServerHandleFunc

	mu     sync.Mutex // Protects server and closed
	server *grpc.Server
	closed bool
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCServerTransport)
// --------------------------------------------------------------------------

func (t *grpcServerTransport) RegisterHandler(handler transport.ServerHandleFunc) {
	t.handler = handler
}

func (t *grpcServerTransport) Listen(config common.ServerConfig) error {
	listener, err := net.Listen("tcp", config.Endpoint)
	if err != nil {
		return err
	}
	Logger.Infof("Starting gRPC server on %s", config.Endpoint)
	return t.serve(listener, time.Duration(config.TimeoutSecond)*time.Second)
}

func (t *grpcServerTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	if t.server != nil {
		t.server.GracefulStop()
	}
	return nil
}

// Execute implements commandServer
func (t *grpcServerTransport) Execute(_ context.Context, req *frame) (*frame, error) {
	return &frame{payload: t.handler(req.payload)}, nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// serve serves requests on the listener until Close is called
func (t *grpcServerTransport) serve(listener net.Listener, timeout time.Duration) error {
	opts := []grpc.ServerOption{grpc.ForceServerCodec(rawCodec{})}
	if timeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(timeout))
	}
	server := grpc.NewServer(opts...)
	server.RegisterService(&serviceDesc, t)

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return listener.Close()
	}
	t.server = server
	t.mu.Unlock()

	// Serve returns nil after GracefulStop
	return server.Serve(listener)
}
