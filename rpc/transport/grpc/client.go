package grpc

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ValentinKolb/hKV/rpc/common"
	"github.com/ValentinKolb/hKV/rpc/transport"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func NewGrpcClientTransport() transport.IRPCClientTransport {
	return &grpcClientTransport{}
}

type grpcClientTransport struct {
	conns      []*grpc.ClientConn
	counter    uint32
	timeout    time.Duration
	retryCount int
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCClientTransport)
// --------------------------------------------------------------------------

func (t *grpcClientTransport) Connect(config common.ClientConfig) error {
	if len(config.Endpoints) == 0 {
		return fmt.Errorf("no endpoints provided")
	}

	conns := make([]*grpc.ClientConn, 0, len(config.Endpoints))
	for _, endpoint := range config.Endpoints {
		// NewClient does not dial, the connection is established on the first call
		conn, err := grpc.NewClient(endpoint,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithDefaultCallOptions(grpc.ForceCodec(rawCodec{})),
		)
		if err != nil {
			for _, c := range conns {
				_ = c.Close()
			}
			return fmt.Errorf("grpc client: create connection to %s: %w", endpoint, err)
		}
		conns = append(conns, conn)
	}

	t.conns = conns
	t.counter = 0
	t.timeout = time.Duration(config.TimeoutSecond) * time.Second
	t.retryCount = max(1, config.RetryCount)
	return nil
}

func (t *grpcClientTransport) Send(req []byte) ([]byte, error) {
	if len(t.conns) == 0 {
		return nil, fmt.Errorf("grpc transport not initialized")
	}

	var lastErr error
	for i := 0; i < t.retryCount; i++ {
		idx := atomic.AddUint32(&t.counter, 1) % uint32(len(t.conns))

		resp, err := t.invoke(t.conns[idx], req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		Logger.Debugf("gRPC attempt %d/%d to %s failed: %v", i+1, t.retryCount, t.conns[idx].Target(), err)
	}

	return nil, fmt.Errorf("failed to send request after %d attempts: %w", t.retryCount, lastErr)
}

func (t *grpcClientTransport) Close() error {
	var firstErr error
	for _, conn := range t.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	t.conns = nil
	return firstErr
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// invoke performs a single unary call
func (t *grpcClientTransport) invoke(conn *grpc.ClientConn, req []byte) ([]byte, error) {
	ctx := context.Background()
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	out := new(frame)
	if err := conn.Invoke(ctx, executeName, &frame{payload: req}, out); err != nil {
		return nil, err
	}
	return out.payload, nil
}
