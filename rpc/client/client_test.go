package client

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/ValentinKolb/hKV/lib/command"
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/service"
	"github.com/ValentinKolb/hKV/lib/store"
	"github.com/ValentinKolb/hKV/lib/store/memstore"
	"github.com/ValentinKolb/hKV/lib/store/storetesting"
	"github.com/ValentinKolb/hKV/rpc/common"
	"github.com/ValentinKolb/hKV/rpc/serializer"
	"github.com/ValentinKolb/hKV/rpc/server"
	"github.com/ValentinKolb/hKV/rpc/transport/unix"
)

// loopbackTransport hands requests directly to an in-process server
type loopbackTransport struct {
	srv    *server.RPCServer
	broken bool
}

func (l *loopbackTransport) Connect(common.ClientConfig) error { return nil }

func (l *loopbackTransport) Send(req []byte) ([]byte, error) {
	if l.broken {
		return nil, errors.New("connection reset")
	}
	return l.srv.Handle(req), nil
}

func (l *loopbackTransport) Close() error { return nil }

func newLoopbackClient(t *testing.T, s serializer.IRPCSerializer) (*Client, *loopbackTransport) {
	t.Helper()
	srv := server.NewRPCServer(common.ServerConfig{}, service.New(memstore.NewMemStore()), nil, s)
	lt := &loopbackTransport{srv: srv}
	c, err := NewRPCClient(common.ClientConfig{Endpoints: []string{"loopback"}}, lt, s)
	if err != nil {
		t.Fatalf("NewRPCClient failed: %v", err)
	}
	return c, lt
}

func TestTypedCommands(t *testing.T) {
	c, _ := newLoopbackClient(t, serializer.NewProtoSerializer())

	prev, err := c.Hset("score", "u1", kv.Int(10))
	if err != nil || !prev.IsNone() {
		t.Fatalf("Hset() = %s, %v", prev, err)
	}

	if _, err := c.Hget("score", "u2"); !IsNotFound(err) {
		t.Errorf("Expected not found error, got %v", err)
	}

	prevs, err := c.Hmset("score", []kv.Pair{kv.NewPair("u1", kv.Int(6)), kv.NewPair("u2", kv.Int(8))})
	if err != nil {
		t.Fatalf("Hmset failed: %v", err)
	}
	if want := []kv.Value{kv.Int(10), {}}; !reflect.DeepEqual(prevs, want) {
		t.Errorf("Expected %v, got %v", want, prevs)
	}

	values, err := c.Hmget("score", []string{"u2", "u9", "u1"})
	if err != nil {
		t.Fatalf("Hmget failed: %v", err)
	}
	if want := []kv.Value{kv.Int(8), {}, kv.Int(6)}; !reflect.DeepEqual(values, want) {
		t.Errorf("Expected %v, got %v", want, values)
	}

	pairs, err := c.Hgetall("score")
	if err != nil {
		t.Fatalf("Hgetall failed: %v", err)
	}
	if want := []kv.Pair{kv.NewPair("u1", kv.Int(6)), kv.NewPair("u2", kv.Int(8))}; !reflect.DeepEqual(pairs, want) {
		t.Errorf("Expected %v, got %v", want, pairs)
	}

	exists, err := c.Hmexists("score", []string{"u1", "nope"})
	if err != nil || !reflect.DeepEqual(exists, []bool{true, false}) {
		t.Errorf("Hmexists() = %v, %v", exists, err)
	}

	removed, err := c.Hdel("score", "u1")
	if err != nil || !removed.Equal(kv.Int(6)) {
		t.Errorf("Hdel() = %s, %v", removed, err)
	}
	if ok, err := c.Hexists("score", "u1"); err != nil || ok {
		t.Errorf("Hexists() after delete = %v, %v", ok, err)
	}

	removedAll, err := c.Hmdel("score", []string{"u2", "u1"})
	if err != nil {
		t.Fatalf("Hmdel failed: %v", err)
	}
	if want := []kv.Value{kv.Int(8), {}}; !reflect.DeepEqual(removedAll, want) {
		t.Errorf("Expected %v, got %v", want, removedAll)
	}
}

func TestExecuteReturnsErrorResponses(t *testing.T) {
	c, _ := newLoopbackClient(t, serializer.NewJSONSerializer())

	resp, err := c.Execute(command.CommandRequest{})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if resp.Status != 400 || resp.Message != "Cannot parse command: `Request has no data`" {
		t.Errorf("Expected 400 invalid command, got %s", resp)
	}

	_, err = c.Hget("t", "k")
	var respErr *ResponseError
	if !errors.As(err, &respErr) || respErr.Status != 404 || respErr.Message != "Not found for table: t, key: k" {
		t.Errorf("Expected 404 response error, got %v", err)
	}
}

func TestTransportErrors(t *testing.T) {
	c, lt := newLoopbackClient(t, serializer.NewProtoSerializer())
	lt.broken = true

	if _, err := c.Hget("t", "k"); err == nil || IsNotFound(err) {
		t.Errorf("Expected transport error, got %v", err)
	}

	_, _, err := NewRPCStore(c).Get("t", "k")
	if kv.CodeOf(err) != kv.ErrCStorage {
		t.Errorf("Expected storage error from rpc store, got %v", err)
	}
}

func TestRPCStore(t *testing.T) {
	storetesting.RunStoreTests(t, "RPCStore", func() store.IStore {
		c, _ := newLoopbackClient(t, serializer.NewProtoSerializer())
		return NewRPCStore(c)
	})
}

func TestUnixSocketEndToEnd(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "hkv.sock")
	s := serializer.NewProtoSerializer()

	srv := server.NewRPCServer(
		common.ServerConfig{Endpoint: socket, TimeoutSecond: 5, WorkersPerConn: 4},
		service.New(memstore.NewMemStore()),
		unix.NewUnixDefaultServerTransport(),
		s,
	)
	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()
	defer func() {
		_ = srv.Close()
		if err := <-done; err != nil {
			t.Errorf("Serve returned error: %v", err)
		}
	}()

	// wait for the socket to appear
	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := os.Stat(socket); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Server did not start listening")
		}
		time.Sleep(10 * time.Millisecond)
	}

	c, err := NewRPCClient(common.ClientConfig{Endpoints: []string{socket}, TimeoutSecond: 5, RetryCount: 3}, unix.NewUnixClientTransport(), s)
	if err != nil {
		t.Fatalf("NewRPCClient failed: %v", err)
	}
	defer c.Close()

	if _, err := c.Hset("t", "k", kv.String("v")); err != nil {
		t.Fatalf("Hset failed: %v", err)
	}
	v, err := c.Hget("t", "k")
	if err != nil || !v.Equal(kv.String("v")) {
		t.Errorf("Hget() = %s, %v", v, err)
	}
}
