// Package client implements the RPC client of hKV.
//
// Key Components:
//
//   - Client: Sends command.CommandRequest values to a server through any transport and
//     serializer. Execute returns the raw command.CommandResponse; the typed methods
//     (Hget, Hmget, Hgetall, Hset, Hmset, Hdel, Hmdel, Hexists, Hmexists) unwrap the payload
//     and turn non 200 responses into a *ResponseError.
//
//   - NewRPCStore: Wraps a Client as a store.IStore, so a remote server can be used as the
//     storage backend of another service (see storetesting for the contract it fulfills).
//
// Usage Example:
//
//	// Configure the client
//	config := common.ClientConfig{
//	  Endpoints:              []string{"localhost:8080"},
//	  TimeoutSecond:          5,
//	  RetryCount:             3,
//	  ConnectionsPerEndpoint: 1,
//	}
//
//	c, err := client.NewRPCClient(config, tcp.NewTCPClientTransport(), serializer.NewProtoSerializer())
//	if err != nil {
//	  log.Fatalf("Failed to connect: %v", err)
//	}
//	defer c.Close()
//
//	prev, err := c.Hset("score", "u1", kv.Int(10))
//	v, err := c.Hget("score", "u1")
//	if client.IsNotFound(err) {
//	  // key does not exist
//	}
package client
