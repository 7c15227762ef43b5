// Package base provides the foundation for stream based transport layers of hKV,
// implementing request/response framing independent of the specific network
// protocol (TCP, Unix sockets). It is extended with protocol-specific connectors.
//
// Frame Format:
//
//	+----------------+----------------+------------------+
//	| requestID (8B) | length (4B)    | payload (length) |
//	+----------------+----------------+------------------+
//
// All integers are big endian. The payload is a serialized request or response, the
// requestID of a response equals the requestID of its request.
//
// Key Components:
//
//   - IClientConnector/IServerConnector: Interfaces for protocol-specific operations
//     that allow extending the base transport with different network protocols.
//
//   - clientTransport: Client implementation that manages multiple connections with
//     round-robin load balancing. Responses are correlated with their requests through
//     a concurrent map of pending request IDs, so many requests can be in flight on a
//     single connection. Failed attempts are retried with exponential backoff, lost
//     connections are dialed again by the next request.
//
//   - serverTransport: Server implementation that accepts connections and passes every
//     request to the registered handler. Requests of one connection are processed by a
//     bounded number of workers (ServerConfig.WorkersPerConn), responses may be written
//     out of order.
//
// Buffer Pooling:
//
//	The server uses a sync.Pool to reuse read buffers, reducing GC pressure and memory
//	allocations. Frames are written with net.Buffers so header and payload leave in a
//	single write.
//
// Thread Safety:
//
//	All public methods are thread-safe. The client transport uses atomic operations
//	and mutexes to ensure concurrent access safety, while the server creates a
//	dedicated goroutine for each connection.
package base
