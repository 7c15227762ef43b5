// Package tcp plugs TCP sockets into the framed transport of the base package.
// Framing, request correlation, worker limits and reconnects all live in base;
// this package only knows how to listen on and dial a host:port endpoint.
//
// Key Components:
//
//   - serverConnector: Listens on the configured endpoint. Each server connection
//     reads into pooled buffers of NewTCPServerTransport's buffer size (512 KB for
//     NewTCPDefaultServerTransport).
//
//   - clientConnector: Dials with a timeout and turns on TCP_NODELAY and keep-alive
//     for every client connection.
//
// Usage Example:
//
//	st := tcp.NewTCPDefaultServerTransport()
//	st.RegisterHandler(handle)
//	go st.Listen(common.ServerConfig{Endpoint: ":8080"})
//
//	ct := tcp.NewTCPClientTransport()
//	_ = ct.Connect(common.ClientConfig{Endpoints: []string{"localhost:8080"}})
//	resp, err := ct.Send(req)
package tcp
