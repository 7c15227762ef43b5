// Package http implements the RPC transport over plain HTTP/1.1.
//
// Every serialized request is sent as the body of a POST to /execute and the serialized
// response is returned as the body of a 200 answer. Command level failures (404, 400, 500
// statuses) are part of the serialized response, a non 200 HTTP status always means that
// the transport itself failed.
//
// Key Components:
//
//   - httpServerTransport: Implements IRPCServerTransport on top of net/http. Besides the
//     execute endpoint it serves GET /metrics, which exposes all VictoriaMetrics metrics of
//     the process (see instrumented store) in the Prometheus text format. Each request gets
//     an X-Request-Id (a client supplied one is kept, otherwise a new UUID) that shows up
//     in the debug log.
//
//   - httpClientTransport: Implements IRPCClientTransport. Requests are spread over all
//     configured endpoints round-robin and retried on the next endpoint on failure.
//     Endpoints may be given with or without scheme ("localhost:8080" or "https://host").
//
// Thread Safety:
//
//	Both transports can be used concurrently. The client uses an atomic counter for
//	endpoint selection and net/http's connection pool underneath.
package http
