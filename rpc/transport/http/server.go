package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/ValentinKolb/hKV/rpc/common"
	"github.com/ValentinKolb/hKV/rpc/transport"
	"github.com/google/uuid"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("transport/rpc")

const (
	// ExecutePath receives serialized requests
	ExecutePath = "/execute"
	// MetricsPath exposes all VictoriaMetrics metrics in the Prometheus text format
	MetricsPath = "/metrics"
	// RequestIDHeader carries the id used to correlate log lines of one request
	RequestIDHeader = "X-Request-Id"
)

// maxBodySize limits the size of a single request body (64 MiB)
const maxBodySize = 64 << 20

func NewHttpServerTransport() transport.IRPCServerTransport {
	return &httpServerTransport{}
}

type httpServerTransport struct {
	handler transport.ServerHandleFunc
	config  common.ServerConfig

	mu     sync.Mutex // Protects server and closed
	server *http.Server
	closed bool
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCServerTransport)
// --------------------------------------------------------------------------

func (t *httpServerTransport) RegisterHandler(handler transport.ServerHandleFunc) {
	t.handler = handler
}

func (t *httpServerTransport) Listen(config common.ServerConfig) error {
	t.config = config

	timeout := time.Duration(config.TimeoutSecond) * time.Second
	server := &http.Server{
		Addr:         config.Endpoint,
		Handler:      t.newMux(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.server = server
	t.mu.Unlock()

	Logger.Infof("Starting HTTP server on %s", config.Endpoint)

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (t *httpServerTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	if t.server == nil {
		return nil
	}

	// Finish running requests, but do not wait forever
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return t.server.Shutdown(ctx)
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// newMux creates the request router of the server
func (t *httpServerTransport) newMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+ExecutePath, t.handleRequest)
	mux.HandleFunc("GET "+MetricsPath, handleMetrics)
	return requestIDMiddleware(loggerMiddleware(mux))
}

// handleRequest handles incoming HTTP requests and writes the response to the writer
func (t *httpServerTransport) handleRequest(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	resp := t.handler(body)

	// The command status travels inside the serialized response, the HTTP status is always 200
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err = w.Write(resp); err != nil {
		Logger.Errorf("Failed to write response for request %s: %v", r.Header.Get(RequestIDHeader), err)
	}
}

// handleMetrics writes all metrics in the Prometheus text format
func handleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	metrics.WritePrometheus(w, true)
}

// --------------------------------------------------------------------------
// Middleware (request id, logging)
// --------------------------------------------------------------------------

// requestIDMiddleware makes sure every request carries a request id
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// responseWriter is a custom ResponseWriter that captures status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code before writing it
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// loggerMiddleware is a middleware that logs HTTP requests
func loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create custom response writer to capture status code
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		Logger.Debugf("[%s] %s %s => %d took %s", r.Header.Get(RequestIDHeader), r.Method, r.URL.Path, rw.statusCode, time.Since(start))
	})
}
