// Package instrumented provides a decorator for store.IStore that records call
// counts, errors and latencies of every storage operation with VictoriaMetrics.
//
// The wrapped store is used unchanged; the decorator only observes. Metrics are
// registered either on a caller provided *metrics.Set or, if none is given, on
// the process wide default set that metrics.WritePrometheus exposes (the HTTP
// transport serves it on /metrics).
//
// Exported metrics (op is one of get, set, del, contains, get_all):
//
//	hkv_store_calls_total{op="..."}
//	hkv_store_errors_total{op="..."}
//	hkv_store_duration_seconds{op="..."}
//
// Usage Example:
//
//	s := instrumented.New(memstore.NewMemStore(), nil)
package instrumented
