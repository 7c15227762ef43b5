package instrumented

import (
	"fmt"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/store"
)

// registry is the subset of *metrics.Set used by the decorator
type registry interface {
	GetOrCreateCounter(name string) *metrics.Counter
	GetOrCreateHistogram(name string) *metrics.Histogram
}

// defaultRegistry registers metrics on the global VictoriaMetrics set
type defaultRegistry struct{}

func (defaultRegistry) GetOrCreateCounter(name string) *metrics.Counter {
	return metrics.GetOrCreateCounter(name)
}

func (defaultRegistry) GetOrCreateHistogram(name string) *metrics.Histogram {
	return metrics.GetOrCreateHistogram(name)
}

// opMetrics holds the metrics of a single storage operation
type opMetrics struct {
	calls    *metrics.Counter
	errors   *metrics.Counter
	duration *metrics.Histogram
}

func newOpMetrics(reg registry, op string) *opMetrics {
	return &opMetrics{
		calls:    reg.GetOrCreateCounter(fmt.Sprintf(`hkv_store_calls_total{op=%q}`, op)),
		errors:   reg.GetOrCreateCounter(fmt.Sprintf(`hkv_store_errors_total{op=%q}`, op)),
		duration: reg.GetOrCreateHistogram(fmt.Sprintf(`hkv_store_duration_seconds{op=%q}`, op)),
	}
}

// observe records a finished call
func (m *opMetrics) observe(start time.Time, err error) {
	m.calls.Inc()
	if err != nil {
		m.errors.Inc()
	}
	m.duration.UpdateDuration(start)
}

type storeImpl struct {
	inner    store.IStore
	get      *opMetrics
	set      *opMetrics
	del      *opMetrics
	contains *opMetrics
	getAll   *opMetrics
}

// New wraps inner with metric collection. If set is nil, the metrics are registered on the
// default VictoriaMetrics set.
//
// Thread-safety: The returned store is as thread-safe as inner. All metrics are updated atomically.
func New(inner store.IStore, set *metrics.Set) store.IStore {
	var reg registry = defaultRegistry{}
	if set != nil {
		reg = set
	}
	return &storeImpl{
		inner:    inner,
		get:      newOpMetrics(reg, store.OpGet),
		set:      newOpMetrics(reg, store.OpSet),
		del:      newOpMetrics(reg, store.OpDel),
		contains: newOpMetrics(reg, store.OpContains),
		getAll:   newOpMetrics(reg, store.OpGetAll),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Get(table, key string) (kv.Value, bool, error) {
	start := time.Now()
	v, ok, err := s.inner.Get(table, key)
	s.get.observe(start, err)
	return v, ok, err
}

func (s *storeImpl) Set(table, key string, value kv.Value) (kv.Value, bool, error) {
	start := time.Now()
	prev, ok, err := s.inner.Set(table, key, value)
	s.set.observe(start, err)
	return prev, ok, err
}

func (s *storeImpl) Del(table, key string) (kv.Value, bool, error) {
	start := time.Now()
	prev, ok, err := s.inner.Del(table, key)
	s.del.observe(start, err)
	return prev, ok, err
}

func (s *storeImpl) Contains(table, key string) (bool, error) {
	start := time.Now()
	ok, err := s.inner.Contains(table, key)
	s.contains.observe(start, err)
	return ok, err
}

func (s *storeImpl) GetAll(table string) ([]kv.Pair, error) {
	start := time.Now()
	pairs, err := s.inner.GetAll(table)
	s.getAll.observe(start, err)
	return pairs, err
}
