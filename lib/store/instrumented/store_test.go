package instrumented

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/VictoriaMetrics/metrics"
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/store"
	"github.com/ValentinKolb/hKV/lib/store/memstore"
	"github.com/ValentinKolb/hKV/lib/store/storetesting"
)

func Test(t *testing.T) {
	storetesting.RunStoreTests(t, "InstrumentedMemStore", func() store.IStore {
		return New(memstore.NewMemStore(), metrics.NewSet())
	})
}

// failingStore fails every operation
type failingStore struct{}

var errBroken = errors.New("broken")

func (failingStore) Get(table, key string) (kv.Value, bool, error) {
	return kv.Value{}, false, kv.StorageError(store.OpGet, table, key, errBroken)
}
func (failingStore) Set(table, key string, _ kv.Value) (kv.Value, bool, error) {
	return kv.Value{}, false, kv.StorageError(store.OpSet, table, key, errBroken)
}
func (failingStore) Del(table, key string) (kv.Value, bool, error) {
	return kv.Value{}, false, kv.StorageError(store.OpDel, table, key, errBroken)
}
func (failingStore) Contains(table, key string) (bool, error) {
	return false, kv.StorageError(store.OpContains, table, key, errBroken)
}
func (failingStore) GetAll(table string) ([]kv.Pair, error) {
	return nil, kv.StorageError(store.OpGetAll, table, "", errBroken)
}

func TestMetricsAreRecorded(t *testing.T) {
	set := metrics.NewSet()
	s := New(memstore.NewMemStore(), set)

	s.Set("t", "a", kv.Int(1))
	s.Set("t", "b", kv.Int(2))
	s.Get("t", "a")
	s.GetAll("t")

	var buf bytes.Buffer
	set.WritePrometheus(&buf)
	out := buf.String()

	for _, want := range []string{
		`hkv_store_calls_total{op="set"} 2`,
		`hkv_store_calls_total{op="get"} 1`,
		`hkv_store_calls_total{op="get_all"} 1`,
		`hkv_store_errors_total{op="set"} 0`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected metrics output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestErrorsArePassedThroughAndCounted(t *testing.T) {
	set := metrics.NewSet()
	s := New(failingStore{}, set)

	_, _, err := s.Get("t", "k")
	if !errors.Is(err, errBroken) {
		t.Fatalf("Expected wrapped store error, got %v", err)
	}
	if kv.CodeOf(err) != kv.ErrCStorage {
		t.Errorf("Expected storage error code, got %s", kv.CodeOf(err))
	}
	if _, err := s.Contains("t", "k"); err == nil {
		t.Error("Expected Contains to fail")
	}

	var buf bytes.Buffer
	set.WritePrometheus(&buf)
	out := buf.String()

	for _, want := range []string{
		`hkv_store_errors_total{op="get"} 1`,
		`hkv_store_errors_total{op="contains"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected metrics output to contain %q, got:\n%s", want, out)
		}
	}
}
