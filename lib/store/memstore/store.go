package memstore

import (
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/store"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

var Logger = logger.GetLogger("store")

// table is a single independently keyed namespace
type table = xsync.MapOf[string, kv.Value]

type storeImpl struct {
	tables *xsync.MapOf[string, *table]
}

// NewMemStore creates a new in-memory store instance.
// The store is not persisted and only lives as long as the process.
func NewMemStore() store.IStore {
	return &storeImpl{
		tables: xsync.NewMapOf[string, *table](),
	}
}

// Factory returns a store.Factory producing independent in-memory stores.
func Factory() store.Factory {
	return NewMemStore
}

// getOrCreateTable returns the table with the given name, creating it if necessary.
//
// Thread-safety: This method is thread-safe. Concurrent callers creating the same table
// all observe the same instance.
func (s *storeImpl) getOrCreateTable(name string) *table {
	t, loaded := s.tables.LoadOrCompute(name, func() *table {
		return xsync.NewMapOf[string, kv.Value]()
	})
	if !loaded {
		Logger.Debugf("created table %q", name)
	}
	return t
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Get(tableName, key string) (kv.Value, bool, error) {
	t, ok := s.tables.Load(tableName)
	if !ok {
		return kv.Value{}, false, nil
	}
	v, ok := t.Load(key)
	return v, ok, nil
}

func (s *storeImpl) Set(tableName, key string, value kv.Value) (kv.Value, bool, error) {
	prev, loaded := s.getOrCreateTable(tableName).LoadAndStore(key, value)
	if !loaded {
		return kv.Value{}, false, nil
	}
	return prev, true, nil
}

func (s *storeImpl) Del(tableName, key string) (kv.Value, bool, error) {
	t, ok := s.tables.Load(tableName)
	if !ok {
		return kv.Value{}, false, nil
	}
	prev, loaded := t.LoadAndDelete(key)
	return prev, loaded, nil
}

func (s *storeImpl) Contains(tableName, key string) (bool, error) {
	t, ok := s.tables.Load(tableName)
	if !ok {
		return false, nil
	}
	_, ok = t.Load(key)
	return ok, nil
}

func (s *storeImpl) GetAll(tableName string) ([]kv.Pair, error) {
	t, ok := s.tables.Load(tableName)
	if !ok {
		return []kv.Pair{}, nil
	}
	pairs := make([]kv.Pair, 0, t.Size())
	t.Range(func(key string, value kv.Value) bool {
		pairs = append(pairs, kv.NewPair(key, value))
		return true
	})
	return pairs, nil
}
