package store

//go:generate mockgen -source=$GOFILE -destination=../command/mock_store_test.go -package=command

import (
	"github.com/ValentinKolb/hKV/lib/kv"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Factory is a function type that creates a new store.
// This is used to abstract the creation of the backend from the code that uses it.
type Factory func() IStore

// IStore is the backend-agnostic contract for a table-oriented key-value store.
// A store holds any number of independently named tables, each mapping string keys to kv.Value.
// Tables are created implicitly on first write.
//
// Absence of a table or key is never an error. Failures of the backend itself are reported as
// *kv.Error with code kv.ErrCStorage.
//
// Implementations must be safe for concurrent use. Operations on the same table and key must be
// linearizable; there is no atomicity across multiple calls.
type IStore interface {
	// Get returns the current value for a key. The boolean return value indicates whether the
	// key was found; a missing table reports false.
	Get(table, key string) (value kv.Value, loaded bool, err error)
	// Set inserts or overwrites a key. It returns the previous value and whether one existed.
	// The table is created if it does not exist yet.
	Set(table, key string, value kv.Value) (prev kv.Value, loaded bool, err error)
	// Del removes a key. It returns the removed value and whether a value was removed.
	Del(table, key string) (prev kv.Value, loaded bool, err error)
	// Contains reports whether a key exists in a table.
	Contains(table, key string) (loaded bool, err error)
	// GetAll returns a snapshot of all pairs in a table. The order is not defined;
	// use kv.SortPairs if a deterministic order is needed. A missing table yields no pairs.
	GetAll(table string) (pairs []kv.Pair, err error)
}

// --------------------------------------------------------------------------
// Operation Names (used for kv.StorageError)
// --------------------------------------------------------------------------

const (
	OpGet      = "get"
	OpSet      = "set"
	OpDel      = "del"
	OpContains = "contains"
	OpGetAll   = "get_all"
)
