// Package store provides the storage abstraction of hKV: a small, backend-agnostic
// contract for table-oriented key-value storage. Command handlers only ever talk to
// this interface, so a backend can be swapped without touching dispatch logic.
//
// Key Components:
//
//   - IStore Interface: Get, Set, Del, Contains and GetAll over (table, key) pairs.
//     Absent tables and keys are reported through the boolean return values, never
//     as errors. Backend failures are reported as *kv.Error with code kv.ErrCStorage.
//
//   - Factory: A function type that abstracts the creation of an IStore, used by the
//     server and the shared test-suite.
//
// Implementations:
//
//	- In-memory store (memstore): Independently named tables held in concurrent maps.
//	  Tables are created on first write. Available in the
//	  "github.com/ValentinKolb/hKV/lib/store/memstore" package.
//
//	- Instrumented store (instrumented): A decorator that wraps any IStore and records
//	  call counts, errors and latencies with VictoriaMetrics. Available in the
//	  "github.com/ValentinKolb/hKV/lib/store/instrumented" package.
//
// Every implementation is expected to pass storetesting.RunStoreTests.
package store
