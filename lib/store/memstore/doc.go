// Package memstore implements the in-memory, single-node backend of the store.IStore
// interface. Data is held entirely in memory and is not persisted between process
// restarts.
//
// Key Features:
//   - Any number of independently named tables, created on first write
//   - Pure in-memory storage without persistence
//   - Thread-safe operations for concurrent access
//   - Absent tables behave like empty tables for all read operations
//
// Implementation Details:
//
//   - Table Map: Tables live in an xsync.MapOf keyed by table name. A table is created
//     with LoadOrCompute, so concurrent first writes to the same table observe the
//     same instance. Tables are never removed.
//
//   - Per-Table Maps: Each table is its own xsync.MapOf. Set and Del use LoadAndStore and
//     LoadAndDelete, so the previous value is returned by the same atomic operation
//     that performs the update. Operations on one key are linearizable; writes to
//     different tables never contend on a shared lock.
//
//   - Snapshots: GetAll ranges over the table at call time. Concurrent writers may or
//     may not be reflected in the snapshot, but every returned pair was present at
//     some point during the call.
//
// Usage Example:
//
//	s := memstore.NewMemStore()
//
//	// Store a value (the table "score" is created implicitly)
//	prev, existed, err := s.Set("score", "u1", kv.Int(10))
//
//	// Retrieve the value
//	value, found, err := s.Get("score", "u1")
//
// Suitable Use Cases:
//
//	The in-memory store is ideal for:
//	- Ephemeral data that doesn't need to survive process restarts
//	- Testing and development environments
//	- Runtime caching within a single process
package memstore
