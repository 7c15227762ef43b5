// Package storetesting provides standardised tests and benchmarks for
// storage backends that satisfy the store.IStore interface.
//
// The package contains:
//   - RunStoreTests: A test suite validating conformance to the IStore contract
//   - RunStoreBenchmarks: Performance tests for the common store operations
//
// Example usage:
//
//	// Creating a factory function for your implementation
//	factory := func() store.IStore {
//		return NewMyStore()
//	}
//
//	// Running the standard test suite
//	storetesting.RunStoreTests(t, "MyStore", factory)
//
//	// Running performance benchmarks
//	storetesting.RunStoreBenchmarks(b, "MyStore", factory)
package storetesting
