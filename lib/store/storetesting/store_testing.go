package storetesting

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/store"
)

// RunStoreTests runs a comprehensive test suite for an IStore implementation.
func RunStoreTests(t *testing.T, name string, factory store.Factory) {
	t.Run(name, func(t *testing.T) {
		t.Run("GetAbsent", func(t *testing.T) {
			testGetAbsent(t, factory())
		})

		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("SetReturnsPrevious", func(t *testing.T) {
			testSetReturnsPrevious(t, factory())
		})

		t.Run("Del", func(t *testing.T) {
			testDel(t, factory())
		})

		t.Run("Contains", func(t *testing.T) {
			testContains(t, factory())
		})

		t.Run("GetAll", func(t *testing.T) {
			testGetAll(t, factory())
		})

		t.Run("TableIsolation", func(t *testing.T) {
			testTableIsolation(t, factory())
		})

		t.Run("ValueKinds", func(t *testing.T) {
			testValueKinds(t, factory())
		})

		t.Run("ConcurrentWrites", func(t *testing.T) {
			testConcurrentWrites(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

func mustSet(t *testing.T, s store.IStore, table, key string, value kv.Value) {
	t.Helper()
	if _, _, err := s.Set(table, key, value); err != nil {
		t.Fatalf("Set(%s, %s) failed: %v", table, key, err)
	}
}

func expectValue(t *testing.T, s store.IStore, table, key string, want kv.Value) {
	t.Helper()
	got, ok, err := s.Get(table, key)
	if err != nil {
		t.Fatalf("Get(%s, %s) failed: %v", table, key, err)
	}
	if !ok {
		t.Fatalf("Expected key %s in table %s to exist", key, table)
	}
	if !got.Equal(want) {
		t.Errorf("Expected value %s, got %s", want, got)
	}
}

func expectAbsent(t *testing.T, s store.IStore, table, key string) {
	t.Helper()
	got, ok, err := s.Get(table, key)
	if err != nil {
		t.Fatalf("Get(%s, %s) failed: %v", table, key, err)
	}
	if ok {
		t.Errorf("Expected key %s in table %s to be absent, got %s", key, table, got)
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testGetAbsent(t *testing.T, s store.IStore) {
	// missing table
	expectAbsent(t, s, "no-such-table", "k")

	// missing key in existing table
	mustSet(t, s, "t1", "present", kv.String("x"))
	expectAbsent(t, s, "t1", "missing")

	ok, err := s.Contains("no-such-table", "k")
	if err != nil || ok {
		t.Errorf("Expected Contains on missing table to be false, got %v, %v", ok, err)
	}

	pairs, err := s.GetAll("no-such-table")
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("Expected no pairs for missing table, got %v", pairs)
	}
}

func testSetGet(t *testing.T, s store.IStore) {
	mustSet(t, s, "score", "u1", kv.Int(10))
	expectValue(t, s, "score", "u1", kv.Int(10))

	mustSet(t, s, "score", "u1", kv.Int(11))
	expectValue(t, s, "score", "u1", kv.Int(11))

	// keys and table names are arbitrary strings
	mustSet(t, s, "", "", kv.String("empty"))
	expectValue(t, s, "", "", kv.String("empty"))
}

func testSetReturnsPrevious(t *testing.T, s store.IStore) {
	prev, existed, err := s.Set("t", "k", kv.String("v1"))
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if existed || !prev.IsNone() {
		t.Errorf("Expected no previous value, got %s (existed=%v)", prev, existed)
	}

	prev, existed, err = s.Set("t", "k", kv.String("v2"))
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !existed || !prev.Equal(kv.String("v1")) {
		t.Errorf("Expected previous value %s, got %s (existed=%v)", kv.String("v1"), prev, existed)
	}
}

func testDel(t *testing.T, s store.IStore) {
	mustSet(t, s, "t", "k", kv.Bool(true))

	prev, existed, err := s.Del("t", "k")
	if err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if !existed || !prev.Equal(kv.Bool(true)) {
		t.Errorf("Expected removed value %s, got %s (existed=%v)", kv.Bool(true), prev, existed)
	}
	expectAbsent(t, s, "t", "k")

	// deleting again is not an error
	prev, existed, err = s.Del("t", "k")
	if err != nil {
		t.Fatalf("Del of absent key failed: %v", err)
	}
	if existed || !prev.IsNone() {
		t.Errorf("Expected nothing to be removed, got %s (existed=%v)", prev, existed)
	}

	// deleting from a missing table is not an error either
	if _, existed, err := s.Del("no-such-table", "k"); err != nil || existed {
		t.Errorf("Expected Del on missing table to be a no-op, got %v, %v", existed, err)
	}
}

func testContains(t *testing.T, s store.IStore) {
	mustSet(t, s, "t", "k", kv.Float(1.5))

	ok, err := s.Contains("t", "k")
	if err != nil || !ok {
		t.Errorf("Expected Contains to be true, got %v, %v", ok, err)
	}

	ok, err = s.Contains("t", "other")
	if err != nil || ok {
		t.Errorf("Expected Contains to be false, got %v, %v", ok, err)
	}

	// a key holding the default value still exists
	mustSet(t, s, "t", "none", kv.Value{})
	ok, err = s.Contains("t", "none")
	if err != nil || !ok {
		t.Errorf("Expected key with default value to exist, got %v, %v", ok, err)
	}
}

func testGetAll(t *testing.T, s store.IStore) {
	mustSet(t, s, "score", "u1", kv.Int(10))
	mustSet(t, s, "score", "u2", kv.Int(8))
	mustSet(t, s, "score", "u3", kv.Int(11))
	mustSet(t, s, "score", "u1", kv.Int(6))
	mustSet(t, s, "score", "u4", kv.Int(1))
	if _, _, err := s.Del("score", "u4"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}

	pairs, err := s.GetAll("score")
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	kv.SortPairs(pairs)

	want := []kv.Pair{
		kv.NewPair("u1", kv.Int(6)),
		kv.NewPair("u2", kv.Int(8)),
		kv.NewPair("u3", kv.Int(11)),
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("Expected %v, got %v", want, pairs)
	}
}

func testTableIsolation(t *testing.T, s store.IStore) {
	mustSet(t, s, "a", "k", kv.String("in-a"))
	mustSet(t, s, "b", "k", kv.String("in-b"))

	expectValue(t, s, "a", "k", kv.String("in-a"))
	expectValue(t, s, "b", "k", kv.String("in-b"))

	if _, _, err := s.Del("a", "k"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	expectAbsent(t, s, "a", "k")
	expectValue(t, s, "b", "k", kv.String("in-b"))
}

func testValueKinds(t *testing.T, s store.IStore) {
	values := []kv.Value{
		{},
		kv.String("text"),
		kv.Binary([]byte{0, 1, 2, 255}),
		kv.Int(-42),
		kv.Float(3.25),
		kv.Bool(false),
	}

	for i, v := range values {
		mustSet(t, s, "kinds", fmt.Sprintf("k%d", i), v)
	}
	for i, v := range values {
		got, ok, err := s.Get("kinds", fmt.Sprintf("k%d", i))
		if err != nil || !ok {
			t.Fatalf("Get(k%d) = %v, %v", i, ok, err)
		}
		if got.Kind() != v.Kind() || !got.Equal(v) {
			t.Errorf("Expected %s, got %s", v, got)
		}
	}
}

func testConcurrentWrites(t *testing.T, s store.IStore) {
	const numWorkers = 8
	const keysPerWorker = 200

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for w := 0; w < numWorkers; w++ {
		go func(workerId int) {
			defer wg.Done()
			table := fmt.Sprintf("table-%d", workerId%2)
			for i := 0; i < keysPerWorker; i++ {
				key := fmt.Sprintf("w%d-k%d", workerId, i)
				if _, _, err := s.Set(table, key, kv.Int(int64(i))); err != nil {
					t.Errorf("Set failed: %v", err)
					return
				}
				s.Get(table, key)
			}
		}(w)
	}

	wg.Wait()

	total := 0
	for _, table := range []string{"table-0", "table-1"} {
		pairs, err := s.GetAll(table)
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		total += len(pairs)
	}
	if total != numWorkers*keysPerWorker {
		t.Errorf("Expected %d keys after concurrent writes, got %d", numWorkers*keysPerWorker, total)
	}
}
