package service

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/ValentinKolb/hKV/lib/command"
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/store/memstore"
	"github.com/rcrowley/go-metrics"
)

func TestServiceCopiesShareStore(t *testing.T) {
	svc := New(memstore.NewMemStore())

	const numWorkers = 8
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for w := 0; w < numWorkers; w++ {
		clone := svc
		go func(workerId int) {
			defer wg.Done()
			resp := clone.Execute(command.NewHset("t1", "k1", kv.String("v1")))
			if resp.Status != 200 || len(resp.Values) != 1 {
				t.Errorf("Unexpected response %s", resp)
			}
		}(w)
	}
	wg.Wait()

	resp := svc.Execute(command.NewHget("t1", "k1"))
	if !reflect.DeepEqual(resp, command.ValueResponse(kv.String("v1"))) {
		t.Errorf("Expected value written by clones to be visible, got %s", resp)
	}
}

func TestFirstHsetReturnsDefault(t *testing.T) {
	svc := New(memstore.NewMemStore())

	resp := svc.Execute(command.NewHset("t1", "k1", kv.String("v1")))
	if !reflect.DeepEqual(resp, command.ValueResponse(kv.Value{})) {
		t.Errorf("Expected default value, got %s", resp)
	}
}

func TestHookOrder(t *testing.T) {
	var events []string

	svc := NewBuilder(memstore.NewMemStore()).
		OnReceived(
			func(req command.CommandRequest) {
				events = append(events, "A:"+req.Name())
			},
			func(req command.CommandRequest) {
				events = append(events, "B:"+req.Name())
			},
		).
		OnExecuted(func(resp command.CommandResponse) {
			if resp.Status != 200 {
				t.Errorf("Executed hook should see the dispatch result, got status %d", resp.Status)
			}
			events = append(events, "executed")
		}).
		OnBeforeSend(func(resp *command.CommandResponse) {
			resp.Status = 201
			events = append(events, "C")
		}).
		OnAfterSend(func() {
			events = append(events, "after")
		}).
		Build()

	resp := svc.Execute(command.NewHset("t1", "k1", kv.String("v1")))

	if resp.Status != 201 {
		t.Errorf("Expected status 201 set by before-send hook, got %d", resp.Status)
	}
	want := []string{"A:hset", "B:hset", "executed", "C", "after"}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("Expected hook order %v, got %v", want, events)
	}
}

func TestBeforeSendHooksSeePreviousChanges(t *testing.T) {
	svc := NewBuilder(memstore.NewMemStore()).
		OnBeforeSend(
			func(resp *command.CommandResponse) {
				resp.Message = "first"
			},
			func(resp *command.CommandResponse) {
				resp.Message += ",second"
			},
		).
		Build()

	resp := svc.Execute(command.NewHgetall("t1"))
	if resp.Message != "first,second" {
		t.Errorf("Expected message 'first,second', got %q", resp.Message)
	}
}

func TestBuilderChangesDoNotAffectBuiltService(t *testing.T) {
	calls := 0
	b := NewBuilder(memstore.NewMemStore())
	svc := b.Build()
	b.OnAfterSend(func() { calls++ })

	svc.Execute(command.NewHget("t", "k"))
	if calls != 0 {
		t.Errorf("Expected hook registered after Build not to run, got %d calls", calls)
	}
}

func TestMalformedRequest(t *testing.T) {
	svc := New(memstore.NewMemStore())

	resp := svc.Execute(command.CommandRequest{})
	if resp.Status != 400 {
		t.Errorf("Expected status 400, got %d", resp.Status)
	}
}

func TestStatsPlugin(t *testing.T) {
	stats := NewStats(metrics.NewRegistry())
	svc := NewBuilder(memstore.NewMemStore()).
		Use(LogHooks{}).
		Use(stats).
		Build()

	svc.Execute(command.NewHset("t", "k", kv.Int(1)))
	svc.Execute(command.NewHget("t", "k"))
	svc.Execute(command.NewHget("t", "missing"))

	if got := stats.Commands("hget"); got != 2 {
		t.Errorf("Expected 2 hget requests, got %d", got)
	}
	if got := stats.Commands("hset"); got != 1 {
		t.Errorf("Expected 1 hset request, got %d", got)
	}
	if got := stats.Status(200); got != 2 {
		t.Errorf("Expected 2 responses with status 200, got %d", got)
	}
	if got := stats.Status(404); got != 1 {
		t.Errorf("Expected 1 response with status 404, got %d", got)
	}
	if got := stats.Sent(); got != 3 {
		t.Errorf("Expected 3 sent responses, got %d", got)
	}
}

func TestStatsUnknownVariantsShareOneCounter(t *testing.T) {
	registry := metrics.NewRegistry()
	stats := NewStats(registry)
	svc := NewBuilder(memstore.NewMemStore()).Use(stats).Build()

	countEntries := func() int {
		n := 0
		registry.Each(func(string, interface{}) { n++ })
		return n
	}

	execute := func(i int) {
		var req command.CommandRequest
		if err := json.Unmarshal([]byte(fmt.Sprintf(`{"junk%d":{}}`, i)), &req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if resp := svc.Execute(req); resp.Status != 500 {
			t.Fatalf("Expected status 500, got %s", resp)
		}
	}

	execute(0)
	entries := countEntries()

	const numRequests = 1000
	for i := 1; i < numRequests; i++ {
		execute(i)
	}

	if got := countEntries(); got != entries {
		t.Errorf("Expected registry to stay at %d entries, got %d", entries, got)
	}
	if got := stats.Commands(command.NameUnsupported); got != numRequests {
		t.Errorf("Expected %d unsupported requests, got %d", numRequests, got)
	}
}

func TestObservingHooksCannotModifyState(t *testing.T) {
	st := memstore.NewMemStore()
	_, _, _ = st.Set("t", "a", kv.Int(1))

	var seenKeys []string
	var seenValues []kv.Value
	svc := NewBuilder(st).
		OnReceived(func(req command.CommandRequest) {
			req.RequestData.(command.Hmget).Keys[0] = "missing"
		}).
		OnReceived(func(req command.CommandRequest) {
			seenKeys = req.RequestData.(command.Hmget).Keys
		}).
		OnExecuted(func(resp command.CommandResponse) {
			resp.Values[0] = kv.String("changed")
		}).
		OnExecuted(func(resp command.CommandResponse) {
			seenValues = resp.Values
		}).
		Build()

	req := command.NewHmget("t", []string{"a"})
	resp := svc.Execute(req)

	want := command.ValuesResponse([]kv.Value{kv.Int(1)})
	if !reflect.DeepEqual(resp, want) {
		t.Errorf("Expected %s, got %s", want, resp)
	}
	if !reflect.DeepEqual(seenKeys, []string{"a"}) {
		t.Errorf("Expected second received hook to see the original keys, got %v", seenKeys)
	}
	if !reflect.DeepEqual(seenValues, want.Values) {
		t.Errorf("Expected second executed hook to see the original values, got %v", seenValues)
	}
	if !reflect.DeepEqual(req.RequestData.(command.Hmget).Keys, []string{"a"}) {
		t.Errorf("Expected caller's request to be untouched, got %s", req)
	}
}
