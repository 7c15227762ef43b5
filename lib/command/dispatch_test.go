package command

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ValentinKolb/hKV/lib/kv"
)

func TestDispatchMalformedRequest(t *testing.T) {
	// no expectations: any store call fails the test
	m := newMockStore(t)

	resp := Dispatch(CommandRequest{}, m)
	expectResponse(t, resp, CommandResponse{
		Status:  400,
		Message: "Cannot parse command: `Request has no data`",
		Values:  []kv.Value{},
		Pairs:   []kv.Pair{},
	})
}

func TestDispatchUnsupportedVariant(t *testing.T) {
	m := newMockStore(t)

	resp := Dispatch(CommandRequest{RequestData: Unsupported{Variant: "hincr"}}, m)
	expectResponse(t, resp, CommandResponse{
		Status:  500,
		Message: "Internal error: Not implemented",
		Values:  []kv.Value{},
		Pairs:   []kv.Pair{},
	})
}

func TestRequestNames(t *testing.T) {
	testCases := []struct {
		req  CommandRequest
		want string
	}{
		{NewHget("t", "k"), "hget"},
		{NewHmget("t", nil), "hmget"},
		{NewHgetall("t"), "hgetall"},
		{NewHset("t", "k", kv.Int(1)), "hset"},
		{NewHmset("t", nil), "hmset"},
		{NewHdel("t", "k"), "hdel"},
		{NewHmdel("t", nil), "hmdel"},
		{NewHexists("t", "k"), "hexists"},
		{NewHmexists("t", nil), "hmexists"},
		{CommandRequest{}, "none"},
		{CommandRequest{RequestData: Unsupported{Variant: "hincr"}}, "unsupported"},
		{CommandRequest{RequestData: Unsupported{Variant: "field 42"}}, "unsupported"},
	}

	for _, tc := range testCases {
		if got := tc.req.Name(); got != tc.want {
			t.Errorf("Expected name %q, got %q", tc.want, got)
		}
	}
}

func TestRequestJSON(t *testing.T) {
	req := NewHmset("score", []kv.Pair{
		kv.NewPair("u1", kv.Int(10)),
		kv.NewPair("u2", kv.String("x")),
	})

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	want := `{"hmset":{"table":"score","pairs":[{"key":"u1","value":{"integer":10}},{"key":"u2","value":{"string":"x"}}]}}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}

	var got CommandRequest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, req) {
		t.Errorf("Expected %s, got %s", req, got)
	}
}

func TestRequestJSONEdgeCases(t *testing.T) {
	var req CommandRequest

	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("Failed to unmarshal empty request: %v", err)
	}
	if req.RequestData != nil {
		t.Errorf("Expected empty request, got %s", req)
	}

	if err := json.Unmarshal([]byte(`{"hincr":{"table":"t"}}`), &req); err != nil {
		t.Fatalf("Failed to unmarshal unknown variant: %v", err)
	}
	if !reflect.DeepEqual(req.RequestData, Unsupported{Variant: "hincr"}) {
		t.Errorf("Expected unsupported variant, got %#v", req.RequestData)
	}

	if err := json.Unmarshal([]byte(`{"hget":{},"hdel":{}}`), &req); err == nil {
		t.Error("Expected error for request with two variants")
	}

	if err := json.Unmarshal([]byte(`{"hget":{"table":5}}`), &req); err == nil {
		t.Error("Expected error for malformed variant body")
	}

	data, err := json.Marshal(CommandRequest{})
	if err != nil || string(data) != "{}" {
		t.Errorf("Expected {}, got %s (%v)", data, err)
	}
}

func TestRequestClone(t *testing.T) {
	pair := kv.NewPair("k", kv.Int(1))
	testCases := []CommandRequest{
		NewHmget("t", []string{"a", "b"}),
		{RequestData: Hset{Table: "t", Pair: &pair}},
		NewHmset("t", []kv.Pair{kv.NewPair("a", kv.Int(1))}),
		NewHmdel("t", []string{"a"}),
		NewHmexists("t", []string{"a"}),
		NewHget("t", "a"),
		{},
	}

	for _, orig := range testCases {
		t.Run(orig.Name(), func(t *testing.T) {
			clone := orig.Clone()
			if !reflect.DeepEqual(clone, orig) {
				t.Fatalf("Expected clone %s to equal %s", clone, orig)
			}

			switch d := clone.RequestData.(type) {
			case Hmget:
				d.Keys[0] = "changed"
			case Hset:
				d.Pair.Key = "changed"
			case Hmset:
				d.Pairs[0].Key = "changed"
			case Hmdel:
				d.Keys[0] = "changed"
			case Hmexists:
				d.Keys[0] = "changed"
			default:
				return
			}
			if reflect.DeepEqual(clone, orig) {
				t.Errorf("Expected changes to the clone to leave %s untouched", orig)
			}
		})
	}
}

func TestResponseClone(t *testing.T) {
	orig := ValuesResponse([]kv.Value{kv.Int(1), kv.Int(2)})
	clone := orig.Clone()
	clone.Values[0] = kv.String("changed")
	if !orig.Values[0].Equal(kv.Int(1)) {
		t.Errorf("Expected original response to be untouched, got %s", orig)
	}

	var empty CommandResponse
	if c := empty.Clone(); c.Values != nil || c.Pairs != nil {
		t.Errorf("Expected nil slices to stay nil, got %#v", c)
	}
}
