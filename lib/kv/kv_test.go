package kv

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestValueAccessors(t *testing.T) {
	if s, err := String("hello").AsString(); err != nil || s != "hello" {
		t.Errorf("AsString() = %q, %v", s, err)
	}
	if i, err := Int(-7).AsInt(); err != nil || i != -7 {
		t.Errorf("AsInt() = %d, %v", i, err)
	}
	if f, err := Float(1.5).AsFloat(); err != nil || f != 1.5 {
		t.Errorf("AsFloat() = %f, %v", f, err)
	}
	if b, err := Bool(true).AsBool(); err != nil || !b {
		t.Errorf("AsBool() = %v, %v", b, err)
	}
	if b, err := Binary([]byte("raw")).AsBinary(); err != nil || string(b) != "raw" {
		t.Errorf("AsBinary() = %q, %v", b, err)
	}
}

func TestValueConvertError(t *testing.T) {
	_, err := Int(42).AsString()
	if err == nil {
		t.Fatal("Expected conversion error")
	}
	if CodeOf(err) != ErrCConvert {
		t.Errorf("Expected code %s, got %s", ErrCConvert, CodeOf(err))
	}
	if want := "Cannot convert value integer(42) to string"; err.Error() != want {
		t.Errorf("Expected message %q, got %q", want, err.Error())
	}
	if StatusOf(err) != 500 {
		t.Errorf("Expected status 500, got %d", StatusOf(err))
	}
}

func TestBinaryCopiesInput(t *testing.T) {
	raw := []byte("abc")
	v := Binary(raw)
	raw[0] = 'X'

	b, _ := v.AsBinary()
	if string(b) != "abc" {
		t.Errorf("Expected value to be unaffected by caller mutation, got %q", b)
	}
}

func TestDefaultValue(t *testing.T) {
	var v Value
	if !v.IsNone() {
		t.Error("Expected zero Value to be the default value")
	}
	if v.Kind() != KindNone {
		t.Errorf("Expected kind none, got %s", v.Kind())
	}
	if !v.Equal(Value{}) {
		t.Error("Expected default values to be equal")
	}
	if v.Interface() != nil {
		t.Errorf("Expected nil interface, got %v", v.Interface())
	}
}

func TestCompareValues(t *testing.T) {
	testCases := []struct {
		name string
		a, b Value
		want int
	}{
		{"none before string", Value{}, String("a"), -1},
		{"string order", String("a"), String("b"), -1},
		{"equal strings", String("a"), String("a"), 0},
		{"integer order", Int(10), Int(8), 1},
		{"kind order beats content", String("z"), Int(0), -1},
		{"bool order", Bool(false), Bool(true), -1},
		{"float order", Float(2.5), Float(2.5), 0},
		{"binary order", Binary([]byte{1}), Binary([]byte{2}), -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CompareValues(tc.a, tc.b); got != tc.want {
				t.Errorf("CompareValues(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestSortPairs(t *testing.T) {
	pairs := []Pair{
		NewPair("u3", Int(11)),
		NewPair("u1", Int(6)),
		NewPair("u2", Int(8)),
		NewPair("u1", Int(5)),
	}
	SortPairs(pairs)

	want := []Pair{
		NewPair("u1", Int(5)),
		NewPair("u1", Int(6)),
		NewPair("u2", Int(8)),
		NewPair("u3", Int(11)),
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("Expected %v, got %v", want, pairs)
	}
}

func TestParseValue(t *testing.T) {
	testCases := []struct {
		in      string
		want    Value
		wantErr bool
	}{
		{in: "hello", want: String("hello")},
		{in: "str:int:5", want: String("int:5")},
		{in: "int:5", want: Int(5)},
		{in: "integer:-3", want: Int(-3)},
		{in: "float:1.25", want: Float(1.25)},
		{in: "bool:true", want: Bool(true)},
		{in: "bin:aGk=", want: Binary([]byte("hi"))},
		{in: "unknown:prefix", want: String("unknown:prefix")},
		{in: "int:abc", wantErr: true},
		{in: "bool:maybe", wantErr: true},
		{in: "bin:***", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseValue(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got value %s", got)
				}
				if CodeOf(err) != ErrCConvert {
					t.Errorf("Expected convert error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestValueJSON(t *testing.T) {
	values := []Value{
		{},
		String("world"),
		String(""),
		Binary([]byte{}),
		Binary([]byte{0, 1, 2}),
		Int(0),
		Int(-99),
		Float(3.25),
		Bool(false),
	}

	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			data, err := json.Marshal(v)
			if err != nil {
				t.Fatalf("Failed to marshal: %v", err)
			}
			var got Value
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Failed to unmarshal %s: %v", data, err)
			}
			if !got.Equal(v) || got.Kind() != v.Kind() {
				t.Errorf("Expected %s, got %s (json %s)", v, got, data)
			}
		})
	}
}

func TestErrorMessagesAndStatus(t *testing.T) {
	cause := errors.New("disk on fire")

	testCases := []struct {
		name   string
		err    *Error
		msg    string
		status uint32
	}{
		{"not found", NotFound("score", "u1"), "Not found for table: score, key: u1", 404},
		{"invalid command", InvalidCommand("Request has no data"), "Cannot parse command: `Request has no data`", 400},
		{"storage", StorageError("set", "t1", "k1", cause), "Cannot process command set with table: t1, key: k1, Error: disk on fire", 500},
		{"encode", EncodeError(nil), "Failed to encode protobuf message", 500},
		{"decode", DecodeError(cause), "Failed to decode protobuf message: disk on fire", 500},
		{"internal", Internal("Not implemented"), "Internal error: Not implemented", 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Error() != tc.msg {
				t.Errorf("Expected message %q, got %q", tc.msg, tc.err.Error())
			}
			if tc.err.Status() != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, tc.err.Status())
			}
		})
	}

	if !errors.Is(StorageError("get", "t", "k", cause), cause) {
		t.Error("Expected storage error to wrap its cause")
	}
	if StatusOf(errors.New("plain")) != 500 {
		t.Error("Expected plain errors to map to 500")
	}
	if !strings.Contains(NotFound("a", "b").Error(), "Not found") {
		t.Error("Expected not found message to contain 'Not found'")
	}
}

func TestKeyOnly(t *testing.T) {
	p := KeyOnly("u1")
	if p.HasValue() {
		t.Errorf("Expected %s to carry no value", p)
	}
	if !NewPair("u1", Int(1)).HasValue() {
		t.Error("Expected pair with integer to carry a value")
	}
	if ComparePairs(p, NewPair("u1", String(""))) != -1 {
		t.Error("Expected pair without value to sort first")
	}
}
