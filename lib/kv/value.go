package kv

import (
	"bytes"
	"cmp"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Value Kinds
// --------------------------------------------------------------------------

// Kind identifies which scalar a Value holds.
type Kind uint8

const (
	KindNone    Kind = iota // 0: The default Value, no content
	KindString              // 1: UTF-8 string
	KindBinary              // 2: Raw bytes
	KindInteger             // 3: 64-bit signed integer
	KindFloat               // 4: 64-bit float
	KindBool                // 5: Boolean
)

// String returns the name of the kind as used in the wire schema.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// Value Type
// --------------------------------------------------------------------------

// Value is a tagged union over the scalar kinds a table can store.
// The zero Value has KindNone and is used wherever a "default" value is returned
// (missing keys in batch results, no previous value on Set, ...).
//
// A Value has no identity beyond its content. Values are immutable; the binary
// kind copies its input on construction.
type Value struct {
	kind Kind
	str  string
	bin  []byte
	num  int64
	flt  float64
	b    bool
}

// String creates a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Binary creates a binary Value. The given slice is copied.
func Binary(b []byte) Value {
	c := make([]byte, len(b))
	copy(c, b)
	return Value{kind: KindBinary, bin: c}
}

// Int creates an integer Value.
func Int(i int64) Value {
	return Value{kind: KindInteger, num: i}
}

// Float creates a float Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, flt: f}
}

// Bool creates a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNone reports whether v is the default Value.
func (v Value) IsNone() bool {
	return v.kind == KindNone
}

// --------------------------------------------------------------------------
// Accessors
// --------------------------------------------------------------------------

// AsString returns the string content or a ConvertError if v is not a string.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", ConvertError(v, "string")
	}
	return v.str, nil
}

// AsBinary returns a copy of the binary content or a ConvertError if v is not binary.
func (v Value) AsBinary() ([]byte, error) {
	if v.kind != KindBinary {
		return nil, ConvertError(v, "binary")
	}
	c := make([]byte, len(v.bin))
	copy(c, v.bin)
	return c, nil
}

// AsInt returns the integer content or a ConvertError if v is not an integer.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInteger {
		return 0, ConvertError(v, "integer")
	}
	return v.num, nil
}

// AsFloat returns the float content or a ConvertError if v is not a float.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, ConvertError(v, "float")
	}
	return v.flt, nil
}

// AsBool returns the boolean content or a ConvertError if v is not a bool.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, ConvertError(v, "bool")
	}
	return v.b, nil
}

// --------------------------------------------------------------------------
// Comparison
// --------------------------------------------------------------------------

// Equal reports whether v and o hold the same kind and content.
func (v Value) Equal(o Value) bool {
	return CompareValues(v, o) == 0
}

// CompareValues defines a total order over values: first by kind, then by content.
// It returns -1, 0 or +1.
func CompareValues(a, b Value) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	switch a.kind {
	case KindString:
		return strings.Compare(a.str, b.str)
	case KindBinary:
		return bytes.Compare(a.bin, b.bin)
	case KindInteger:
		return cmp.Compare(a.num, b.num)
	case KindFloat:
		return cmp.Compare(a.flt, b.flt)
	case KindBool:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		default:
			return 1
		}
	default:
		return 0
	}
}

// --------------------------------------------------------------------------
// Formatting
// --------------------------------------------------------------------------

// String returns a debug representation of the value, e.g. string("abc") or integer(5).
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "none"
	case KindString:
		return fmt.Sprintf("string(%q)", v.str)
	case KindBinary:
		return fmt.Sprintf("binary(%s)", base64.StdEncoding.EncodeToString(v.bin))
	case KindInteger:
		return fmt.Sprintf("integer(%d)", v.num)
	case KindFloat:
		return fmt.Sprintf("float(%s)", strconv.FormatFloat(v.flt, 'g', -1, 64))
	case KindBool:
		return fmt.Sprintf("bool(%t)", v.b)
	default:
		return "unknown"
	}
}

// Interface returns the content as a plain Go value (nil, string, []byte, int64, float64 or bool).
// It is used for human-readable output.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindBinary:
		c := make([]byte, len(v.bin))
		copy(c, v.bin)
		return c
	case KindInteger:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// --------------------------------------------------------------------------
// Parsing
// --------------------------------------------------------------------------

// ParseValue converts a textual representation into a Value.
// Supported prefixes are "str:", "int:", "float:", "bool:" and "bin:" (base64).
// Text without a known prefix is stored as a string.
func ParseValue(s string) (Value, error) {
	prefix, rest, found := strings.Cut(s, ":")
	if !found {
		return String(s), nil
	}

	switch prefix {
	case "str", "string":
		return String(rest), nil
	case "int", "integer":
		i, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return Value{}, ConvertError(String(rest), KindInteger.String())
		}
		return Int(i), nil
	case "float":
		f, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return Value{}, ConvertError(String(rest), KindFloat.String())
		}
		return Float(f), nil
	case "bool":
		b, err := strconv.ParseBool(rest)
		if err != nil {
			return Value{}, ConvertError(String(rest), KindBool.String())
		}
		return Bool(b), nil
	case "bin", "binary":
		b, err := base64.StdEncoding.DecodeString(rest)
		if err != nil {
			return Value{}, ConvertError(String(rest), KindBinary.String())
		}
		return Binary(b), nil
	default:
		return String(s), nil
	}
}

// --------------------------------------------------------------------------
// JSON
// --------------------------------------------------------------------------

// jsonValue mirrors the oneof layout of the wire schema.
// Exactly one field is set, none for the default Value.
type jsonValue struct {
	String  *string  `json:"string,omitempty"`
	Binary  *[]byte  `json:"binary,omitempty"`
	Integer *int64   `json:"integer,omitempty"`
	Float   *float64 `json:"float,omitempty"`
	Bool    *bool    `json:"bool,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for Value.
func (v Value) MarshalJSON() ([]byte, error) {
	var j jsonValue
	switch v.kind {
	case KindString:
		j.String = &v.str
	case KindBinary:
		b := v.bin
		if b == nil {
			b = []byte{}
		}
		j.Binary = &b
	case KindInteger:
		j.Integer = &v.num
	case KindFloat:
		j.Float = &v.flt
	case KindBool:
		j.Bool = &v.b
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Value.
func (v *Value) UnmarshalJSON(data []byte) error {
	var j jsonValue
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}

	switch {
	case j.String != nil:
		*v = String(*j.String)
	case j.Binary != nil:
		*v = Binary(*j.Binary)
	case j.Integer != nil:
		*v = Int(*j.Integer)
	case j.Float != nil:
		*v = Float(*j.Float)
	case j.Bool != nil:
		*v = Bool(*j.Bool)
	default:
		*v = Value{}
	}
	return nil
}
