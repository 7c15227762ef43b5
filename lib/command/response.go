package command

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/ValentinKolb/hKV/lib/kv"
)

// CommandResponse is the result of a command.
//
// Status follows HTTP semantics (200, 400, 404, 500). Message is empty on success and
// carries the error text otherwise. Values holds the ordered results of all value
// returning commands; Pairs is only used by Hgetall. Both slices are never nil when
// built by the constructors in this file.
type CommandResponse struct {
	Status  uint32     `json:"status"`
	Message string     `json:"message,omitempty"`
	Values  []kv.Value `json:"values"`
	Pairs   []kv.Pair  `json:"pairs"`
}

// ValuesResponse creates a 200 response with the given values.
func ValuesResponse(values []kv.Value) CommandResponse {
	if values == nil {
		values = []kv.Value{}
	}
	return CommandResponse{
		Status: http.StatusOK,
		Values: values,
		Pairs:  []kv.Pair{},
	}
}

// ValueResponse creates a 200 response with exactly one value.
func ValueResponse(value kv.Value) CommandResponse {
	return ValuesResponse([]kv.Value{value})
}

// BoolResponse creates a 200 response with one boolean value.
func BoolResponse(b bool) CommandResponse {
	return ValueResponse(kv.Bool(b))
}

// PairsResponse creates a 200 response with the given pairs.
func PairsResponse(pairs []kv.Pair) CommandResponse {
	if pairs == nil {
		pairs = []kv.Pair{}
	}
	return CommandResponse{
		Status: http.StatusOK,
		Values: []kv.Value{},
		Pairs:  pairs,
	}
}

// ErrorResponse converts err into a response. The status is taken from kv.StatusOf,
// the message is the error text.
func ErrorResponse(err error) CommandResponse {
	if err == nil {
		err = kv.Internal("unknown error")
	}
	return CommandResponse{
		Status:  kv.StatusOf(err),
		Message: err.Error(),
		Values:  []kv.Value{},
		Pairs:   []kv.Pair{},
	}
}

// IsOK reports whether the response has a 2xx status.
func (r CommandResponse) IsOK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Normalize replaces nil slices with empty ones. Decoders call this so that decoded
// responses compare equal to constructed ones.
func (r *CommandResponse) Normalize() {
	if r.Values == nil {
		r.Values = []kv.Value{}
	}
	if r.Pairs == nil {
		r.Pairs = []kv.Pair{}
	}
}

// Clone returns a copy of the response with its own Values and Pairs.
// Nil slices stay nil.
func (r CommandResponse) Clone() CommandResponse {
	r.Values = slices.Clone(r.Values)
	r.Pairs = slices.Clone(r.Pairs)
	return r
}

// String returns a debug representation of the response.
func (r CommandResponse) String() string {
	if r.Message != "" {
		return fmt.Sprintf("{status: %d, message: %q, values: %v, pairs: %v}", r.Status, r.Message, r.Values, r.Pairs)
	}
	return fmt.Sprintf("{status: %d, values: %v, pairs: %v}", r.Status, r.Values, r.Pairs)
}
