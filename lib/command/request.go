package command

import (
	"fmt"
	"slices"

	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/store"
)

// --------------------------------------------------------------------------
// Request Type
// --------------------------------------------------------------------------

// CommandRequest is the envelope of a single command. Exactly one variant is set in
// RequestData. A request whose RequestData is nil is malformed and is answered with
// status 400 by Dispatch.
type CommandRequest struct {
	RequestData RequestData
}

// RequestData is implemented by every command variant. The set of variants is closed:
// Hget, Hmget, Hgetall, Hset, Hmset, Hdel, Hmdel, Hexists, Hmexists and Unsupported.
type RequestData interface {
	// Name returns the wire name of the variant (e.g. "hget").
	Name() string
	// Execute runs the command against the store. It never returns an error; every
	// failure is converted into a response with the matching status.
	Execute(s store.IStore) CommandResponse
}

// String returns a debug representation of the request.
func (r CommandRequest) String() string {
	if r.RequestData == nil {
		return "<empty>"
	}
	return fmt.Sprintf("%s%+v", r.RequestData.Name(), r.RequestData)
}

// Clone returns a copy of the request that shares no slices or pointers with r.
func (r CommandRequest) Clone() CommandRequest {
	switch d := r.RequestData.(type) {
	case Hmget:
		d.Keys = slices.Clone(d.Keys)
		return CommandRequest{RequestData: d}
	case Hset:
		if d.Pair != nil {
			p := *d.Pair
			d.Pair = &p
		}
		return CommandRequest{RequestData: d}
	case Hmset:
		d.Pairs = slices.Clone(d.Pairs)
		return CommandRequest{RequestData: d}
	case Hmdel:
		d.Keys = slices.Clone(d.Keys)
		return CommandRequest{RequestData: d}
	case Hmexists:
		d.Keys = slices.Clone(d.Keys)
		return CommandRequest{RequestData: d}
	default:
		return r
	}
}

// Name returns the name of the contained variant, or "none" for a malformed request.
func (r CommandRequest) Name() string {
	if r.RequestData == nil {
		return "none"
	}
	return r.RequestData.Name()
}

// --------------------------------------------------------------------------
// Variants
// --------------------------------------------------------------------------

// Hget reads a single key.
type Hget struct {
	Table string `json:"table"`
	Key   string `json:"key"`
}

// Hmget reads many keys of one table.
type Hmget struct {
	Table string   `json:"table"`
	Keys  []string `json:"keys"`
}

// Hgetall reads every pair of a table.
type Hgetall struct {
	Table string `json:"table"`
}

// Hset writes a single pair. A missing pair is not an error, nothing is written.
type Hset struct {
	Table string   `json:"table"`
	Pair  *kv.Pair `json:"pair,omitempty"`
}

// Hmset writes many pairs to one table.
type Hmset struct {
	Table string    `json:"table"`
	Pairs []kv.Pair `json:"pairs"`
}

// Hdel removes a single key.
type Hdel struct {
	Table string `json:"table"`
	Key   string `json:"key"`
}

// Hmdel removes many keys of one table.
type Hmdel struct {
	Table string   `json:"table"`
	Keys  []string `json:"keys"`
}

// Hexists checks if a single key exists.
type Hexists struct {
	Table string `json:"table"`
	Key   string `json:"key"`
}

// Hmexists checks many keys of one table.
type Hmexists struct {
	Table string   `json:"table"`
	Keys  []string `json:"keys"`
}

// Unsupported stands for a variant that was decoded from the wire but has no handler
// (e.g. a newer client talking to an older server). Variant holds the tag as sent by
// the client and is only used for log messages; Name is always NameUnsupported.
type Unsupported struct {
	Variant string
}

const (
	NameHget     = "hget"
	NameHmget    = "hmget"
	NameHgetall  = "hgetall"
	NameHset     = "hset"
	NameHmset    = "hmset"
	NameHdel     = "hdel"
	NameHmdel    = "hmdel"
	NameHexists  = "hexists"
	NameHmexists = "hmexists"

	// NameUnsupported is shared by all unknown variants, so the set of names is closed.
	NameUnsupported = "unsupported"
)

func (Hget) Name() string     { return NameHget }
func (Hmget) Name() string    { return NameHmget }
func (Hgetall) Name() string  { return NameHgetall }
func (Hset) Name() string     { return NameHset }
func (Hmset) Name() string    { return NameHmset }
func (Hdel) Name() string     { return NameHdel }
func (Hmdel) Name() string    { return NameHmdel }
func (Hexists) Name() string  { return NameHexists }
func (Hmexists) Name() string { return NameHmexists }

func (Unsupported) Name() string { return NameUnsupported }

// --------------------------------------------------------------------------
// Constructors
// --------------------------------------------------------------------------

// NewHget creates a request reading table/key.
func NewHget(table, key string) CommandRequest {
	return CommandRequest{RequestData: Hget{Table: table, Key: key}}
}

// NewHmget creates a request reading many keys.
func NewHmget(table string, keys []string) CommandRequest {
	return CommandRequest{RequestData: Hmget{Table: table, Keys: keys}}
}

// NewHgetall creates a request reading a whole table.
func NewHgetall(table string) CommandRequest {
	return CommandRequest{RequestData: Hgetall{Table: table}}
}

// NewHset creates a request writing value to table/key.
func NewHset(table, key string, value kv.Value) CommandRequest {
	p := kv.NewPair(key, value)
	return CommandRequest{RequestData: Hset{Table: table, Pair: &p}}
}

// NewHmset creates a request writing many pairs.
func NewHmset(table string, pairs []kv.Pair) CommandRequest {
	return CommandRequest{RequestData: Hmset{Table: table, Pairs: pairs}}
}

// NewHdel creates a request removing table/key.
func NewHdel(table, key string) CommandRequest {
	return CommandRequest{RequestData: Hdel{Table: table, Key: key}}
}

// NewHmdel creates a request removing many keys.
func NewHmdel(table string, keys []string) CommandRequest {
	return CommandRequest{RequestData: Hmdel{Table: table, Keys: keys}}
}

// NewHexists creates a request checking table/key.
func NewHexists(table, key string) CommandRequest {
	return CommandRequest{RequestData: Hexists{Table: table, Key: key}}
}

// NewHmexists creates a request checking many keys.
func NewHmexists(table string, keys []string) CommandRequest {
	return CommandRequest{RequestData: Hmexists{Table: table, Keys: keys}}
}
