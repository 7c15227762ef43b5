package command

import (
	"errors"

	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/store"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("command")

// storageErr makes sure err is reported as a *kv.Error. Backends are expected to return
// StorageError already; anything else is wrapped into one.
func storageErr(op, table, key string, err error) error {
	var kvErr *kv.Error
	if errors.As(err, &kvErr) {
		return err
	}
	return kv.StorageError(op, table, key, err)
}

// --------------------------------------------------------------------------
// Single Key Commands
// --------------------------------------------------------------------------

// Execute returns the value of the key, 404 if the table or key does not exist.
func (c Hget) Execute(s store.IStore) CommandResponse {
	v, ok, err := s.Get(c.Table, c.Key)
	if err != nil {
		return ErrorResponse(storageErr(store.OpGet, c.Table, c.Key, err))
	}
	if !ok {
		return ErrorResponse(kv.NotFound(c.Table, c.Key))
	}
	return ValueResponse(v)
}

// Execute stores the pair and returns the previous value (or the default value).
// Without a pair nothing is written and the default value is returned.
func (c Hset) Execute(s store.IStore) CommandResponse {
	if c.Pair == nil {
		return ValueResponse(kv.Value{})
	}
	prev, _, err := s.Set(c.Table, c.Pair.Key, c.Pair.Value)
	if err != nil {
		return ErrorResponse(storageErr(store.OpSet, c.Table, c.Pair.Key, err))
	}
	return ValueResponse(prev)
}

// Execute removes the key and returns the removed value (or the default value).
func (c Hdel) Execute(s store.IStore) CommandResponse {
	prev, _, err := s.Del(c.Table, c.Key)
	if err != nil {
		return ErrorResponse(storageErr(store.OpDel, c.Table, c.Key, err))
	}
	return ValueResponse(prev)
}

// Execute returns a boolean value telling whether the key exists.
func (c Hexists) Execute(s store.IStore) CommandResponse {
	ok, err := s.Contains(c.Table, c.Key)
	if err != nil {
		return ErrorResponse(storageErr(store.OpContains, c.Table, c.Key, err))
	}
	return BoolResponse(ok)
}

// Execute returns all pairs of the table sorted by key. A missing table yields no pairs.
func (c Hgetall) Execute(s store.IStore) CommandResponse {
	pairs, err := s.GetAll(c.Table)
	if err != nil {
		return ErrorResponse(storageErr(store.OpGetAll, c.Table, "", err))
	}
	kv.SortPairs(pairs)
	return PairsResponse(pairs)
}

// --------------------------------------------------------------------------
// Batch Commands
// --------------------------------------------------------------------------
//
// Batches never fail as a whole: every item is processed on its own and a missing key or a
// failed storage call yields the default value at that position. The result is always
// aligned with the input.

// Execute returns one value per key.
func (c Hmget) Execute(s store.IStore) CommandResponse {
	values := make([]kv.Value, len(c.Keys))
	for i, key := range c.Keys {
		v, ok, err := s.Get(c.Table, key)
		if err != nil {
			Logger.Warningf("hmget: %v", storageErr(store.OpGet, c.Table, key, err))
			continue
		}
		if ok {
			values[i] = v
		}
	}
	return ValuesResponse(values)
}

// Execute stores every pair and returns the previous value per pair.
func (c Hmset) Execute(s store.IStore) CommandResponse {
	values := make([]kv.Value, len(c.Pairs))
	for i, p := range c.Pairs {
		prev, _, err := s.Set(c.Table, p.Key, p.Value)
		if err != nil {
			Logger.Warningf("hmset: %v", storageErr(store.OpSet, c.Table, p.Key, err))
			continue
		}
		values[i] = prev
	}
	return ValuesResponse(values)
}

// Execute removes every key and returns the removed value per key.
func (c Hmdel) Execute(s store.IStore) CommandResponse {
	values := make([]kv.Value, len(c.Keys))
	for i, key := range c.Keys {
		prev, _, err := s.Del(c.Table, key)
		if err != nil {
			Logger.Warningf("hmdel: %v", storageErr(store.OpDel, c.Table, key, err))
			continue
		}
		values[i] = prev
	}
	return ValuesResponse(values)
}

// Execute returns one boolean value per key. A failed lookup yields the default value
// instead of false.
func (c Hmexists) Execute(s store.IStore) CommandResponse {
	values := make([]kv.Value, len(c.Keys))
	for i, key := range c.Keys {
		ok, err := s.Contains(c.Table, key)
		if err != nil {
			Logger.Warningf("hmexists: %v", storageErr(store.OpContains, c.Table, key, err))
			continue
		}
		values[i] = kv.Bool(ok)
	}
	return ValuesResponse(values)
}

// --------------------------------------------------------------------------
// Unsupported
// --------------------------------------------------------------------------

// Execute never touches the store.
func (u Unsupported) Execute(store.IStore) CommandResponse {
	Logger.Warningf("no handler for request variant %q", u.Variant)
	return ErrorResponse(kv.Internal("Not implemented"))
}
