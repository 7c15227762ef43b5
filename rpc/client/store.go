package client

import (
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/store"
)

// NewRPCStore returns a store.IStore that forwards every call to a remote hKV server.
// This allows a remote server to be used wherever a local store is expected, e.g. as the
// backend of another service.
//
// Set and Del report loaded=true whenever the server returned a value other than the
// default value; a key that held the default value is reported as not loaded.
func NewRPCStore(c *Client) store.IStore {
	return &rpcStore{client: c}
}

type rpcStore struct {
	client *Client
}

// --------------------------------------------------------------------------
// Interface Methods (docu see the store package in interface.go)
// --------------------------------------------------------------------------

func (s *rpcStore) Get(table, key string) (kv.Value, bool, error) {
	v, err := s.client.Hget(table, key)
	if IsNotFound(err) {
		return kv.Value{}, false, nil
	}
	if err != nil {
		return kv.Value{}, false, kv.StorageError(store.OpGet, table, key, err)
	}
	return v, true, nil
}

func (s *rpcStore) Set(table, key string, value kv.Value) (kv.Value, bool, error) {
	prev, err := s.client.Hset(table, key, value)
	if err != nil {
		return kv.Value{}, false, kv.StorageError(store.OpSet, table, key, err)
	}
	return prev, !prev.IsNone(), nil
}

func (s *rpcStore) Del(table, key string) (kv.Value, bool, error) {
	prev, err := s.client.Hdel(table, key)
	if err != nil {
		return kv.Value{}, false, kv.StorageError(store.OpDel, table, key, err)
	}
	return prev, !prev.IsNone(), nil
}

func (s *rpcStore) Contains(table, key string) (bool, error) {
	ok, err := s.client.Hexists(table, key)
	if err != nil {
		return false, kv.StorageError(store.OpContains, table, key, err)
	}
	return ok, nil
}

func (s *rpcStore) GetAll(table string) ([]kv.Pair, error) {
	pairs, err := s.client.Hgetall(table)
	if err != nil {
		return nil, kv.StorageError(store.OpGetAll, table, "", err)
	}
	return pairs, nil
}
