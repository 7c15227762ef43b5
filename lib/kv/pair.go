package kv

import (
	"slices"
	"strings"
)

// Pair is a key together with an optional Value.
// A Pair whose Value is the default Value carries no value.
type Pair struct {
	Key   string `json:"key"`
	Value Value  `json:"value"`
}

// NewPair creates a new pair from a key and a value.
func NewPair(key string, value Value) Pair {
	return Pair{
		Key:   key,
		Value: value,
	}
}

// KeyOnly creates a pair without a value.
func KeyOnly(key string) Pair {
	return Pair{Key: key}
}

// HasValue reports whether the pair carries a value.
func (p Pair) HasValue() bool {
	return !p.Value.IsNone()
}

// String returns a debug representation of the pair.
func (p Pair) String() string {
	return p.Key + "=" + p.Value.String()
}

// ComparePairs defines a total order over pairs: first by key, then by value.
func ComparePairs(a, b Pair) int {
	if c := strings.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return CompareValues(a.Value, b.Value)
}

// SortPairs sorts pairs in place using ComparePairs.
// Callers that need a deterministic order of a GetAll snapshot use this.
func SortPairs(pairs []Pair) {
	slices.SortFunc(pairs, ComparePairs)
}
