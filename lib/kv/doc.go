// Package kv defines the data model shared by every layer of hKV: the Value
// tagged union, the key/value Pair and the closed error taxonomy.
//
// Key Components:
//
//   - Value: A scalar that is stored against a key. It is one of string, binary,
//     integer, float or bool. The zero Value carries no content and is used as the
//     "default" value throughout the command handlers.
//
//   - Pair: A key paired with an optional Value. Pairs have a total order (key,
//     then value) so snapshots of a table can be sorted and compared.
//
//   - Error: The error type of the storage and command layers. Every error has an
//     ErrCode and maps to a response status via Status() (NotFound -> 404,
//     InvalidCommand -> 400, everything else -> 500).
//
// Usage Example:
//
//	v := kv.Int(42)
//	p := kv.NewPair("answer", v)
//
//	if _, err := p.Value.AsString(); err != nil {
//	  fmt.Println(err) // Cannot convert value integer(42) to string
//	}
package kv
