// Package command implements the command model of hKV and its execution against a
// store.IStore.
//
// Key Components:
//
//   - CommandRequest: An envelope holding exactly one of the nine variants Hget, Hmget,
//     Hgetall, Hset, Hmset, Hdel, Hmdel, Hexists and Hmexists. A request without a
//     variant is malformed. Variants that were decoded from the wire but are unknown to
//     this version are represented by Unsupported.
//
//   - CommandResponse: Status (HTTP semantics), Message (error text, empty on success),
//     Values and Pairs. Responses are built with ValueResponse, ValuesResponse,
//     BoolResponse, PairsResponse and ErrorResponse.
//
//   - Dispatch: Routes a request to the Execute method of its variant. Every variant
//     implements RequestData, so a variant without a handler does not compile.
//
// Status Mapping:
//
//	malformed request (no variant)    -> 400 "Cannot parse command: `Request has no data`"
//	unsupported variant                -> 500 "Internal error: Not implemented"
//	Hget on a missing table or key     -> 404 "Not found for table: T, key: K"
//	storage failure (single key, all)  -> 500 with the storage error text
//
// Batch commands (Hmget, Hmset, Hmdel, Hmexists) never fail as a whole. Their result is
// aligned with the input and uses the default kv.Value for missing keys and failed items.
//
// Usage Example:
//
//	s := memstore.NewMemStore()
//
//	command.Dispatch(command.NewHset("t1", "hello", kv.String("world")), s)
//	resp := command.Dispatch(command.NewHget("t1", "hello"), s)
//	// resp.Status == 200, resp.Values == [string("world")]
package command
