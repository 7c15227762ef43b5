package command

import (
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/store"
)

// Dispatch routes the request to the handler of its variant and returns the response.
//
// A request without a variant is answered with 400 and never reaches the store. Errors
// never escape: every storage failure is already converted into a status by the handler.
//
// Thread-safety: Dispatch holds no state; concurrency guarantees are those of the store.
func Dispatch(req CommandRequest, s store.IStore) CommandResponse {
	if req.RequestData == nil {
		return ErrorResponse(kv.InvalidCommand("Request has no data"))
	}
	return req.RequestData.Execute(s)
}
