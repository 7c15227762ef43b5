package serializer

import "github.com/ValentinKolb/hKV/lib/command"

// IRPCSerializer is the interface for all request and response serializers.
//
// Errors are reported as *kv.Error: kv.ErrCEncode for serialization failures and
// kv.ErrCDecode for deserialization failures, so callers can turn them into a response
// with command.ErrorResponse.
type IRPCSerializer interface {
	// SerializeRequest serializes a request into a byte array
	SerializeRequest(req command.CommandRequest) ([]byte, error)
	// DeserializeRequest deserializes a byte array into a request
	DeserializeRequest(b []byte, req *command.CommandRequest) error
	// SerializeResponse serializes a response into a byte array
	SerializeResponse(resp command.CommandResponse) ([]byte, error)
	// DeserializeResponse deserializes a byte array into a response.
	// The slices of the decoded response are never nil.
	DeserializeResponse(b []byte, resp *command.CommandResponse) error
}

// New returns the serializer with the given name ("json" or "proto").
func New(name string) (IRPCSerializer, bool) {
	switch name {
	case "json":
		return NewJSONSerializer(), true
	case "proto", "protobuf":
		return NewProtoSerializer(), true
	default:
		return nil, false
	}
}
