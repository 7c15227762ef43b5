// Package serializer provides request and response serialization for the hKV RPC
// system. It defines a common interface and two implementations that translate
// between the command model and bytes on the wire.
//
// Key Components:
//
//   - IRPCSerializer: Core interface that all serializer implementations must satisfy.
//     Errors are *kv.Error values (EncodeError / DecodeError) and map to status 500.
//
//   - protoSerializerImpl: The messages of api/abi.proto. The schema is assembled as a
//     descriptor (abi.go) and messages are handled as dynamicpb messages, so proto.Marshal
//     and proto.Unmarshal apply the usual protobuf rules (oneof replacement, merging of
//     repeated occurrences, UTF-8 checks). Unknown fields are skipped; an unknown request
//     variant decodes into command.Unsupported. Every response value is written,
//     including the default value, so batch results stay aligned with their input.
//
//   - jsonSerializerImpl: JSON encoding, useful for debugging or interoperability with
//     other systems. A request is an object with a single member named after the
//     variant, e.g. {"hget": {"table": "t", "key": "k"}}.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	Serializers are typically created once and reused throughout the application:
//
//	  s := serializer.NewProtoSerializer()
//	  data, err := s.SerializeRequest(command.NewHget("score", "u1"))
//	  // ... send data ...
//	  var resp command.CommandResponse
//	  err = s.DeserializeResponse(receivedData, &resp)
package serializer
