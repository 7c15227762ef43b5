package serializer

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// --------------------------------------------------------------------------
// Schema of api/abi.proto
// --------------------------------------------------------------------------

// abiFile is the file descriptor of api/abi.proto. Messages are created from it with
// dynamicpb and encoded by the protobuf runtime.
var abiFile = mustBuildABI()

var (
	abiValue   = abiFile.Messages().ByName("Value")
	valueOneof = abiValue.Oneofs().ByName("value")

	abiPair   = abiFile.Messages().ByName("Kvpair")
	pairKey   = abiPair.Fields().ByName("key")
	pairValue = abiPair.Fields().ByName("value")

	abiRequest   = abiFile.Messages().ByName("Request")
	requestOneof = abiRequest.Oneofs().ByName("request_data")

	abiResponse     = abiFile.Messages().ByName("Response")
	responseStatus  = abiResponse.Fields().ByName("status")
	responseMessage = abiResponse.Fields().ByName("message")
	responseValues  = abiResponse.Fields().ByName("values")
	responsePairs   = abiResponse.Fields().ByName("pairs")
)

func mustBuildABI() protoreflect.FileDescriptor {
	fd, err := protodesc.NewFile(abiDescriptor(), nil)
	if err != nil {
		panic(fmt.Sprintf("invalid descriptor for api/abi.proto: %v", err))
	}
	return fd
}

// abiDescriptor mirrors api/abi.proto field by field.
func abiDescriptor() *descriptorpb.FileDescriptorProto {
	const (
		optional = descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
		repeated = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
	)

	str := func(name string, num int32) *descriptorpb.FieldDescriptorProto {
		return field(name, num, optional, descriptorpb.FieldDescriptorProto_TYPE_STRING, "")
	}
	tableKey := func(name string) *descriptorpb.DescriptorProto {
		return message(name, str("table", 1), str("key", 2))
	}
	tableKeys := func(name string) *descriptorpb.DescriptorProto {
		return message(name, str("table", 1),
			field("keys", 2, repeated, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""))
	}

	value := message("Value",
		field("string", 1, optional, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
		field("binary", 2, optional, descriptorpb.FieldDescriptorProto_TYPE_BYTES, ""),
		field("integer", 3, optional, descriptorpb.FieldDescriptorProto_TYPE_INT64, ""),
		field("float", 4, optional, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE, ""),
		field("bool", 5, optional, descriptorpb.FieldDescriptorProto_TYPE_BOOL, ""),
	)
	oneof(value, "value")

	request := message("Request",
		field("hget", 1, optional, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Hget"),
		field("hgetall", 2, optional, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Hgetall"),
		field("hmget", 3, optional, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Hmget"),
		field("hset", 4, optional, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Hset"),
		field("hmset", 5, optional, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Hmset"),
		field("hdel", 6, optional, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Hdel"),
		field("hmdel", 7, optional, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Hmdel"),
		field("hexists", 8, optional, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Hexists"),
		field("hmexists", 9, optional, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Hmexists"),
	)
	oneof(request, "request_data")

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("api/abi.proto"),
		Package: proto.String("hkv"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			value,
			message("Kvpair",
				str("key", 1),
				field("value", 2, optional, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Value"),
			),
			tableKey("Hget"),
			message("Hgetall", str("table", 1)),
			tableKeys("Hmget"),
			message("Hset", str("table", 1),
				field("pair", 2, optional, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Kvpair")),
			message("Hmset", str("table", 1),
				field("pairs", 2, repeated, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Kvpair")),
			tableKey("Hdel"),
			tableKeys("Hmdel"),
			tableKey("Hexists"),
			tableKeys("Hmexists"),
			request,
			message("Response",
				field("status", 1, optional, descriptorpb.FieldDescriptorProto_TYPE_UINT32, ""),
				str("message", 2),
				field("values", 3, repeated, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Value"),
				field("pairs", 4, repeated, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "Kvpair"),
			),
		},
	}
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

// field describes a field. typeName is the name of a message in package hkv, empty for scalars.
func field(name string, num int32, label descriptorpb.FieldDescriptorProto_Label,
	typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
	f := &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  label.Enum(),
		Type:   typ.Enum(),
	}
	if typeName != "" {
		f.TypeName = proto.String(".hkv." + typeName)
	}
	return f
}

// oneof puts every field of msg into a single oneof with the given name.
func oneof(msg *descriptorpb.DescriptorProto, name string) {
	msg.OneofDecl = []*descriptorpb.OneofDescriptorProto{{Name: proto.String(name)}}
	for _, f := range msg.Field {
		f.OneofIndex = proto.Int32(0)
	}
}
