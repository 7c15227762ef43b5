package serializer

import (
	"fmt"

	"github.com/ValentinKolb/hKV/lib/command"
	"github.com/ValentinKolb/hKV/lib/kv"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// NewProtoSerializer creates a new serializer using the protobuf messages of api/abi.proto
func NewProtoSerializer() IRPCSerializer {
	return &protoSerializerImpl{}
}

// protoSerializerImpl implements the IRPCSerializer interface with the protobuf runtime.
// Requests and responses are converted to dynamic messages of abiFile and back.
type protoSerializerImpl struct {
}

// Deterministic output keeps the fields of a message in field number order
var marshalOptions = proto.MarshalOptions{Deterministic: true}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (p protoSerializerImpl) SerializeRequest(req command.CommandRequest) ([]byte, error) {
	if req.RequestData == nil {
		return []byte{}, nil
	}

	fd := abiRequest.Fields().ByName(protoreflect.Name(req.Name()))
	if fd == nil || fd.ContainingOneof() != requestOneof {
		return nil, kv.EncodeError(fmt.Errorf("cannot encode variant %s", req.Name()))
	}
	body := dynamicpb.NewMessage(fd.Message())

	switch c := req.RequestData.(type) {
	case command.Hget:
		setTableKey(body, c.Table, c.Key)
	case command.Hgetall:
		setString(body, "table", c.Table)
	case command.Hmget:
		setTableKeys(body, c.Table, c.Keys)
	case command.Hset:
		setString(body, "table", c.Table)
		if c.Pair != nil {
			body.Set(fieldOf(body, "pair"), protoreflect.ValueOfMessage(pairMessage(*c.Pair)))
		}
	case command.Hmset:
		setString(body, "table", c.Table)
		list := body.Mutable(fieldOf(body, "pairs")).List()
		for _, pair := range c.Pairs {
			list.Append(protoreflect.ValueOfMessage(pairMessage(pair)))
		}
	case command.Hdel:
		setTableKey(body, c.Table, c.Key)
	case command.Hmdel:
		setTableKeys(body, c.Table, c.Keys)
	case command.Hexists:
		setTableKey(body, c.Table, c.Key)
	case command.Hmexists:
		setTableKeys(body, c.Table, c.Keys)
	default:
		return nil, kv.EncodeError(fmt.Errorf("cannot encode variant %s", req.Name()))
	}

	m := dynamicpb.NewMessage(abiRequest)
	m.Set(fd, protoreflect.ValueOfMessage(body))
	return marshal(m)
}

// DeserializeRequest follows protobuf semantics: a later oneof member replaces an
// earlier one, a repeated member is merged into the earlier occurrence.
func (p protoSerializerImpl) DeserializeRequest(b []byte, req *command.CommandRequest) error {
	req.RequestData = nil

	m := dynamicpb.NewMessage(abiRequest)
	if err := proto.Unmarshal(b, m); err != nil {
		return kv.DecodeError(err)
	}

	fd := m.WhichOneof(requestOneof)
	if fd == nil {
		req.RequestData = unknownVariant(m.GetUnknown())
		return nil
	}
	req.RequestData = readCommand(fd.Name(), m.Get(fd).Message())
	return nil
}

func (p protoSerializerImpl) SerializeResponse(resp command.CommandResponse) ([]byte, error) {
	m := dynamicpb.NewMessage(abiResponse)
	if resp.Status != 0 {
		m.Set(responseStatus, protoreflect.ValueOfUint32(resp.Status))
	}
	if resp.Message != "" {
		m.Set(responseMessage, protoreflect.ValueOfString(resp.Message))
	}

	// every value is written, even the default value, to keep batches aligned
	values := m.Mutable(responseValues).List()
	for _, v := range resp.Values {
		values.Append(protoreflect.ValueOfMessage(valueMessage(v)))
	}
	pairs := m.Mutable(responsePairs).List()
	for _, pair := range resp.Pairs {
		pairs.Append(protoreflect.ValueOfMessage(pairMessage(pair)))
	}

	return marshal(m)
}

func (p protoSerializerImpl) DeserializeResponse(b []byte, resp *command.CommandResponse) error {
	*resp = command.CommandResponse{}
	resp.Normalize()

	m := dynamicpb.NewMessage(abiResponse)
	if err := proto.Unmarshal(b, m); err != nil {
		return kv.DecodeError(err)
	}

	resp.Status = uint32(m.Get(responseStatus).Uint())
	resp.Message = m.Get(responseMessage).String()

	values := m.Get(responseValues).List()
	for i := 0; i < values.Len(); i++ {
		resp.Values = append(resp.Values, readValue(values.Get(i).Message()))
	}
	pairs := m.Get(responsePairs).List()
	for i := 0; i < pairs.Len(); i++ {
		resp.Pairs = append(resp.Pairs, readPair(pairs.Get(i).Message()))
	}
	return nil
}

// --------------------------------------------------------------------------
// Encoding helper
// --------------------------------------------------------------------------

func marshal(m proto.Message) ([]byte, error) {
	b, err := marshalOptions.Marshal(m)
	if err != nil {
		return nil, kv.EncodeError(err)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

func fieldOf(m protoreflect.Message, name protoreflect.Name) protoreflect.FieldDescriptor {
	return m.Descriptor().Fields().ByName(name)
}

// setString sets a string field, the empty string is the proto3 default and stays unset
func setString(m protoreflect.Message, name protoreflect.Name, s string) {
	if s != "" {
		m.Set(fieldOf(m, name), protoreflect.ValueOfString(s))
	}
}

func setTableKey(m protoreflect.Message, table, key string) {
	setString(m, "table", table)
	setString(m, "key", key)
}

func setTableKeys(m protoreflect.Message, table string, keys []string) {
	setString(m, "table", table)
	list := m.Mutable(fieldOf(m, "keys")).List()
	for _, key := range keys {
		// repeated strings keep empty elements
		list.Append(protoreflect.ValueOfString(key))
	}
}

func valueMessage(v kv.Value) *dynamicpb.Message {
	m := dynamicpb.NewMessage(abiValue)
	fields := abiValue.Fields()

	switch v.Kind() {
	case kv.KindString:
		s, _ := v.AsString()
		m.Set(fields.ByName("string"), protoreflect.ValueOfString(s))
	case kv.KindBinary:
		bin, _ := v.AsBinary()
		m.Set(fields.ByName("binary"), protoreflect.ValueOfBytes(bin))
	case kv.KindInteger:
		i, _ := v.AsInt()
		m.Set(fields.ByName("integer"), protoreflect.ValueOfInt64(i))
	case kv.KindFloat:
		f, _ := v.AsFloat()
		m.Set(fields.ByName("float"), protoreflect.ValueOfFloat64(f))
	case kv.KindBool:
		bo, _ := v.AsBool()
		m.Set(fields.ByName("bool"), protoreflect.ValueOfBool(bo))
	}
	return m
}

func pairMessage(pair kv.Pair) *dynamicpb.Message {
	m := dynamicpb.NewMessage(abiPair)
	if pair.Key != "" {
		m.Set(pairKey, protoreflect.ValueOfString(pair.Key))
	}
	if pair.HasValue() {
		m.Set(pairValue, protoreflect.ValueOfMessage(valueMessage(pair.Value)))
	}
	return m
}

// --------------------------------------------------------------------------
// Decoding helper
// --------------------------------------------------------------------------

// readCommand converts the body of the request variant with the given name
func readCommand(name protoreflect.Name, body protoreflect.Message) command.RequestData {
	table := body.Get(fieldOf(body, "table")).String()

	switch string(name) {
	case command.NameHget:
		return command.Hget{Table: table, Key: readString(body, "key")}
	case command.NameHgetall:
		return command.Hgetall{Table: table}
	case command.NameHmget:
		return command.Hmget{Table: table, Keys: readStrings(body, "keys")}
	case command.NameHset:
		hset := command.Hset{Table: table}
		if fd := fieldOf(body, "pair"); body.Has(fd) {
			pair := readPair(body.Get(fd).Message())
			hset.Pair = &pair
		}
		return hset
	case command.NameHmset:
		list := body.Get(fieldOf(body, "pairs")).List()
		pairs := make([]kv.Pair, 0, list.Len())
		for i := 0; i < list.Len(); i++ {
			pairs = append(pairs, readPair(list.Get(i).Message()))
		}
		return command.Hmset{Table: table, Pairs: pairs}
	case command.NameHdel:
		return command.Hdel{Table: table, Key: readString(body, "key")}
	case command.NameHmdel:
		return command.Hmdel{Table: table, Keys: readStrings(body, "keys")}
	case command.NameHexists:
		return command.Hexists{Table: table, Key: readString(body, "key")}
	case command.NameHmexists:
		return command.Hmexists{Table: table, Keys: readStrings(body, "keys")}
	default:
		return command.Unsupported{Variant: string(name)}
	}
}

// unknownVariant maps fields outside the request oneof to Unsupported.
// Only length-delimited fields can carry a variant, other unknown fields are ignored.
func unknownVariant(raw protoreflect.RawFields) command.RequestData {
	var data command.RequestData
	for len(raw) > 0 {
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			break
		}
		m := protowire.ConsumeFieldValue(num, typ, raw[n:])
		if m < 0 {
			break
		}
		raw = raw[n+m:]

		if typ == protowire.BytesType {
			data = command.Unsupported{Variant: fmt.Sprintf("field %d", num)}
		}
	}
	return data
}

func readString(m protoreflect.Message, name protoreflect.Name) string {
	return m.Get(fieldOf(m, name)).String()
}

func readStrings(m protoreflect.Message, name protoreflect.Name) []string {
	list := m.Get(fieldOf(m, name)).List()
	out := make([]string, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		out = append(out, list.Get(i).String())
	}
	return out
}

func readPair(m protoreflect.Message) kv.Pair {
	pair := kv.Pair{Key: m.Get(pairKey).String()}
	if m.Has(pairValue) {
		pair.Value = readValue(m.Get(pairValue).Message())
	}
	return pair
}

func readValue(m protoreflect.Message) kv.Value {
	fd := m.WhichOneof(valueOneof)
	if fd == nil {
		return kv.Value{}
	}

	v := m.Get(fd)
	switch fd.Name() {
	case "string":
		return kv.String(v.String())
	case "binary":
		return kv.Binary(v.Bytes())
	case "integer":
		return kv.Int(v.Int())
	case "float":
		return kv.Float(v.Float())
	case "bool":
		return kv.Bool(v.Bool())
	default:
		return kv.Value{}
	}
}
