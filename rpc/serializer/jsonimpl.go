package serializer

import (
	"encoding/json"

	"github.com/ValentinKolb/hKV/lib/command"
	"github.com/ValentinKolb/hKV/lib/kv"
)

// NewJSONSerializer creates a new serializer using json encoding
func NewJSONSerializer() IRPCSerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the IRPCSerializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) SerializeRequest(req command.CommandRequest) ([]byte, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, kv.EncodeError(err)
	}
	return b, nil
}

func (j jsonSerializerImpl) DeserializeRequest(b []byte, req *command.CommandRequest) error {
	if err := json.Unmarshal(b, req); err != nil {
		return kv.DecodeError(err)
	}
	return nil
}

func (j jsonSerializerImpl) SerializeResponse(resp command.CommandResponse) ([]byte, error) {
	resp.Normalize()
	b, err := json.Marshal(resp)
	if err != nil {
		return nil, kv.EncodeError(err)
	}
	return b, nil
}

func (j jsonSerializerImpl) DeserializeResponse(b []byte, resp *command.CommandResponse) error {
	*resp = command.CommandResponse{}
	if err := json.Unmarshal(b, resp); err != nil {
		return kv.DecodeError(err)
	}
	resp.Normalize()
	return nil
}
