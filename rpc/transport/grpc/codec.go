package grpc

import (
	"fmt"
)

// codecName is sent as content-subtype ("application/grpc+hkv-raw")
const codecName = "hkv-raw"

// frame carries an already serialized request or response through gRPC.
// The payload is produced by the configured rpc serializer, gRPC only moves the bytes.
type frame struct {
	payload []byte
}

// rawCodec is a gRPC codec that passes frames through without encoding them again
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	f, ok := v.(*frame)
	if !ok {
		return nil, fmt.Errorf("%s codec: cannot marshal %T", codecName, v)
	}
	return f.payload, nil
}

func (rawCodec) Unmarshal(data []byte, v any) error {
	f, ok := v.(*frame)
	if !ok {
		return fmt.Errorf("%s codec: cannot unmarshal into %T", codecName, v)
	}
	// gRPC may reuse the receive buffer
	f.payload = append([]byte(nil), data...)
	return nil
}

func (rawCodec) Name() string {
	return codecName
}
