package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ValentinKolb/hKV/lib/command"
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/rpc/serializer"
	"github.com/ValentinKolb/hKV/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var (
	Logger = logger.GetLogger("rpc")
)

// ResponseError is returned by the typed client methods when the server answered with a
// status other than 200. The message is the one produced by the server.
type ResponseError struct {
	Status  uint32
	Message string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("server responded with status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 response of the server
func IsNotFound(err error) bool {
	var respErr *ResponseError
	return errors.As(err, &respErr) && respErr.Status == http.StatusNotFound
}

// invokeRPCRequest is a helper function used by the client to send requests.
// It returns an error only if the request could not be serialized, sent or the response
// could not be deserialized. Command failures are part of the returned response.
func invokeRPCRequest(req command.CommandRequest, transport transport.IRPCClientTransport, serializer serializer.IRPCSerializer) (command.CommandResponse, error) {
	// Serialize the request
	reqBytes, err := serializer.SerializeRequest(req)
	if err != nil {
		return command.CommandResponse{}, err
	}

	// Send the request
	respBytes, err := transport.Send(reqBytes)
	if err != nil {
		return command.CommandResponse{}, err
	}

	// Deserialize the response
	var resp command.CommandResponse
	if err := serializer.DeserializeResponse(respBytes, &resp); err != nil {
		return command.CommandResponse{}, fmt.Errorf("RPC client - %s: %w", req.Name(), err)
	}
	return resp, nil
}

// checkResponse turns a non 200 response into a *ResponseError
func checkResponse(resp command.CommandResponse) error {
	if resp.IsOK() {
		return nil
	}
	return &ResponseError{Status: resp.Status, Message: resp.Message}
}

// singleValue returns the only value of a successful response
func singleValue(resp command.CommandResponse) (kv.Value, error) {
	if err := checkResponse(resp); err != nil {
		return kv.Value{}, err
	}
	if len(resp.Values) != 1 {
		return kv.Value{}, fmt.Errorf("RPC client - expected 1 value, got %d", len(resp.Values))
	}
	return resp.Values[0], nil
}
