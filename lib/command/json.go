package command

import (
	"encoding/json"
	"fmt"
)

// --------------------------------------------------------------------------
// JSON
// --------------------------------------------------------------------------
//
// A request is encoded as an object with exactly one member, named after the variant:
//
//	{"hget": {"table": "score", "key": "u1"}}
//
// A request without a variant is encoded as {}.

// MarshalJSON implements the json.Marshaler interface for CommandRequest.
func (r CommandRequest) MarshalJSON() ([]byte, error) {
	if r.RequestData == nil {
		return []byte("{}"), nil
	}
	if u, ok := r.RequestData.(Unsupported); ok {
		return nil, fmt.Errorf("cannot encode unsupported variant %q", u.Variant)
	}
	return json.Marshal(map[string]RequestData{r.RequestData.Name(): r.RequestData})
}

// UnmarshalJSON implements the json.Unmarshaler interface for CommandRequest.
// Unknown variant names decode into Unsupported.
func (r *CommandRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) > 1 {
		return fmt.Errorf("request must contain at most one variant, got %d", len(raw))
	}

	r.RequestData = nil
	for name, body := range raw {
		rd, err := decodeVariant(name, body)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", name, err)
		}
		r.RequestData = rd
	}
	return nil
}

// decodeVariant decodes the body of the variant with the given name
func decodeVariant(name string, body json.RawMessage) (RequestData, error) {
	switch name {
	case NameHget:
		return decodeInto[Hget](body)
	case NameHmget:
		return decodeInto[Hmget](body)
	case NameHgetall:
		return decodeInto[Hgetall](body)
	case NameHset:
		return decodeInto[Hset](body)
	case NameHmset:
		return decodeInto[Hmset](body)
	case NameHdel:
		return decodeInto[Hdel](body)
	case NameHmdel:
		return decodeInto[Hmdel](body)
	case NameHexists:
		return decodeInto[Hexists](body)
	case NameHmexists:
		return decodeInto[Hmexists](body)
	default:
		return Unsupported{Variant: name}, nil
	}
}

func decodeInto[T RequestData](body json.RawMessage) (RequestData, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	return v, nil
}
