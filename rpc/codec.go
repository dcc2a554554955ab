package rpc

import (
	"encoding/json"
)

// jsonCodec carries the solver messages as plain JSON. It replaces
// connect's default protojson codec, which only accepts generated
// protobuf messages.
type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
