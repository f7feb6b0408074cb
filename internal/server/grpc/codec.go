package grpc

import (
	"encoding/json"
	"google.golang.org/grpc/encoding"
)

// codecName is negotiated through the content-subtype: application/grpc+json.
const codecName = "json"

// jsonCodec carries the analytics messages as JSON instead of protobuf, so cell values keep
// their {"type", "value"} shape end to end.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return codecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
