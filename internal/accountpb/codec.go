package accountpb

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the content-subtype of the JSON codec (application/grpc+json).
// Plain application/grpc callers keep the default proto codec.
const CodecName = "json"

var (
	jsonMarshal   = protojson.MarshalOptions{EmitUnpopulated: true}
	jsonUnmarshal = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// Codec carries the account messages as protojson for callers that ask for
// the json content-subtype.
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("failed to marshal, message is %T, want proto.Message", v)
	}
	return MarshalJSON(m)
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("failed to unmarshal, message is %T, want proto.Message", v)
	}
	if len(data) == 0 {
		proto.Reset(m)
		return nil
	}
	return UnmarshalJSON(data, m)
}

func (Codec) Name() string { return CodecName }

// MarshalJSON renders m with every field present, enums by name and
// non-finite floats as "Infinity", "-Infinity" or "NaN".
func MarshalJSON(m proto.Message) ([]byte, error) {
	b, err := jsonMarshal.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", m, err)
	}
	return b, nil
}

// UnmarshalJSON accepts enum names or numbers and ignores unknown fields.
func UnmarshalJSON(data []byte, m proto.Message) error {
	if err := jsonUnmarshal.Unmarshal(data, m); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", m, err)
	}
	return nil
}
