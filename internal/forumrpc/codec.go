package forumrpc

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// codecName replaces gRPC's default codec, so stock protobuf clients built
// from forum.proto can call the server.
const codecName = "proto"

// wireCodec encodes forum messages itself and hands any other protobuf
// message to the protobuf runtime.
type wireCodec struct{}

func (wireCodec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case wireMessage:
		return m.appendWire(nil), nil
	case proto.Message:
		return proto.Marshal(m)
	}
	return nil, fmt.Errorf("forumrpc: cannot marshal %T", v)
}

func (wireCodec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case wireMessage:
		if err := m.consumeWire(data); err != nil {
			return fmt.Errorf("forumrpc: unmarshal %T: %w", v, err)
		}
		return nil
	case proto.Message:
		return proto.Unmarshal(data, m)
	}
	return fmt.Errorf("forumrpc: cannot unmarshal into %T", v)
}

func (wireCodec) Name() string { return codecName }

func init() {
	encoding.RegisterCodec(wireCodec{})
}
