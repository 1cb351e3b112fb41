package forumrpc

import (
	"bytes"
	"time"

	"github.com/dmitrijs2005/gophforum/internal/models"
	"google.golang.org/protobuf/encoding/protowire"
)

// wireMessage is a message that encodes itself in the protobuf binary
// format described by forum.proto.
type wireMessage interface {
	appendWire(b []byte) []byte
	consumeWire(b []byte) error
}

// Zero values are omitted, as proto3 does for scalar fields.

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendMessage(b []byte, num protowire.Number, m []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m)
}

// wireField is one decoded field. Only varint and length-delimited values
// are kept; other wire types are skipped.
type wireField struct {
	typ    protowire.Type
	varint uint64
	data   []byte
}

// asString returns a length-delimited value as a string, or "" for a field
// of another wire type.
func (f wireField) asString() string {
	if f.typ != protowire.BytesType {
		return ""
	}
	return string(f.data)
}

// asBytes copies the value out, since gRPC reuses the receive buffer.
func (f wireField) asBytes() []byte {
	if f.typ != protowire.BytesType {
		return nil
	}
	return bytes.Clone(f.data)
}

func (f wireField) asInt32() int {
	if f.typ != protowire.VarintType {
		return 0
	}
	return int(int32(f.varint))
}

func (f wireField) asInt64() int64 {
	if f.typ != protowire.VarintType {
		return 0
	}
	return int64(f.varint)
}

// message reports whether f can hold an embedded message.
func (f wireField) message() bool { return f.typ == protowire.BytesType }

// consumeFields walks the fields of b in order and passes each to fn.
// Unknown fields are ignored by fn and skipped here.
func consumeFields(b []byte, fn func(num protowire.Number, f wireField) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := wireField{typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.data, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if err := fn(num, f); err != nil {
			return err
		}
	}
	return nil
}

func appendPrincipal(b []byte, p models.Principal) []byte {
	b = appendString(b, 1, p.ID)
	b = appendString(b, 2, p.Email)
	return appendString(b, 3, p.DisplayName)
}

func consumePrincipal(b []byte, p *models.Principal) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		switch num {
		case 1:
			p.ID = f.asString()
		case 2:
			p.Email = f.asString()
		case 3:
			p.DisplayName = f.asString()
		}
		return nil
	})
}

// appendTimestamp encodes t as google.protobuf.Timestamp.
func appendTimestamp(b []byte, t time.Time) []byte {
	b = appendInt(b, 1, t.Unix())
	return appendInt(b, 2, int64(t.Nanosecond()))
}

func consumeTimestamp(b []byte, t *time.Time) error {
	var sec, nsec int64
	err := consumeFields(b, func(num protowire.Number, f wireField) error {
		switch num {
		case 1:
			sec = f.asInt64()
		case 2:
			nsec = int64(f.asInt32())
		}
		return nil
	})
	if err != nil {
		return err
	}
	*t = time.Unix(sec, nsec).UTC()
	return nil
}

func appendThread(b []byte, t models.Thread) []byte {
	b = appendString(b, 1, t.ID)
	b = appendString(b, 2, t.Title)
	b = appendString(b, 3, t.Body)
	b = appendString(b, 4, t.Category)
	b = appendString(b, 5, t.AuthorID)
	b = appendString(b, 6, t.AuthorName)
	if !t.CreatedAt.IsZero() {
		b = appendMessage(b, 7, appendTimestamp(nil, t.CreatedAt))
	}
	return appendInt(b, 8, int64(t.Replies))
}

func consumeThread(b []byte, t *models.Thread) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		switch num {
		case 1:
			t.ID = f.asString()
		case 2:
			t.Title = f.asString()
		case 3:
			t.Body = f.asString()
		case 4:
			t.Category = f.asString()
		case 5:
			t.AuthorID = f.asString()
		case 6:
			t.AuthorName = f.asString()
		case 7:
			if f.message() {
				return consumeTimestamp(f.data, &t.CreatedAt)
			}
		case 8:
			t.Replies = f.asInt32()
		}
		return nil
	})
}
