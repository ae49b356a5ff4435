// Package proto defines the controller message types and their wire codec.
//
// Messages travel in protobuf wire format inside varint-delimited frame
// sub-messages. The codec is written directly against protowire so the field
// layout stays under version control next to the types it encodes; the field
// numbers mirror the controller's message definitions and must not change.
package proto

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every controller message.
type Message interface {
	// Marshal serializes the message into protobuf wire format.
	Marshal() []byte
	// Unmarshal replaces the message contents with the decoded data.
	Unmarshal(data []byte) error
}

// Property is a single key/value entry in a message property list.
type Property struct {
	Key   string
	Value string
}

func (p *Property) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, p.Key)
	b = appendString(b, 2, p.Value)
	return b
}

func (p *Property) Unmarshal(data []byte) error {
	*p = Property{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &p.Key)
		case 2:
			return consumeString(field, typ, &p.Value)
		}
		return nil
	})
}

// PropsFromMap converts a map into a property list with stable ordering left
// to the caller; the controller does not depend on entry order.
func PropsFromMap(m map[string]string) []Property {
	props := make([]Property, 0, len(m))
	for k, v := range m {
		props = append(props, Property{Key: k, Value: v})
	}
	return props
}

// fieldFn handles one decoded field. For varint fields the raw bytes start
// at the varint; for bytes fields they start at the length prefix, which the
// consume helpers strip.
type fieldFn func(num protowire.Number, typ protowire.Type, field []byte) error

// unmarshalFields walks the wire-format fields of data, calling fn once per
// field with the bytes positioned at the field value. Unknown fields are
// skipped, matching protobuf semantics.
func unmarshalFields(data []byte, fn fieldFn) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("consume tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		if err := fn(num, typ, data); err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}

		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]
	}
	return nil
}

// ============================================================================
// Field append helpers (zero values are omitted, proto3-style)
// ============================================================================

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	return appendUint64(b, num, uint64(v))
}

func appendMessage(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.Marshal())
}

func appendProps(b []byte, num protowire.Number, props []Property) []byte {
	for i := range props {
		b = appendMessage(b, num, &props[i])
	}
	return b
}

// ============================================================================
// Field consume helpers
// ============================================================================

func consumeString(field []byte, typ protowire.Type, dst *string) error {
	if typ != protowire.BytesType {
		return fmt.Errorf("unexpected wire type %d for string", typ)
	}
	v, n := protowire.ConsumeString(field)
	if n < 0 {
		return protowire.ParseError(n)
	}
	*dst = v
	return nil
}

func consumeUint64(field []byte, typ protowire.Type, dst *uint64) error {
	if typ != protowire.VarintType {
		return fmt.Errorf("unexpected wire type %d for varint", typ)
	}
	v, n := protowire.ConsumeVarint(field)
	if n < 0 {
		return protowire.ParseError(n)
	}
	*dst = v
	return nil
}

func consumeUint32(field []byte, typ protowire.Type, dst *uint32) error {
	var v uint64
	if err := consumeUint64(field, typ, &v); err != nil {
		return err
	}
	*dst = uint32(v)
	return nil
}

func consumeMessage(field []byte, typ protowire.Type, m Message) error {
	if typ != protowire.BytesType {
		return fmt.Errorf("unexpected wire type %d for message", typ)
	}
	v, n := protowire.ConsumeBytes(field)
	if n < 0 {
		return protowire.ParseError(n)
	}
	return m.Unmarshal(v)
}

func consumeProp(field []byte, typ protowire.Type, dst *[]Property) error {
	var p Property
	if err := consumeMessage(field, typ, &p); err != nil {
		return err
	}
	*dst = append(*dst, p)
	return nil
}

func consumeRepeatedString(field []byte, typ protowire.Type, dst *[]string) error {
	var s string
	if err := consumeString(field, typ, &s); err != nil {
		return err
	}
	*dst = append(*dst, s)
	return nil
}
