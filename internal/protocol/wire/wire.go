// Package wire implements the controller framing protocol: a fixed 16-byte
// outer header followed by a payload of varint-delimited sub-messages.
//
// Outer header layout (big-endian):
//
//	offset  size  field
//	  0      4    reserved type (written as 0, ignored on read)
//	  4      4    payload length N
//	  8      8    reserved (written as 0, ignored on read)
//	 16      N    inner payload
//
// The inner payload is a concatenation of (varint(len) || bytes) segments.
// The first segment is always the header sub-message carrying the api-call
// tag and the message id; segments after it are the message bodies.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	// HeaderSize is the size of the outer frame header.
	HeaderSize = 16

	// MaxPayloadSize is the maximum accepted inner payload length.
	// Protects against memory exhaustion from corrupt length fields.
	MaxPayloadSize = 16 << 20 // 16 MiB

	// ReadChunkSize is how much the receiver reads from the socket at once.
	ReadChunkSize = 4096
)

// ErrMalformedHeader reports an outer header that cannot be parsed.
var ErrMalformedHeader = errors.New("malformed frame header")

// ErrMalformedPayload reports an inner payload whose varint-delimited
// structure is inconsistent with the declared payload length.
var ErrMalformedPayload = errors.New("malformed frame payload")

// ParsePayloadLength extracts the inner payload length from an outer header.
// Only bytes 4..8 are interpreted; the reserved fields around them are
// accepted with any content.
func ParsePayloadLength(header []byte) (uint32, error) {
	if len(header) < HeaderSize {
		return 0, fmt.Errorf("%w: got %d bytes, need %d", ErrMalformedHeader, len(header), HeaderSize)
	}
	length := binary.BigEndian.Uint32(header[4:8])
	if length > MaxPayloadSize {
		return 0, fmt.Errorf("%w: payload length %d exceeds maximum %d", ErrMalformedHeader, length, MaxPayloadSize)
	}
	return length, nil
}

// SplitMessages splits an inner payload into its raw sub-messages.
// The varint-delimited segments must consume the payload exactly.
// An empty payload is malformed: every frame carries at least the header
// sub-message.
func SplitMessages(payload []byte) ([][]byte, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload, header sub-message required", ErrMalformedPayload)
	}

	var msgs [][]byte
	rest := payload
	for len(rest) > 0 {
		length, n := protowire.ConsumeVarint(rest)
		if n < 0 {
			return nil, fmt.Errorf("%w: truncated varint at offset %d", ErrMalformedPayload, len(payload)-len(rest))
		}
		rest = rest[n:]
		if length > uint64(len(rest)) {
			return nil, fmt.Errorf("%w: sub-message length %d exceeds %d remaining bytes", ErrMalformedPayload, length, len(rest))
		}
		msgs = append(msgs, rest[:length])
		rest = rest[length:]
	}
	return msgs, nil
}

// AppendDelimited appends one sub-message as a varint(len)||bytes segment.
func AppendDelimited(buf, msg []byte) []byte {
	buf = protowire.AppendVarint(buf, uint64(len(msg)))
	return append(buf, msg...)
}

// BuildFrame assembles a complete frame from serialized sub-messages.
// The first sub-message must be the serialized header sub-message; callers
// are responsible for that ordering.
func BuildFrame(subMessages ...[]byte) []byte {
	payloadLen := 0
	for _, m := range subMessages {
		payloadLen += protowire.SizeVarint(uint64(len(m))) + len(m)
	}

	frame := make([]byte, HeaderSize, HeaderSize+payloadLen)
	binary.BigEndian.PutUint32(frame[4:8], uint32(payloadLen))
	for _, m := range subMessages {
		frame = AppendDelimited(frame, m)
	}
	return frame
}
