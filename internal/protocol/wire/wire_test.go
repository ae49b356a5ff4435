package wire

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayloadLength(t *testing.T) {
	t.Run("ValidHeader", func(t *testing.T) {
		header := make([]byte, HeaderSize)
		binary.BigEndian.PutUint32(header[4:8], 1234)

		n, err := ParsePayloadLength(header)
		require.NoError(t, err)
		assert.Equal(t, uint32(1234), n)
	})

	t.Run("ShortHeader", func(t *testing.T) {
		_, err := ParsePayloadLength(make([]byte, 15))
		assert.ErrorIs(t, err, ErrMalformedHeader)
	})

	t.Run("ReservedBytesIgnored", func(t *testing.T) {
		header := make([]byte, HeaderSize)
		binary.BigEndian.PutUint32(header[0:4], 0xDEADBEEF)
		binary.BigEndian.PutUint32(header[4:8], 42)
		binary.BigEndian.PutUint64(header[8:16], 0xFFFFFFFFFFFFFFFF)

		n, err := ParsePayloadLength(header)
		require.NoError(t, err)
		assert.Equal(t, uint32(42), n)
	})

	t.Run("ExcessiveLength", func(t *testing.T) {
		header := make([]byte, HeaderSize)
		binary.BigEndian.PutUint32(header[4:8], MaxPayloadSize+1)

		_, err := ParsePayloadLength(header)
		assert.ErrorIs(t, err, ErrMalformedHeader)
	})
}

func TestSplitMessages(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		in := [][]byte{
			[]byte("header-msg"),
			[]byte("body one"),
			{},
			[]byte("body two"),
		}

		var payload []byte
		for _, m := range in {
			payload = AppendDelimited(payload, m)
		}

		out, err := SplitMessages(payload)
		require.NoError(t, err)
		require.Len(t, out, len(in))
		for i := range in {
			assert.Equal(t, in[i], out[i])
		}
	})

	t.Run("EmptyPayload", func(t *testing.T) {
		_, err := SplitMessages(nil)
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("TruncatedVarint", func(t *testing.T) {
		// Continuation bit set on the final byte.
		payload := AppendDelimited(nil, []byte("ok"))
		payload = append(payload, 0x80)

		_, err := SplitMessages(payload)
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("LengthOverrun", func(t *testing.T) {
		// Declares 10 bytes but only 3 follow.
		payload := []byte{10, 'a', 'b', 'c'}

		_, err := SplitMessages(payload)
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("LargeMessageLengths", func(t *testing.T) {
		// Multi-byte varint delimiters.
		big := make([]byte, 300)
		for i := range big {
			big[i] = byte(i)
		}
		payload := AppendDelimited(nil, big)
		payload = AppendDelimited(payload, []byte("tail"))

		out, err := SplitMessages(payload)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, big, out[0])
		assert.Equal(t, []byte("tail"), out[1])
	})
}

func TestBuildFrame(t *testing.T) {
	t.Run("LengthFieldMatchesPayload", func(t *testing.T) {
		frame := BuildFrame([]byte("hdr"), []byte("body"))

		require.GreaterOrEqual(t, len(frame), HeaderSize)
		n, err := ParsePayloadLength(frame[:HeaderSize])
		require.NoError(t, err)
		assert.Equal(t, len(frame), HeaderSize+int(n))
	})

	t.Run("ReservedFieldsZero", func(t *testing.T) {
		frame := BuildFrame([]byte("hdr"))
		assert.Equal(t, []byte{0, 0, 0, 0}, frame[0:4])
		assert.Equal(t, make([]byte, 8), frame[8:16])
	})

	t.Run("DecodeRebuildsInput", func(t *testing.T) {
		in := [][]byte{[]byte("hdr"), []byte("alpha"), []byte("beta")}
		frame := BuildFrame(in...)

		n, err := ParsePayloadLength(frame[:HeaderSize])
		require.NoError(t, err)
		require.Equal(t, len(frame)-HeaderSize, int(n))

		out, err := SplitMessages(frame[HeaderSize:])
		require.NoError(t, err)
		assert.Equal(t, in, out)

		// Re-encoding the split messages yields the identical frame.
		assert.Equal(t, frame, BuildFrame(out...))
	})

	t.Run("HeaderOnlyFrame", func(t *testing.T) {
		frame := BuildFrame([]byte("hdr"))
		out, err := SplitMessages(frame[HeaderSize:])
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, []byte("hdr"), out[0])
	})
}
