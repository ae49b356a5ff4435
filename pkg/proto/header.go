package proto

import "google.golang.org/protobuf/encoding/protowire"

// MsgHeader is the first sub-message of every frame. It names the api call
// the frame belongs to and carries the id correlating a reply with its
// request.
type MsgHeader struct {
	APICall string
	MsgID   uint64
}

func (m *MsgHeader) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.APICall)
	b = appendUint64(b, 2, m.MsgID)
	return b
}

func (m *MsgHeader) Unmarshal(data []byte) error {
	*m = MsgHeader{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.APICall)
		case 2:
			return consumeUint64(field, typ, &m.MsgID)
		}
		return nil
	})
}

// MsgAPIVersion is the body of the version frame the controller sends
// immediately after accepting a connection.
type MsgAPIVersion struct {
	Version uint32
}

func (m *MsgAPIVersion) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, m.Version)
	return b
}

func (m *MsgAPIVersion) Unmarshal(data []byte) error {
	*m = MsgAPIVersion{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			return consumeUint32(field, typ, &m.Version)
		}
		return nil
	})
}
