package proto

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/marmos91/blockstor/pkg/apiconsts"
)

// MsgAPICallResponse is the controller's generic reply to create, modify and
// delete calls. A single request may produce several of these, one per
// affected object or diagnostic.
type MsgAPICallResponse struct {
	RetCode          uint64
	MessageFormat    string
	CauseFormat      string
	CorrectionFormat string
	DetailsFormat    string
	ObjRefs          []Property
	Variables        []Property
}

func (m *MsgAPICallResponse) Marshal() []byte {
	var b []byte
	b = appendUint64(b, 1, m.RetCode)
	b = appendString(b, 2, m.MessageFormat)
	b = appendString(b, 3, m.CauseFormat)
	b = appendString(b, 4, m.CorrectionFormat)
	b = appendString(b, 5, m.DetailsFormat)
	b = appendProps(b, 6, m.ObjRefs)
	b = appendProps(b, 7, m.Variables)
	return b
}

func (m *MsgAPICallResponse) Unmarshal(data []byte) error {
	*m = MsgAPICallResponse{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeUint64(field, typ, &m.RetCode)
		case 2:
			return consumeString(field, typ, &m.MessageFormat)
		case 3:
			return consumeString(field, typ, &m.CauseFormat)
		case 4:
			return consumeString(field, typ, &m.CorrectionFormat)
		case 5:
			return consumeString(field, typ, &m.DetailsFormat)
		case 6:
			return consumeProp(field, typ, &m.ObjRefs)
		case 7:
			return consumeProp(field, typ, &m.Variables)
		}
		return nil
	})
}

// IsError reports whether the return code carries the error category mask.
func (m *MsgAPICallResponse) IsError() bool {
	return m.RetCode&apiconsts.MaskError == apiconsts.MaskError
}

// IsWarning reports whether the return code carries the warning category mask.
func (m *MsgAPICallResponse) IsWarning() bool {
	return !m.IsError() && m.RetCode&apiconsts.MaskWarn == apiconsts.MaskWarn
}

// IsInfo reports whether the return code carries the info category mask.
func (m *MsgAPICallResponse) IsInfo() bool {
	return !m.IsError() && !m.IsWarning() && m.RetCode&apiconsts.MaskInfo == apiconsts.MaskInfo
}

// IsSuccess reports whether none of the error, warning or info categories
// apply to the return code.
func (m *MsgAPICallResponse) IsSuccess() bool {
	return !m.IsError() && !m.IsWarning() && !m.IsInfo()
}

func (m *MsgAPICallResponse) String() string {
	return fmt.Sprintf("ApiCallResponse(0x%x, %q)", m.RetCode, m.MessageFormat)
}
