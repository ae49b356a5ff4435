package proto

import "google.golang.org/protobuf/encoding/protowire"

// VlmDfn is a volume definition inside a resource definition. Sizes are in
// KiB, the controller's internal granularity.
type VlmDfn struct {
	VlmNr    uint32
	VlmSize  uint64
	VlmMinor uint32
	UUID     string
	VlmProps []Property
}

func (m *VlmDfn) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, m.VlmNr)
	b = appendUint64(b, 2, m.VlmSize)
	b = appendUint32(b, 3, m.VlmMinor)
	b = appendString(b, 4, m.UUID)
	b = appendProps(b, 5, m.VlmProps)
	return b
}

func (m *VlmDfn) Unmarshal(data []byte) error {
	*m = VlmDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeUint32(field, typ, &m.VlmNr)
		case 2:
			return consumeUint64(field, typ, &m.VlmSize)
		case 3:
			return consumeUint32(field, typ, &m.VlmMinor)
		case 4:
			return consumeString(field, typ, &m.UUID)
		case 5:
			return consumeProp(field, typ, &m.VlmProps)
		}
		return nil
	})
}

// RscDfn is a cluster-wide resource definition.
type RscDfn struct {
	RscName      string
	RscDfnPort   uint32
	RscDfnSecret string
	UUID         string
	VlmDfns      []VlmDfn
	RscDfnProps  []Property
}

func (m *RscDfn) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.RscName)
	b = appendUint32(b, 2, m.RscDfnPort)
	b = appendString(b, 3, m.RscDfnSecret)
	b = appendString(b, 4, m.UUID)
	for i := range m.VlmDfns {
		b = appendMessage(b, 5, &m.VlmDfns[i])
	}
	b = appendProps(b, 6, m.RscDfnProps)
	return b
}

func (m *RscDfn) Unmarshal(data []byte) error {
	*m = RscDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.RscName)
		case 2:
			return consumeUint32(field, typ, &m.RscDfnPort)
		case 3:
			return consumeString(field, typ, &m.RscDfnSecret)
		case 4:
			return consumeString(field, typ, &m.UUID)
		case 5:
			var d VlmDfn
			if err := consumeMessage(field, typ, &d); err != nil {
				return err
			}
			m.VlmDfns = append(m.VlmDfns, d)
			return nil
		case 6:
			return consumeProp(field, typ, &m.RscDfnProps)
		}
		return nil
	})
}

// MsgCrtRscDfn requests creation of a resource definition.
type MsgCrtRscDfn struct {
	RscDfn RscDfn
}

func (m *MsgCrtRscDfn) Marshal() []byte {
	return appendMessage(nil, 1, &m.RscDfn)
}

func (m *MsgCrtRscDfn) Unmarshal(data []byte) error {
	*m = MsgCrtRscDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			return consumeMessage(field, typ, &m.RscDfn)
		}
		return nil
	})
}

// MsgModRscDfn requests property changes on a resource definition.
type MsgModRscDfn struct {
	RscName        string
	OverrideProps  []Property
	DeletePropKeys []string
}

func (m *MsgModRscDfn) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.RscName)
	b = appendProps(b, 2, m.OverrideProps)
	for _, k := range m.DeletePropKeys {
		b = appendString(b, 3, k)
	}
	return b
}

func (m *MsgModRscDfn) Unmarshal(data []byte) error {
	*m = MsgModRscDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.RscName)
		case 2:
			return consumeProp(field, typ, &m.OverrideProps)
		case 3:
			return consumeRepeatedString(field, typ, &m.DeletePropKeys)
		}
		return nil
	})
}

// MsgDelRscDfn requests deletion of a resource definition.
type MsgDelRscDfn struct {
	RscName string
}

func (m *MsgDelRscDfn) Marshal() []byte {
	return appendString(nil, 1, m.RscName)
}

func (m *MsgDelRscDfn) Unmarshal(data []byte) error {
	*m = MsgDelRscDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			return consumeString(field, typ, &m.RscName)
		}
		return nil
	})
}

// MsgLstRscDfn is the reply body of a resource definition enumeration.
type MsgLstRscDfn struct {
	RscDfns []RscDfn
}

func (m *MsgLstRscDfn) Marshal() []byte {
	var b []byte
	for i := range m.RscDfns {
		b = appendMessage(b, 1, &m.RscDfns[i])
	}
	return b
}

func (m *MsgLstRscDfn) Unmarshal(data []byte) error {
	*m = MsgLstRscDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			var d RscDfn
			if err := consumeMessage(field, typ, &d); err != nil {
				return err
			}
			m.RscDfns = append(m.RscDfns, d)
		}
		return nil
	})
}

// MsgCrtVlmDfn adds volume definitions to an existing resource definition.
type MsgCrtVlmDfn struct {
	RscName string
	VlmDfns []VlmDfn
}

func (m *MsgCrtVlmDfn) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.RscName)
	for i := range m.VlmDfns {
		b = appendMessage(b, 2, &m.VlmDfns[i])
	}
	return b
}

func (m *MsgCrtVlmDfn) Unmarshal(data []byte) error {
	*m = MsgCrtVlmDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.RscName)
		case 2:
			var d VlmDfn
			if err := consumeMessage(field, typ, &d); err != nil {
				return err
			}
			m.VlmDfns = append(m.VlmDfns, d)
		}
		return nil
	})
}

// MsgModVlmDfn requests a size change on a volume definition.
type MsgModVlmDfn struct {
	RscName string
	VlmNr   uint32
	VlmSize uint64
}

func (m *MsgModVlmDfn) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.RscName)
	b = appendUint32(b, 2, m.VlmNr)
	b = appendUint64(b, 3, m.VlmSize)
	return b
}

func (m *MsgModVlmDfn) Unmarshal(data []byte) error {
	*m = MsgModVlmDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.RscName)
		case 2:
			return consumeUint32(field, typ, &m.VlmNr)
		case 3:
			return consumeUint64(field, typ, &m.VlmSize)
		}
		return nil
	})
}

// MsgDelVlmDfn requests deletion of a volume definition.
type MsgDelVlmDfn struct {
	RscName string
	VlmNr   uint32
}

func (m *MsgDelVlmDfn) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.RscName)
	b = appendUint32(b, 2, m.VlmNr)
	return b
}

func (m *MsgDelVlmDfn) Unmarshal(data []byte) error {
	*m = MsgDelVlmDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.RscName)
		case 2:
			return consumeUint32(field, typ, &m.VlmNr)
		}
		return nil
	})
}

// Vlm is a deployed volume of a resource on a node.
type Vlm struct {
	VlmNr        uint32
	StorPoolName string
	DevicePath   string
}

func (m *Vlm) Marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, m.VlmNr)
	b = appendString(b, 2, m.StorPoolName)
	b = appendString(b, 3, m.DevicePath)
	return b
}

func (m *Vlm) Unmarshal(data []byte) error {
	*m = Vlm{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeUint32(field, typ, &m.VlmNr)
		case 2:
			return consumeString(field, typ, &m.StorPoolName)
		case 3:
			return consumeString(field, typ, &m.DevicePath)
		}
		return nil
	})
}

// Rsc is a resource deployed on a node.
type Rsc struct {
	Name     string
	NodeName string
	UUID     string
	Props    []Property
	Vlms     []Vlm
}

func (m *Rsc) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.NodeName)
	b = appendString(b, 3, m.UUID)
	b = appendProps(b, 4, m.Props)
	for i := range m.Vlms {
		b = appendMessage(b, 5, &m.Vlms[i])
	}
	return b
}

func (m *Rsc) Unmarshal(data []byte) error {
	*m = Rsc{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.Name)
		case 2:
			return consumeString(field, typ, &m.NodeName)
		case 3:
			return consumeString(field, typ, &m.UUID)
		case 4:
			return consumeProp(field, typ, &m.Props)
		case 5:
			var v Vlm
			if err := consumeMessage(field, typ, &v); err != nil {
				return err
			}
			m.Vlms = append(m.Vlms, v)
		}
		return nil
	})
}

// MsgCrtRsc requests deployment of a resource on a node. The target storage
// pool travels in the props under the well-known storage pool key.
type MsgCrtRsc struct {
	RscName  string
	NodeName string
	Props    []Property
}

func (m *MsgCrtRsc) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.RscName)
	b = appendString(b, 2, m.NodeName)
	b = appendProps(b, 3, m.Props)
	return b
}

func (m *MsgCrtRsc) Unmarshal(data []byte) error {
	*m = MsgCrtRsc{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.RscName)
		case 2:
			return consumeString(field, typ, &m.NodeName)
		case 3:
			return consumeProp(field, typ, &m.Props)
		}
		return nil
	})
}

// MsgDelRsc requests undeployment of a resource from a node.
type MsgDelRsc struct {
	RscName  string
	NodeName string
}

func (m *MsgDelRsc) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.RscName)
	b = appendString(b, 2, m.NodeName)
	return b
}

func (m *MsgDelRsc) Unmarshal(data []byte) error {
	*m = MsgDelRsc{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.RscName)
		case 2:
			return consumeString(field, typ, &m.NodeName)
		}
		return nil
	})
}

// MsgLstRsc is the reply body of a resource enumeration.
type MsgLstRsc struct {
	Rscs []Rsc
}

func (m *MsgLstRsc) Marshal() []byte {
	var b []byte
	for i := range m.Rscs {
		b = appendMessage(b, 1, &m.Rscs[i])
	}
	return b
}

func (m *MsgLstRsc) Unmarshal(data []byte) error {
	*m = MsgLstRsc{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			var r Rsc
			if err := consumeMessage(field, typ, &r); err != nil {
				return err
			}
			m.Rscs = append(m.Rscs, r)
		}
		return nil
	})
}
