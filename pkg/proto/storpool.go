package proto

import "google.golang.org/protobuf/encoding/protowire"

// StorPoolDfn is a cluster-wide storage pool definition.
type StorPoolDfn struct {
	StorPoolName string
	UUID         string
	Props        []Property
}

func (m *StorPoolDfn) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.StorPoolName)
	b = appendString(b, 2, m.UUID)
	b = appendProps(b, 3, m.Props)
	return b
}

func (m *StorPoolDfn) Unmarshal(data []byte) error {
	*m = StorPoolDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.StorPoolName)
		case 2:
			return consumeString(field, typ, &m.UUID)
		case 3:
			return consumeProp(field, typ, &m.Props)
		}
		return nil
	})
}

// MsgCrtStorPoolDfn requests creation of a storage pool definition.
type MsgCrtStorPoolDfn struct {
	StorPoolDfn StorPoolDfn
}

func (m *MsgCrtStorPoolDfn) Marshal() []byte {
	return appendMessage(nil, 1, &m.StorPoolDfn)
}

func (m *MsgCrtStorPoolDfn) Unmarshal(data []byte) error {
	*m = MsgCrtStorPoolDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			return consumeMessage(field, typ, &m.StorPoolDfn)
		}
		return nil
	})
}

// MsgModStorPoolDfn requests property changes on a storage pool definition.
type MsgModStorPoolDfn struct {
	StorPoolName   string
	OverrideProps  []Property
	DeletePropKeys []string
}

func (m *MsgModStorPoolDfn) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.StorPoolName)
	b = appendProps(b, 2, m.OverrideProps)
	for _, k := range m.DeletePropKeys {
		b = appendString(b, 3, k)
	}
	return b
}

func (m *MsgModStorPoolDfn) Unmarshal(data []byte) error {
	*m = MsgModStorPoolDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.StorPoolName)
		case 2:
			return consumeProp(field, typ, &m.OverrideProps)
		case 3:
			return consumeRepeatedString(field, typ, &m.DeletePropKeys)
		}
		return nil
	})
}

// MsgDelStorPoolDfn requests deletion of a storage pool definition.
type MsgDelStorPoolDfn struct {
	StorPoolName string
}

func (m *MsgDelStorPoolDfn) Marshal() []byte {
	return appendString(nil, 1, m.StorPoolName)
}

func (m *MsgDelStorPoolDfn) Unmarshal(data []byte) error {
	*m = MsgDelStorPoolDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			return consumeString(field, typ, &m.StorPoolName)
		}
		return nil
	})
}

// MsgLstStorPoolDfn is the reply body of a storage pool definition
// enumeration.
type MsgLstStorPoolDfn struct {
	StorPoolDfns []StorPoolDfn
}

func (m *MsgLstStorPoolDfn) Marshal() []byte {
	var b []byte
	for i := range m.StorPoolDfns {
		b = appendMessage(b, 1, &m.StorPoolDfns[i])
	}
	return b
}

func (m *MsgLstStorPoolDfn) Unmarshal(data []byte) error {
	*m = MsgLstStorPoolDfn{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			var d StorPoolDfn
			if err := consumeMessage(field, typ, &d); err != nil {
				return err
			}
			m.StorPoolDfns = append(m.StorPoolDfns, d)
		}
		return nil
	})
}

// StorPool is a storage pool instance on a specific node.
type StorPool struct {
	StorPoolName string
	NodeName     string
	Driver       string
	UUID         string
	Props        []Property
}

func (m *StorPool) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.StorPoolName)
	b = appendString(b, 2, m.NodeName)
	b = appendString(b, 3, m.Driver)
	b = appendString(b, 4, m.UUID)
	b = appendProps(b, 5, m.Props)
	return b
}

func (m *StorPool) Unmarshal(data []byte) error {
	*m = StorPool{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.StorPoolName)
		case 2:
			return consumeString(field, typ, &m.NodeName)
		case 3:
			return consumeString(field, typ, &m.Driver)
		case 4:
			return consumeString(field, typ, &m.UUID)
		case 5:
			return consumeProp(field, typ, &m.Props)
		}
		return nil
	})
}

// MsgCrtStorPool requests creation of a storage pool on a node.
type MsgCrtStorPool struct {
	StorPool StorPool
}

func (m *MsgCrtStorPool) Marshal() []byte {
	return appendMessage(nil, 1, &m.StorPool)
}

func (m *MsgCrtStorPool) Unmarshal(data []byte) error {
	*m = MsgCrtStorPool{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			return consumeMessage(field, typ, &m.StorPool)
		}
		return nil
	})
}

// MsgDelStorPool requests deletion of a storage pool from a node.
type MsgDelStorPool struct {
	NodeName     string
	StorPoolName string
}

func (m *MsgDelStorPool) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.NodeName)
	b = appendString(b, 2, m.StorPoolName)
	return b
}

func (m *MsgDelStorPool) Unmarshal(data []byte) error {
	*m = MsgDelStorPool{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.NodeName)
		case 2:
			return consumeString(field, typ, &m.StorPoolName)
		}
		return nil
	})
}

// MsgLstStorPool is the reply body of a storage pool enumeration.
type MsgLstStorPool struct {
	StorPools []StorPool
}

func (m *MsgLstStorPool) Marshal() []byte {
	var b []byte
	for i := range m.StorPools {
		b = appendMessage(b, 1, &m.StorPools[i])
	}
	return b
}

func (m *MsgLstStorPool) Unmarshal(data []byte) error {
	*m = MsgLstStorPool{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			var p StorPool
			if err := consumeMessage(field, typ, &p); err != nil {
				return err
			}
			m.StorPools = append(m.StorPools, p)
		}
		return nil
	})
}
