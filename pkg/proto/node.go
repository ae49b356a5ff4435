package proto

import "google.golang.org/protobuf/encoding/protowire"

// NetInterface describes one network interface of a cluster node. The
// satellite port and encryption type are only set when the interface is the
// node's active satellite connector.
type NetInterface struct {
	Name               string
	Address            string
	StltPort           uint32
	StltEncryptionType string
}

func (m *NetInterface) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Address)
	b = appendUint32(b, 3, m.StltPort)
	b = appendString(b, 4, m.StltEncryptionType)
	return b
}

func (m *NetInterface) Unmarshal(data []byte) error {
	*m = NetInterface{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.Name)
		case 2:
			return consumeString(field, typ, &m.Address)
		case 3:
			return consumeUint32(field, typ, &m.StltPort)
		case 4:
			return consumeString(field, typ, &m.StltEncryptionType)
		}
		return nil
	})
}

// Node describes one cluster node.
type Node struct {
	Name          string
	Type          string
	UUID          string
	NetInterfaces []NetInterface
	Props         []Property
}

func (m *Node) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Type)
	b = appendString(b, 3, m.UUID)
	for i := range m.NetInterfaces {
		b = appendMessage(b, 4, &m.NetInterfaces[i])
	}
	b = appendProps(b, 5, m.Props)
	return b
}

func (m *Node) Unmarshal(data []byte) error {
	*m = Node{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.Name)
		case 2:
			return consumeString(field, typ, &m.Type)
		case 3:
			return consumeString(field, typ, &m.UUID)
		case 4:
			var nif NetInterface
			if err := consumeMessage(field, typ, &nif); err != nil {
				return err
			}
			m.NetInterfaces = append(m.NetInterfaces, nif)
			return nil
		case 5:
			return consumeProp(field, typ, &m.Props)
		}
		return nil
	})
}

// MsgCrtNode requests creation of a node.
type MsgCrtNode struct {
	Node Node
}

func (m *MsgCrtNode) Marshal() []byte {
	return appendMessage(nil, 1, &m.Node)
}

func (m *MsgCrtNode) Unmarshal(data []byte) error {
	*m = MsgCrtNode{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			return consumeMessage(field, typ, &m.Node)
		}
		return nil
	})
}

// MsgModNode requests property changes on a node.
type MsgModNode struct {
	NodeName       string
	OverrideProps  []Property
	DeletePropKeys []string
}

func (m *MsgModNode) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.NodeName)
	b = appendProps(b, 2, m.OverrideProps)
	for _, k := range m.DeletePropKeys {
		b = appendString(b, 3, k)
	}
	return b
}

func (m *MsgModNode) Unmarshal(data []byte) error {
	*m = MsgModNode{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.NodeName)
		case 2:
			return consumeProp(field, typ, &m.OverrideProps)
		case 3:
			return consumeRepeatedString(field, typ, &m.DeletePropKeys)
		}
		return nil
	})
}

// MsgDelNode requests deletion of a node.
type MsgDelNode struct {
	NodeName string
}

func (m *MsgDelNode) Marshal() []byte {
	return appendString(nil, 1, m.NodeName)
}

func (m *MsgDelNode) Unmarshal(data []byte) error {
	*m = MsgDelNode{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			return consumeString(field, typ, &m.NodeName)
		}
		return nil
	})
}

// MsgLstNode is the reply body of a node enumeration.
type MsgLstNode struct {
	Nodes []Node
}

func (m *MsgLstNode) Marshal() []byte {
	var b []byte
	for i := range m.Nodes {
		b = appendMessage(b, 1, &m.Nodes[i])
	}
	return b
}

func (m *MsgLstNode) Unmarshal(data []byte) error {
	*m = MsgLstNode{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		if num == 1 {
			var n Node
			if err := consumeMessage(field, typ, &n); err != nil {
				return err
			}
			m.Nodes = append(m.Nodes, n)
		}
		return nil
	})
}

// MsgCrtNetInterface requests creation of a network interface on a node.
type MsgCrtNetInterface struct {
	NodeName string
	NetIf    NetInterface
}

func (m *MsgCrtNetInterface) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.NodeName)
	b = appendMessage(b, 2, &m.NetIf)
	return b
}

func (m *MsgCrtNetInterface) Unmarshal(data []byte) error {
	*m = MsgCrtNetInterface{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.NodeName)
		case 2:
			return consumeMessage(field, typ, &m.NetIf)
		}
		return nil
	})
}

// MsgModNetInterface requests modification of a network interface.
type MsgModNetInterface struct {
	NodeName string
	NetIf    NetInterface
}

func (m *MsgModNetInterface) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.NodeName)
	b = appendMessage(b, 2, &m.NetIf)
	return b
}

func (m *MsgModNetInterface) Unmarshal(data []byte) error {
	*m = MsgModNetInterface{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.NodeName)
		case 2:
			return consumeMessage(field, typ, &m.NetIf)
		}
		return nil
	})
}

// MsgDelNetInterface requests deletion of a network interface.
type MsgDelNetInterface struct {
	NodeName  string
	NetIfName string
}

func (m *MsgDelNetInterface) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.NodeName)
	b = appendString(b, 2, m.NetIfName)
	return b
}

func (m *MsgDelNetInterface) Unmarshal(data []byte) error {
	*m = MsgDelNetInterface{}
	return unmarshalFields(data, func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeString(field, typ, &m.NodeName)
		case 2:
			return consumeString(field, typ, &m.NetIfName)
		}
		return nil
	})
}
