package client

import (
	"github.com/marmos91/blockstor/pkg/apiconsts"
	"github.com/marmos91/blockstor/pkg/proto"
)

// NetInterfaceCreate adds a network interface to a node. port and comType
// are optional; pass 0 and "" to register a plain address without a
// satellite connector.
func (c *Client) NetInterfaceCreate(nodeName, interfaceName, address string, port uint32, comType string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgCrtNetInterface{
		NodeName: nodeName,
		NetIf: proto.NetInterface{
			Name:    interfaceName,
			Address: address,
		},
	}
	if port != 0 {
		msg.NetIf.StltPort = port
		msg.NetIf.StltEncryptionType = comType
	}
	return c.callResponses(apiconsts.APICrtNetIf, msg)
}

// NetInterfaceModify changes the address, and optionally the satellite
// connector, of a network interface.
func (c *Client) NetInterfaceModify(nodeName, interfaceName, address string, port uint32, comType string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgModNetInterface{
		NodeName: nodeName,
		NetIf: proto.NetInterface{
			Name:    interfaceName,
			Address: address,
		},
	}
	if port != 0 {
		msg.NetIf.StltPort = port
		msg.NetIf.StltEncryptionType = comType
	}
	return c.callResponses(apiconsts.APIModNetIf, msg)
}

// NetInterfaceDelete removes a network interface from a node.
func (c *Client) NetInterfaceDelete(nodeName, interfaceName string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgDelNetInterface{
		NodeName:  nodeName,
		NetIfName: interfaceName,
	}
	return c.callResponses(apiconsts.APIDelNetIf, msg)
}
