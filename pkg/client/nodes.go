package client

import (
	"fmt"

	"github.com/marmos91/blockstor/pkg/apiconsts"
	"github.com/marmos91/blockstor/pkg/proto"
)

// NodeCreateOpts carries the optional parameters of NodeCreate. The zero
// value selects plain communication on the type-specific default port with
// a net interface named "default".
type NodeCreateOpts struct {
	// ComType is the communication type, Plain or SSL.
	ComType string
	// Port overrides the default satellite port.
	Port uint32
	// NetIfName names the node's first network interface.
	NetIfName string
}

// NodeCreate registers a new node with the cluster. nodeType is one of the
// node type values in apiconsts; address is the IP the controller reaches
// the node at.
func (c *Client) NodeCreate(nodeName, nodeType, address string, opts *NodeCreateOpts) ([]*proto.MsgAPICallResponse, error) {
	o := NodeCreateOpts{
		ComType:   apiconsts.ValNetcomTypePlain,
		NetIfName: "default",
	}
	if opts != nil {
		if opts.ComType != "" {
			o.ComType = opts.ComType
		}
		if opts.NetIfName != "" {
			o.NetIfName = opts.NetIfName
		}
		o.Port = opts.Port
	}

	port := o.Port
	if port == 0 {
		switch o.ComType {
		case apiconsts.ValNetcomTypePlain:
			if nodeType == apiconsts.ValNodeTypeCtrl {
				port = apiconsts.DfltCtrlPortPlain
			} else {
				port = apiconsts.DfltStltPortPlain
			}
		case apiconsts.ValNetcomTypeSSL:
			port = apiconsts.DfltCtrlPortSSL
		default:
			return nil, &ConfigError{Message: fmt.Sprintf("communication type %q has no default port", o.ComType)}
		}
	}

	msg := &proto.MsgCrtNode{
		Node: proto.Node{
			Name: nodeName,
			Type: nodeType,
			NetInterfaces: []proto.NetInterface{
				{
					Name:               o.NetIfName,
					Address:            address,
					StltPort:           port,
					StltEncryptionType: o.ComType,
				},
			},
		},
	}
	return c.callResponses(apiconsts.APICrtNode, msg)
}

// NodeModify changes node properties. overrideProps entries are set or
// replaced; deletePropKeys entries are removed.
func (c *Client) NodeModify(nodeName string, overrideProps map[string]string, deletePropKeys []string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgModNode{
		NodeName:       nodeName,
		OverrideProps:  proto.PropsFromMap(overrideProps),
		DeletePropKeys: deletePropKeys,
	}
	return c.callResponses(apiconsts.APIModNode, msg)
}

// NodeDelete removes a node from the cluster.
func (c *Client) NodeDelete(nodeName string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgDelNode{NodeName: nodeName}
	return c.callResponses(apiconsts.APIDelNode, msg)
}

// NodeList enumerates all nodes known to the controller.
func (c *Client) NodeList() (*proto.MsgLstNode, error) {
	replies, err := c.Call(apiconsts.APILstNode)
	if err != nil {
		return nil, err
	}
	reply, ok, err := c.listReply(apiconsts.APILstNode, replies)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &proto.MsgLstNode{}, nil
	}
	lst, isLst := reply.(*proto.MsgLstNode)
	if !isLst {
		return nil, &ProtocolError{Message: fmt.Sprintf("unexpected %T in node list reply", reply)}
	}
	return lst, nil
}
