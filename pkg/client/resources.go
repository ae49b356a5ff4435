package client

import (
	"fmt"

	"github.com/marmos91/blockstor/pkg/apiconsts"
	"github.com/marmos91/blockstor/pkg/proto"
)

// ResourceCreate deploys a resource on a node. storagePool names the pool
// backing the resource's volumes on that node; empty selects the
// controller's default placement.
func (c *Client) ResourceCreate(nodeName, rscName, storagePool string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgCrtRsc{
		RscName:  rscName,
		NodeName: nodeName,
	}
	if storagePool != "" {
		msg.Props = []proto.Property{{Key: apiconsts.KeyStorPoolName, Value: storagePool}}
	}
	return c.callResponses(apiconsts.APICrtRsc, msg)
}

// ResourceDelete undeploys a resource from a node.
func (c *Client) ResourceDelete(nodeName, rscName string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgDelRsc{
		RscName:  rscName,
		NodeName: nodeName,
	}
	return c.callResponses(apiconsts.APIDelRsc, msg)
}

// ResourceList enumerates all deployed resources and their volumes.
func (c *Client) ResourceList() (*proto.MsgLstRsc, error) {
	replies, err := c.Call(apiconsts.APILstRsc)
	if err != nil {
		return nil, err
	}
	reply, ok, err := c.listReply(apiconsts.APILstRsc, replies)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &proto.MsgLstRsc{}, nil
	}
	lst, isLst := reply.(*proto.MsgLstRsc)
	if !isLst {
		return nil, &ProtocolError{Message: fmt.Sprintf("unexpected %T in resource list reply", reply)}
	}
	return lst, nil
}
