package client

import (
	"fmt"

	"github.com/marmos91/blockstor/pkg/apiconsts"
	"github.com/marmos91/blockstor/pkg/proto"
)

// ResourceDfnCreate registers a resource definition. port is the replication
// port the resource's peers use; 0 lets the controller assign one. secret
// may be empty for an auto-generated shared secret.
func (c *Client) ResourceDfnCreate(rscName string, port uint32, secret string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgCrtRscDfn{
		RscDfn: proto.RscDfn{
			RscName:      rscName,
			RscDfnPort:   port,
			RscDfnSecret: secret,
		},
	}
	return c.callResponses(apiconsts.APICrtRscDfn, msg)
}

// ResourceDfnModify changes properties of a resource definition.
func (c *Client) ResourceDfnModify(rscName string, overrideProps map[string]string, deletePropKeys []string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgModRscDfn{
		RscName:        rscName,
		OverrideProps:  proto.PropsFromMap(overrideProps),
		DeletePropKeys: deletePropKeys,
	}
	return c.callResponses(apiconsts.APIModRscDfn, msg)
}

// ResourceDfnDelete removes a resource definition and all its volume
// definitions.
func (c *Client) ResourceDfnDelete(rscName string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgDelRscDfn{RscName: rscName}
	return c.callResponses(apiconsts.APIDelRscDfn, msg)
}

// ResourceDfnList enumerates all resource definitions, including their
// volume definitions.
func (c *Client) ResourceDfnList() (*proto.MsgLstRscDfn, error) {
	replies, err := c.Call(apiconsts.APILstRscDfn)
	if err != nil {
		return nil, err
	}
	reply, ok, err := c.listReply(apiconsts.APILstRscDfn, replies)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &proto.MsgLstRscDfn{}, nil
	}
	lst, isLst := reply.(*proto.MsgLstRscDfn)
	if !isLst {
		return nil, &ProtocolError{Message: fmt.Sprintf("unexpected %T in resource definition list reply", reply)}
	}
	return lst, nil
}
