package client

import (
	"fmt"

	"github.com/marmos91/blockstor/pkg/apiconsts"
	"github.com/marmos91/blockstor/pkg/proto"
)

// StoragePoolDfnCreate registers a cluster-wide storage pool definition.
func (c *Client) StoragePoolDfnCreate(poolName string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgCrtStorPoolDfn{
		StorPoolDfn: proto.StorPoolDfn{StorPoolName: poolName},
	}
	return c.callResponses(apiconsts.APICrtStorPoolDfn, msg)
}

// StoragePoolDfnModify changes properties of a storage pool definition.
func (c *Client) StoragePoolDfnModify(poolName string, overrideProps map[string]string, deletePropKeys []string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgModStorPoolDfn{
		StorPoolName:   poolName,
		OverrideProps:  proto.PropsFromMap(overrideProps),
		DeletePropKeys: deletePropKeys,
	}
	return c.callResponses(apiconsts.APIModStorPoolDfn, msg)
}

// StoragePoolDfnDelete removes a storage pool definition.
func (c *Client) StoragePoolDfnDelete(poolName string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgDelStorPoolDfn{StorPoolName: poolName}
	return c.callResponses(apiconsts.APIDelStorPoolDfn, msg)
}

// StoragePoolDfnList enumerates all storage pool definitions.
func (c *Client) StoragePoolDfnList() (*proto.MsgLstStorPoolDfn, error) {
	replies, err := c.Call(apiconsts.APILstStorPoolDfn)
	if err != nil {
		return nil, err
	}
	reply, ok, err := c.listReply(apiconsts.APILstStorPoolDfn, replies)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &proto.MsgLstStorPoolDfn{}, nil
	}
	lst, isLst := reply.(*proto.MsgLstStorPoolDfn)
	if !isLst {
		return nil, &ProtocolError{Message: fmt.Sprintf("unexpected %T in storage pool definition list reply", reply)}
	}
	return lst, nil
}

// StoragePoolCreate instantiates a storage pool on a node with the given
// backing driver.
func (c *Client) StoragePoolCreate(nodeName, poolName, driver string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgCrtStorPool{
		StorPool: proto.StorPool{
			StorPoolName: poolName,
			NodeName:     nodeName,
			Driver:       driver,
		},
	}
	return c.callResponses(apiconsts.APICrtStorPool, msg)
}

// StoragePoolDelete removes a storage pool from a node.
func (c *Client) StoragePoolDelete(nodeName, poolName string) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgDelStorPool{
		NodeName:     nodeName,
		StorPoolName: poolName,
	}
	return c.callResponses(apiconsts.APIDelStorPool, msg)
}

// StoragePoolList enumerates all storage pools across all nodes.
func (c *Client) StoragePoolList() (*proto.MsgLstStorPool, error) {
	replies, err := c.Call(apiconsts.APILstStorPool)
	if err != nil {
		return nil, err
	}
	reply, ok, err := c.listReply(apiconsts.APILstStorPool, replies)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &proto.MsgLstStorPool{}, nil
	}
	lst, isLst := reply.(*proto.MsgLstStorPool)
	if !isLst {
		return nil, &ProtocolError{Message: fmt.Sprintf("unexpected %T in storage pool list reply", reply)}
	}
	return lst, nil
}
