package client

import (
	"github.com/marmos91/blockstor/pkg/apiconsts"
	"github.com/marmos91/blockstor/pkg/proto"
)

// VolumeDfnCreate adds a volume definition to an existing resource
// definition. sizeKiB is the capacity in KiB, the controller's internal
// granularity. volumeNr and minorNr may be 0 to let the controller assign
// the next free values.
func (c *Client) VolumeDfnCreate(rscName string, sizeKiB uint64, volumeNr, minorNr uint32) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgCrtVlmDfn{
		RscName: rscName,
		VlmDfns: []proto.VlmDfn{
			{
				VlmNr:    volumeNr,
				VlmSize:  sizeKiB,
				VlmMinor: minorNr,
			},
		},
	}
	return c.callResponses(apiconsts.APICrtVlmDfn, msg)
}

// VolumeDfnModify changes the size of a volume definition.
func (c *Client) VolumeDfnModify(rscName string, volumeNr uint32, sizeKiB uint64) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgModVlmDfn{
		RscName: rscName,
		VlmNr:   volumeNr,
		VlmSize: sizeKiB,
	}
	return c.callResponses(apiconsts.APIModVlmDfn, msg)
}

// VolumeDfnDelete marks a volume definition for removal. The entry
// disappears once every node has undeployed the volume.
func (c *Client) VolumeDfnDelete(rscName string, volumeNr uint32) ([]*proto.MsgAPICallResponse, error) {
	msg := &proto.MsgDelVlmDfn{
		RscName: rscName,
		VlmNr:   volumeNr,
	}
	return c.callResponses(apiconsts.APIDelVlmDfn, msg)
}
