package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/blockstor/pkg/apiconsts"
	"github.com/marmos91/blockstor/pkg/proto"
)

func TestNodeCreateDefaultsSatellitePort(t *testing.T) {
	fc := startFakeController(t, 1)
	c := connectedClient(t, fc)
	server := fc.accepted()

	go func() {
		hdr, bodies := readRequest(t, server)
		assert.Equal(t, apiconsts.APICrtNode, hdr.APICall)
		require.Len(t, bodies, 1)

		var msg proto.MsgCrtNode
		require.NoError(t, msg.Unmarshal(bodies[0]))
		assert.Equal(t, "alpha", msg.Node.Name)
		assert.Equal(t, apiconsts.ValNodeTypeStlt, msg.Node.Type)
		require.Len(t, msg.Node.NetInterfaces, 1)
		nif := msg.Node.NetInterfaces[0]
		assert.Equal(t, "default", nif.Name)
		assert.Equal(t, "10.0.0.1", nif.Address)
		assert.Equal(t, uint32(apiconsts.DfltStltPortPlain), nif.StltPort)
		assert.Equal(t, apiconsts.ValNetcomTypePlain, nif.StltEncryptionType)

		_, _ = server.Write(replyFrame(apiconsts.APIReply, hdr.MsgID, &proto.MsgAPICallResponse{}))
	}()

	replies, err := c.NodeCreate("alpha", apiconsts.ValNodeTypeStlt, "10.0.0.1", nil)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.True(t, replies[0].IsSuccess())
}

func TestNodeCreateControllerGetsControllerPort(t *testing.T) {
	fc := startFakeController(t, 1)
	c := connectedClient(t, fc)
	server := fc.accepted()

	go func() {
		hdr, bodies := readRequest(t, server)
		var msg proto.MsgCrtNode
		require.NoError(t, msg.Unmarshal(bodies[0]))
		require.Len(t, msg.Node.NetInterfaces, 1)
		assert.Equal(t, uint32(apiconsts.DfltCtrlPortPlain), msg.Node.NetInterfaces[0].StltPort)

		_, _ = server.Write(replyFrame(apiconsts.APIReply, hdr.MsgID, &proto.MsgAPICallResponse{}))
	}()

	_, err := c.NodeCreate("ctrl", apiconsts.ValNodeTypeCtrl, "10.0.0.2", nil)
	require.NoError(t, err)
}

func TestNodeCreateSSLDefaultsToSSLPort(t *testing.T) {
	fc := startFakeController(t, 1)
	c := connectedClient(t, fc)
	server := fc.accepted()

	go func() {
		hdr, bodies := readRequest(t, server)
		var msg proto.MsgCrtNode
		require.NoError(t, msg.Unmarshal(bodies[0]))
		require.Len(t, msg.Node.NetInterfaces, 1)
		nif := msg.Node.NetInterfaces[0]
		assert.Equal(t, uint32(apiconsts.DfltCtrlPortSSL), nif.StltPort)
		assert.Equal(t, apiconsts.ValNetcomTypeSSL, nif.StltEncryptionType)

		_, _ = server.Write(replyFrame(apiconsts.APIReply, hdr.MsgID, &proto.MsgAPICallResponse{}))
	}()

	_, err := c.NodeCreate("alpha", apiconsts.ValNodeTypeStlt, "10.0.0.1",
		&NodeCreateOpts{ComType: apiconsts.ValNetcomTypeSSL})
	require.NoError(t, err)
}

func TestNodeCreateUnknownComTypeFailsLocally(t *testing.T) {
	// Resolved before anything is sent, so no connection is needed.
	c := New("plain-controller://127.0.0.1")

	_, err := c.NodeCreate("alpha", apiconsts.ValNodeTypeStlt, "10.0.0.1",
		&NodeCreateOpts{ComType: "Carrier-Pigeon"})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNodeModifySendsPropsAndDeletions(t *testing.T) {
	fc := startFakeController(t, 1)
	c := connectedClient(t, fc)
	server := fc.accepted()

	go func() {
		hdr, bodies := readRequest(t, server)
		assert.Equal(t, apiconsts.APIModNode, hdr.APICall)
		require.Len(t, bodies, 1)

		var msg proto.MsgModNode
		require.NoError(t, msg.Unmarshal(bodies[0]))
		assert.Equal(t, "alpha", msg.NodeName)
		assert.Len(t, msg.OverrideProps, 1)
		assert.Equal(t, []string{"stale"}, msg.DeletePropKeys)

		_, _ = server.Write(replyFrame(apiconsts.APIReply, hdr.MsgID, &proto.MsgAPICallResponse{}))
	}()

	_, err := c.NodeModify("alpha", map[string]string{"Site": "b"}, []string{"stale"})
	require.NoError(t, err)
}

func TestVolumeDfnCreateCarriesSize(t *testing.T) {
	fc := startFakeController(t, 1)
	c := connectedClient(t, fc)
	server := fc.accepted()

	go func() {
		hdr, bodies := readRequest(t, server)
		assert.Equal(t, apiconsts.APICrtVlmDfn, hdr.APICall)
		require.Len(t, bodies, 1)

		var msg proto.MsgCrtVlmDfn
		require.NoError(t, msg.Unmarshal(bodies[0]))
		assert.Equal(t, "db-volume", msg.RscName)
		require.Len(t, msg.VlmDfns, 1)
		assert.Equal(t, uint64(1048576), msg.VlmDfns[0].VlmSize)
		assert.Equal(t, uint32(3), msg.VlmDfns[0].VlmNr)

		_, _ = server.Write(replyFrame(apiconsts.APIReply, hdr.MsgID, &proto.MsgAPICallResponse{}))
	}()

	_, err := c.VolumeDfnCreate("db-volume", 1048576, 3, 0)
	require.NoError(t, err)
}

func TestCallResponseErrorClassificationSurvivesWire(t *testing.T) {
	fc := startFakeController(t, 1)
	c := connectedClient(t, fc)
	server := fc.accepted()

	go func() {
		hdr, _ := readRequest(t, server)
		_, _ = server.Write(replyFrame(apiconsts.APIReply, hdr.MsgID,
			&proto.MsgAPICallResponse{RetCode: apiconsts.MaskError | 17, MessageFormat: "no such node"},
			&proto.MsgAPICallResponse{RetCode: apiconsts.MaskInfo | 1}))
	}()

	replies, err := c.NodeDelete("missing")
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.True(t, replies[0].IsError())
	assert.Equal(t, "no such node", replies[0].MessageFormat)
	assert.True(t, replies[1].IsInfo())
}
