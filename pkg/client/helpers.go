package client

import (
	"fmt"

	"github.com/marmos91/blockstor/pkg/proto"
)

// callResponses performs a call whose reply bodies are api call responses.
func (c *Client) callResponses(apiCall string, msgs ...proto.Message) ([]*proto.MsgAPICallResponse, error) {
	replies, err := c.Call(apiCall, msgs...)
	if err != nil {
		return nil, err
	}
	if len(replies) == 0 && !c.Connected() {
		return nil, &NetworkError{Op: apiCall, Err: ErrNotConnected}
	}

	out := make([]*proto.MsgAPICallResponse, 0, len(replies))
	for _, r := range replies {
		resp, ok := r.(*proto.MsgAPICallResponse)
		if !ok {
			return nil, &ProtocolError{Message: fmt.Sprintf("unexpected %T in %s reply", r, apiCall)}
		}
		out = append(out, resp)
	}
	return out, nil
}

// listReply extracts the single list body of an enumeration reply.
// A dead session surfaces as a network error; a present but empty reply
// list (the controller sent a bare header) yields ok=false so the caller
// can substitute an empty list message.
func (c *Client) listReply(apiCall string, replies []proto.Message) (proto.Message, bool, error) {
	if len(replies) == 0 {
		if !c.Connected() {
			return nil, false, &NetworkError{Op: apiCall, Err: ErrNotConnected}
		}
		return nil, false, nil
	}
	return replies[0], true, nil
}
