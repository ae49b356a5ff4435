package client

import (
	"fmt"

	"github.com/marmos91/blockstor/pkg/apiconsts"
	"github.com/marmos91/blockstor/pkg/proto"
)

// replyParser turns the body sub-messages of a reply frame into decoded
// messages.
type replyParser func(bodies [][]byte) ([]proto.Message, error)

// replyRegistry maps a reply api-call tag to the parser for its bodies.
// The registry is static; tags not present here are unknown to this client
// version and their frames are dropped.
//
// The version tag is deliberately absent: it is consumed during the
// handshake and is a protocol violation afterwards.
var replyRegistry = map[string]replyParser{
	apiconsts.APIReply:          parseEach(func() proto.Message { return &proto.MsgAPICallResponse{} }),
	apiconsts.APILstNode:        parseEach(func() proto.Message { return &proto.MsgLstNode{} }),
	apiconsts.APILstStorPoolDfn: parseEach(func() proto.Message { return &proto.MsgLstStorPoolDfn{} }),
	apiconsts.APILstStorPool:    parseEach(func() proto.Message { return &proto.MsgLstStorPool{} }),
	apiconsts.APILstRscDfn:      parseEach(func() proto.Message { return &proto.MsgLstRscDfn{} }),
	apiconsts.APILstRsc:         parseEach(func() proto.Message { return &proto.MsgLstRsc{} }),
}

// parseEach builds a parser decoding every body sub-message as the same
// concrete type.
func parseEach(newMsg func() proto.Message) replyParser {
	return func(bodies [][]byte) ([]proto.Message, error) {
		replies := make([]proto.Message, 0, len(bodies))
		for i, body := range bodies {
			msg := newMsg()
			if err := msg.Unmarshal(body); err != nil {
				return nil, fmt.Errorf("decode body %d: %w", i+1, err)
			}
			replies = append(replies, msg)
		}
		return replies, nil
	}
}

// lookupReply returns the parser for a reply tag.
func lookupReply(apiCall string) (replyParser, bool) {
	p, ok := replyRegistry[apiCall]
	return p, ok
}
