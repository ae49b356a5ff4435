package client

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/marmos91/blockstor/internal/logger"
	"github.com/marmos91/blockstor/internal/protocol/wire"
	"github.com/marmos91/blockstor/pkg/apiconsts"
	"github.com/marmos91/blockstor/pkg/proto"
)

// receive is the session's receiver goroutine: the sole reader of the
// socket. It reassembles frames from the byte stream and deposits decoded
// replies into the session's reply table. Any error other than an unknown
// reply tag is terminal for the session.
func (c *Client) receive(conn net.Conn, table *replyTable, log *slog.Logger) {
	defer c.teardown("receiver stopped")

	var (
		buf      []byte
		expected uint32
		haveLen  bool
	)
	chunk := make([]byte, wire.ReadChunkSize)

	for {
		// The read deadline doubles as the disconnect-observation tick: a
		// close performed by another goroutine is noticed within one poll.
		_ = conn.SetReadDeadline(time.Now().Add(pollInterval))
		n, err := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)

			for {
				if !haveLen {
					if len(buf) < wire.HeaderSize {
						break
					}
					payloadLen, perr := wire.ParsePayloadLength(buf[:wire.HeaderSize])
					if perr != nil {
						log.Error("malformed frame header", logger.KeyError, perr)
						return
					}
					expected = payloadLen
					haveLen = true
				}

				total := wire.HeaderSize + int(expected)
				if len(buf) < total {
					break
				}

				if herr := c.handleFrame(table, log, buf[wire.HeaderSize:total]); herr != nil {
					log.Error("dropping session on bad frame", logger.KeyError, herr)
					return
				}
				buf = buf[total:]
				haveLen = false
			}
		}

		if err != nil {
			if isTimeout(err) {
				if !c.Connected() {
					return
				}
				continue
			}
			switch {
			case errors.Is(err, io.EOF):
				log.Info("controller closed the connection")
			case !c.Connected():
				// Local close; the read error is expected.
			default:
				log.Warn("socket read failed", logger.KeyError, err)
			}
			return
		}
	}
}

// handleFrame decodes one frame payload and routes it. A nil return means
// the receiver keeps running; an error tears the session down.
func (c *Client) handleFrame(table *replyTable, log *slog.Logger, payload []byte) error {
	msgs, err := wire.SplitMessages(payload)
	if err != nil {
		return err
	}

	var hdr proto.MsgHeader
	if err := hdr.Unmarshal(msgs[0]); err != nil {
		return fmt.Errorf("decode header sub-message: %w", err)
	}

	if hdr.APICall == apiconsts.APIVersion {
		// The controller announces its version exactly once, before any
		// request is sent.
		return &ProtocolError{Message: "version announced after handshake"}
	}

	parser, ok := lookupReply(hdr.APICall)
	if !ok {
		log.Warn("unknown reply tag, dropping frame",
			logger.KeyAPICall, hdr.APICall,
			logger.KeyMsgID, hdr.MsgID)
		if c.metrics != nil {
			c.metrics.RecordUnknownTag(hdr.APICall)
		}
		return nil
	}

	replies, err := parser(msgs[1:])
	if err != nil {
		return fmt.Errorf("parse %s reply: %w", hdr.APICall, err)
	}

	if c.metrics != nil {
		c.metrics.RecordFrameReceived(hdr.APICall, wire.HeaderSize+len(payload))
	}
	log.Debug("frame received",
		logger.KeyAPICall, hdr.APICall,
		logger.KeyMsgID, hdr.MsgID,
		logger.KeyMessages, len(replies))

	table.deposit(hdr.MsgID, replies)
	return nil
}
