// Package client implements the BlockStor controller client.
//
// A Client owns one session to a cluster controller: a TCP or TLS
// connection carrying length-prefixed frames of tag-delimited messages.
// After the version handshake a single receiver goroutine demultiplexes
// reply frames back to callers by message id, so any number of goroutines
// can issue calls concurrently over the one socket.
package client

import (
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/marmos91/blockstor/internal/logger"
	"github.com/marmos91/blockstor/internal/protocol/wire"
	"github.com/marmos91/blockstor/pkg/apiconsts"
	"github.com/marmos91/blockstor/pkg/metrics"
	"github.com/marmos91/blockstor/pkg/proto"
)

// URI schemes selecting the transport.
const (
	SchemePlain = "plain-controller"
	SchemeTLS   = "tls-controller"
)

const (
	// DefaultTimeout bounds connect and handshake.
	DefaultTimeout = 20 * time.Second

	// pollInterval is how often the receiver wakes from a blocked read to
	// observe a close performed by another goroutine.
	pollInterval = 2 * time.Second
)

// Client is a controller session. The zero value is not usable; create one
// with New. A Client is safe for concurrent use.
type Client struct {
	uri       string
	timeout   time.Duration
	tlsConfig *tls.Config
	metrics   metrics.ClientMetrics

	// msgID allocates per-session message ids; reset on every connect so
	// ids are scoped to the socket.
	msgID atomic.Uint64

	// sendMu serializes socket writes so each frame lands byte-intact.
	sendMu sync.Mutex

	mu         sync.Mutex // guards the fields below
	conn       net.Conn
	table      *replyTable
	apiVersion uint32
	address    string
	log        *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the connect and handshake timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithTLSConfig sets the TLS configuration used by the tls-controller
// scheme. Ignored for plain connections.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *Client) {
		c.tlsConfig = cfg
	}
}

// WithMetrics attaches a metrics sink. Pass nil to disable collection.
func WithMetrics(m metrics.ClientMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a client for the given controller URI.
//
// The URI has the form PROTO://HOST[:PORT] where PROTO is plain-controller
// or tls-controller. The port defaults per scheme. The client starts
// disconnected; call Connect before issuing operations.
func New(controllerURI string, opts ...Option) *Client {
	c := &Client{
		uri:     controllerURI,
		timeout: DefaultTimeout,
		log:     logger.With(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect dials the controller, performs the version handshake and starts
// the receiver. It is an error to connect an already connected client.
func (c *Client) Connect() error {
	host, port, useTLS, err := c.parseURI()
	if err != nil {
		return err
	}
	address := net.JoinHostPort(host, port)

	dialer := &net.Dialer{Timeout: c.timeout}
	conn, err := dialer.Dial("tcp", address)
	if err != nil {
		if isTimeout(err) {
			return &TimeoutError{Op: "connect to " + address, Err: err}
		}
		return &NetworkError{Op: "connect to " + address, Err: err}
	}

	if useTLS {
		tlsCfg := c.tlsConfig
		if tlsCfg == nil {
			tlsCfg = &tls.Config{}
		}
		if tlsCfg.ServerName == "" {
			tlsCfg = tlsCfg.Clone()
			tlsCfg.ServerName = host
		}
		tlsConn := tls.Client(conn, tlsCfg)
		_ = tlsConn.SetDeadline(time.Now().Add(c.timeout))
		if err := tlsConn.Handshake(); err != nil {
			_ = conn.Close()
			return &NetworkError{Op: "tls handshake with " + address, Err: err}
		}
		conn = tlsConn
	}

	// The version frame is read with blocking I/O bounded by the timeout;
	// only afterwards does the receiver take over with its periodic poll.
	_ = conn.SetDeadline(time.Now().Add(c.timeout))
	version, err := readAPIVersion(conn)
	if err != nil {
		_ = conn.Close()
		if isTimeout(err) {
			return &TimeoutError{Op: "handshake with " + address, Err: err}
		}
		return err
	}
	_ = conn.SetDeadline(time.Time{})

	sessionID := uuid.NewString()
	log := logger.With(logger.KeySession, sessionID, logger.KeyAddress, address)
	table := newReplyTable()

	c.mu.Lock()
	if c.conn != nil {
		c.mu.Unlock()
		_ = conn.Close()
		return &ConfigError{Message: "already connected to " + c.address}
	}
	c.conn = conn
	c.table = table
	c.apiVersion = version
	c.address = address
	c.log = log
	c.mu.Unlock()
	c.msgID.Store(0)

	go c.receive(conn, table, log)

	if c.metrics != nil {
		c.metrics.RecordConnect(address)
	}
	log.Info("connected to controller", logger.KeyVersion, version)
	return nil
}

// parseURI resolves the configured URI into host, port and transport.
func (c *Client) parseURI() (host, port string, useTLS bool, err error) {
	u, perr := url.Parse(c.uri)
	if perr != nil {
		return "", "", false, &ConfigError{Message: fmt.Sprintf("invalid controller uri %q: %v", c.uri, perr)}
	}

	switch u.Scheme {
	case SchemePlain:
	case SchemeTLS:
		useTLS = true
	default:
		return "", "", false, &ConfigError{Message: fmt.Sprintf("unknown uri scheme %q in %q", u.Scheme, c.uri)}
	}

	host = u.Hostname()
	if host == "" {
		return "", "", false, &ConfigError{Message: fmt.Sprintf("missing host in %q", c.uri)}
	}

	port = u.Port()
	if port == "" {
		if useTLS {
			port = strconv.Itoa(apiconsts.DfltCtrlPortSSL)
		} else {
			port = strconv.Itoa(apiconsts.DfltCtrlPortPlain)
		}
	}
	return host, port, useTLS, nil
}

// readAPIVersion reads the mandatory version frame the controller sends
// first. The client sends nothing before it has arrived.
func readAPIVersion(conn net.Conn) (uint32, error) {
	var buf []byte
	chunk := make([]byte, wire.ReadChunkSize)

	for len(buf) < wire.HeaderSize {
		n, err := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			return 0, &HandshakeError{Message: "reading version frame header", Err: err}
		}
	}

	payloadLen, err := wire.ParsePayloadLength(buf[:wire.HeaderSize])
	if err != nil {
		return 0, &HandshakeError{Message: "version frame header", Err: err}
	}
	total := wire.HeaderSize + int(payloadLen)
	for len(buf) < total {
		n, err := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			return 0, &HandshakeError{Message: "reading version frame payload", Err: err}
		}
	}

	msgs, err := wire.SplitMessages(buf[wire.HeaderSize:total])
	if err != nil {
		return 0, &HandshakeError{Message: "version frame payload", Err: err}
	}

	var hdr proto.MsgHeader
	if err := hdr.Unmarshal(msgs[0]); err != nil {
		return 0, &HandshakeError{Message: "version frame header sub-message", Err: err}
	}
	if hdr.APICall != apiconsts.APIVersion {
		return 0, &HandshakeError{Message: fmt.Sprintf("expected %s frame, got %q", apiconsts.APIVersion, hdr.APICall)}
	}
	if len(msgs) < 2 {
		return 0, &HandshakeError{Message: "version frame carries no version message"}
	}

	var ver proto.MsgAPIVersion
	if err := ver.Unmarshal(msgs[1]); err != nil {
		return 0, &HandshakeError{Message: "version message", Err: err}
	}
	return ver.Version, nil
}

// Disconnect closes the session. The receiver observes the closed socket
// and exits; waiters still blocked in a call are released with an empty
// reply list. Disconnecting an idle client is a no-op.
func (c *Client) Disconnect() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	c.teardown("client disconnect")
}

// teardown ends the session if it is still up. Safe to call from any
// goroutine; it must not require the send mutex because the receiver calls
// it while a sender may be blocked in a write.
func (c *Client) teardown(reason string) {
	c.mu.Lock()
	conn := c.conn
	table := c.table
	address := c.address
	log := c.log
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return
	}

	_ = conn.Close()
	table.close()

	if c.metrics != nil {
		c.metrics.RecordDisconnect(address)
	}
	log.Info("session closed", "reason", reason)
}

// Connected reports whether the session is up. After a call returned an
// empty reply list, this distinguishes a dead session from an empty result.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// APIVersion returns the version advertised by the controller during the
// handshake, or zero if the client never connected.
func (c *Client) APIVersion() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiVersion
}

// Send serializes a request frame for the given api call and writes it to
// the socket. Bodies are marshaled before the send mutex is taken; only the
// write itself is serialized. Returns the assigned message id.
func (c *Client) Send(apiCall string, msgs ...proto.Message) (uint64, error) {
	id := c.msgID.Add(1)
	hdr := proto.MsgHeader{APICall: apiCall, MsgID: id}

	subs := make([][]byte, 0, 1+len(msgs))
	subs = append(subs, hdr.Marshal())
	for _, m := range msgs {
		subs = append(subs, m.Marshal())
	}
	frame := wire.BuildFrame(subs...)

	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	c.mu.Lock()
	conn := c.conn
	log := c.log
	c.mu.Unlock()
	if conn == nil {
		return 0, ErrNotConnected
	}

	for written := 0; written < len(frame); {
		n, err := conn.Write(frame[written:])
		written += n
		if err != nil {
			c.teardown("write failed")
			return 0, &NetworkError{Op: "send " + apiCall, Err: err}
		}
	}

	if c.metrics != nil {
		c.metrics.RecordFrameSent(apiCall, len(frame))
	}
	log.Debug("frame sent",
		logger.KeyAPICall, apiCall,
		logger.KeyMsgID, id,
		logger.KeyFrameLen, len(frame))
	return id, nil
}

// Call sends a request and blocks until its reply arrives or the session
// ends. An empty reply list with a disconnected session means the session
// died while waiting; Connected tells the two apart.
func (c *Client) Call(apiCall string, msgs ...proto.Message) ([]proto.Message, error) {
	// The table is captured before sending so a disconnect/reconnect cycle
	// cannot strand the wait on a later session's table.
	c.mu.Lock()
	table := c.table
	c.mu.Unlock()
	if table == nil {
		return nil, ErrNotConnected
	}

	id, err := c.Send(apiCall, msgs...)
	if err != nil {
		return nil, err
	}

	if c.metrics != nil {
		c.metrics.RecordRequestStart(apiCall)
		defer c.metrics.RecordRequestEnd(apiCall)
	}
	return table.await(id), nil
}

// isTimeout reports whether err is a network timeout.
func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
