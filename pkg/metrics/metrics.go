// Package metrics defines the observability interface of the client.
//
// Implementations collect counters about session lifecycle and frame
// traffic. The interface is optional: passing nil disables collection with
// zero overhead.
package metrics

// ClientMetrics provides observability for controller sessions.
type ClientMetrics interface {
	// RecordConnect records a successful connect+handshake to an address.
	RecordConnect(address string)

	// RecordDisconnect records a session ending, locally or by the peer.
	RecordDisconnect(address string)

	// RecordFrameSent records one request frame and its size on the wire.
	RecordFrameSent(apiCall string, bytes int)

	// RecordFrameReceived records one reply frame and its size on the wire.
	RecordFrameReceived(apiCall string, bytes int)

	// RecordUnknownTag records a reply frame dropped for an unknown tag.
	RecordUnknownTag(apiCall string)

	// RecordRequestStart increments the in-flight request gauge.
	RecordRequestStart(apiCall string)

	// RecordRequestEnd decrements the in-flight request gauge.
	RecordRequestEnd(apiCall string)
}
