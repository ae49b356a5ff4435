// Package prometheus provides the Prometheus-backed implementation of the
// client metrics interface.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// clientMetrics is the Prometheus implementation of metrics.ClientMetrics.
type clientMetrics struct {
	connects    *prometheus.CounterVec
	disconnects *prometheus.CounterVec
	framesSent  *prometheus.CounterVec
	framesRecv  *prometheus.CounterVec
	bytesSent   *prometheus.CounterVec
	bytesRecv   *prometheus.CounterVec
	unknownTags *prometheus.CounterVec
	inflight    *prometheus.GaugeVec
}

// NewClientMetrics creates a new Prometheus-backed client metrics instance
// registered on reg. A nil reg registers on the default registerer.
func NewClientMetrics(reg prometheus.Registerer) *clientMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &clientMetrics{
		connects: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockstor_client_connects_total",
				Help: "Total number of successful controller connections",
			},
			[]string{"address"},
		),
		disconnects: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockstor_client_disconnects_total",
				Help: "Total number of controller sessions ended",
			},
			[]string{"address"},
		),
		framesSent: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockstor_client_frames_sent_total",
				Help: "Total number of request frames sent by api call",
			},
			[]string{"api_call"},
		),
		framesRecv: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockstor_client_frames_received_total",
				Help: "Total number of reply frames received by api call",
			},
			[]string{"api_call"},
		),
		bytesSent: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockstor_client_bytes_sent_total",
				Help: "Total bytes written to the controller socket by api call",
			},
			[]string{"api_call"},
		),
		bytesRecv: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockstor_client_bytes_received_total",
				Help: "Total bytes of reply frames by api call",
			},
			[]string{"api_call"},
		),
		unknownTags: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockstor_client_unknown_tags_total",
				Help: "Total reply frames dropped because of an unknown api call tag",
			},
			[]string{"api_call"},
		),
		inflight: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "blockstor_client_inflight_requests",
				Help: "Requests sent and still waiting for their reply",
			},
			[]string{"api_call"},
		),
	}
}

func (m *clientMetrics) RecordConnect(address string) {
	if m == nil {
		return
	}
	m.connects.WithLabelValues(address).Inc()
}

func (m *clientMetrics) RecordDisconnect(address string) {
	if m == nil {
		return
	}
	m.disconnects.WithLabelValues(address).Inc()
}

func (m *clientMetrics) RecordFrameSent(apiCall string, bytes int) {
	if m == nil {
		return
	}
	m.framesSent.WithLabelValues(apiCall).Inc()
	m.bytesSent.WithLabelValues(apiCall).Add(float64(bytes))
}

func (m *clientMetrics) RecordFrameReceived(apiCall string, bytes int) {
	if m == nil {
		return
	}
	m.framesRecv.WithLabelValues(apiCall).Inc()
	m.bytesRecv.WithLabelValues(apiCall).Add(float64(bytes))
}

func (m *clientMetrics) RecordUnknownTag(apiCall string) {
	if m == nil {
		return
	}
	m.unknownTags.WithLabelValues(apiCall).Inc()
}

func (m *clientMetrics) RecordRequestStart(apiCall string) {
	if m == nil {
		return
	}
	m.inflight.WithLabelValues(apiCall).Inc()
}

func (m *clientMetrics) RecordRequestEnd(apiCall string) {
	if m == nil {
		return
	}
	m.inflight.WithLabelValues(apiCall).Dec()
}
