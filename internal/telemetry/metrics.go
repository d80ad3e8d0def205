// Package telemetry holds the Prometheus collectors of the relay.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Drop reasons used as the "reason" label of MessagesDropped.
const (
	ReasonInvalidPayload = "invalid_payload"
	ReasonStoreError     = "store_error"
	ReasonPanic          = "panic"
)

type Metrics struct {
	MessagesReceived prometheus.Counter
	MessagesDropped  *prometheus.CounterVec
	EventsStored     *prometheus.CounterVec
	PeopleCounted    *prometheus.CounterVec
	BrokerConnected  prometheus.Gauge
}

// NewMetrics registers the relay collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		MessagesReceived: f.NewCounter(prometheus.CounterOpts{
			Name: "people_counting_messages_received_total",
			Help: "Total number of MQTT messages received on the counting topic",
		}),
		MessagesDropped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "people_counting_messages_dropped_total",
			Help: "Total number of MQTT messages dropped by reason",
		}, []string{"reason"}),
		EventsStored: f.NewCounterVec(prometheus.CounterOpts{
			Name: "people_counting_events_stored_total",
			Help: "Total number of count events appended to the counts table by direction",
		}, []string{"direction"}),
		PeopleCounted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "people_counting_people_total",
			Help: "Sum of the count field of stored events by direction",
		}, []string{"direction"}),
		BrokerConnected: f.NewGauge(prometheus.GaugeOpts{
			Name: "people_counting_broker_connected",
			Help: "1 while the relay holds a broker connection, 0 otherwise",
		}),
	}
}

// Handler serves the collectors gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
