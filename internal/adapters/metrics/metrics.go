// Package metrics implements ports.Metrics with a Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/roam/internal/core/ports"
)

const namespace = "roam"

var _ ports.Metrics = (*Registry)(nil)

// Registry holds the service metrics on its own Prometheus registry.
type Registry struct {
	reg *prometheus.Registry

	// ReloadsTotal counts reload attempts. Labels: result.
	ReloadsTotal *prometheus.CounterVec
	// MutationsTotal counts gateway operations. Labels: op, outcome.
	MutationsTotal *prometheus.CounterVec
	// SnapshotConnections is the connection count of the current snapshot.
	SnapshotConnections prometheus.Gauge
	// SnapshotLocations is the location count of the current snapshot.
	SnapshotLocations prometheus.Gauge
	// MapRequestsTotal counts snapshot fetches. Labels: status.
	MapRequestsTotal *prometheus.CounterVec
}

// New creates a registry with the service metrics and the Go runtime collectors.
func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		ReloadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reloads_total",
			Help:      "Reload attempts of the source document by result",
		}, []string{"result"}),
		MutationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Connection mutations by operation and outcome",
		}, []string{"op", "outcome"}),
		SnapshotConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_connections",
			Help:      "Connections in the current snapshot",
		}),
		SnapshotLocations: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_locations",
			Help:      "Locations in the current snapshot",
		}),
		MapRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "map_requests_total",
			Help:      "Snapshot fetches by response status",
		}, []string{"status"}),
	}
}

// ObserveReload counts a reload attempt.
func (r *Registry) ObserveReload(result ports.ReloadResult) {
	r.ReloadsTotal.WithLabelValues(string(result)).Inc()
}

// ObserveMutation counts a gateway operation.
func (r *Registry) ObserveMutation(op, outcome string) {
	r.MutationsTotal.WithLabelValues(op, outcome).Inc()
}

// SetSnapshotSize records the size of the current snapshot.
func (r *Registry) SetSnapshotSize(connections, locations int) {
	r.SnapshotConnections.Set(float64(connections))
	r.SnapshotLocations.Set(float64(locations))
}

// ObserveMapRequest counts a snapshot fetch by status code.
func (r *Registry) ObserveMapRequest(status int) {
	r.MapRequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
