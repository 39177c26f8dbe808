// Package metrics expõe a instrumentação Prometheus do StockRoute.
//
// Os contadores de roteamento são alimentados pelo routingservice; o
// NetworkCollector lê o estado dos armazéns a cada scrape em /metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stockroute/internal/domain"
)

const namespace = "stockroute"

// NewRegistry cria um registry com os coletores de runtime do Go e do processo.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// Handler expõe o registry no formato de texto do Prometheus.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Recorder conta os resultados das operações de roteamento.
type Recorder struct {
	Placements *prometheus.CounterVec
	Transfers  *prometheus.CounterVec
	Operations *prometheus.CounterVec
}

// NewRecorder cria e registra os contadores no Registerer informado.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		Placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "routing",
			Name:      "placements_total",
			Help:      "Produtos de entregas, por resultado da colocação.",
		}, []string{"outcome"}), // "placed" | "no_capacity" | "duplicate" | "invalid" | "no_eligible_warehouse"
		Transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "routing",
			Name:      "transfers_total",
			Help:      "Transferências entre armazéns, por operação e resultado.",
		}, []string{"operation", "outcome"}), // operation: "optimize" | "sweep" | "manual"
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "routing",
			Name:      "operations_total",
			Help:      "Operações de roteamento executadas.",
		}, []string{"operation", "status"}), // status: "completed" | "aborted"
	}
	reg.MustRegister(r.Placements, r.Transfers, r.Operations)
	return r
}

func (r *Recorder) Placement(outcome string) {
	r.Placements.WithLabelValues(outcome).Inc()
}

func (r *Recorder) Transfer(operation, outcome string) {
	r.Transfers.WithLabelValues(operation, outcome).Inc()
}

func (r *Recorder) Operation(operation, status string) {
	r.Operations.WithLabelValues(operation, status).Inc()
}

// NetworkCollector publica o estado de cada armazém no momento do scrape.
type NetworkCollector struct {
	snapshot func() []domain.WarehouseSnapshot

	capacity *prometheus.Desc
	used     *prometheus.Desc
	products *prometheus.Desc
	value    *prometheus.Desc
}

// NewNetworkCollector recebe a função que fornece as cópias dos armazéns.
func NewNetworkCollector(snapshot func() []domain.WarehouseSnapshot) *NetworkCollector {
	labels := []string{"warehouse_id", "type"}
	return &NetworkCollector{
		snapshot: snapshot,
		capacity: prometheus.NewDesc(namespace+"_warehouse_volume_capacity", "Volume total do armazém.", labels, nil),
		used:     prometheus.NewDesc(namespace+"_warehouse_volume_used", "Volume ocupado do armazém.", labels, nil),
		products: prometheus.NewDesc(namespace+"_warehouse_products", "Quantidade de lotes no armazém.", labels, nil),
		value:    prometheus.NewDesc(namespace+"_warehouse_value", "Soma dos preços unitários no armazém.", labels, nil),
	}
}

func (c *NetworkCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.used
	ch <- c.products
	ch <- c.value
}

func (c *NetworkCollector) Collect(ch chan<- prometheus.Metric) {
	for _, w := range c.snapshot() {
		id, typ := strconv.Itoa(w.ID), w.Type.String()
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, w.Volume, id, typ)
		ch <- prometheus.MustNewConstMetric(c.used, prometheus.GaugeValue, w.UsedVolume, id, typ)
		ch <- prometheus.MustNewConstMetric(c.products, prometheus.GaugeValue, float64(len(w.Products)), id, typ)
		ch <- prometheus.MustNewConstMetric(c.value, prometheus.GaugeValue, w.TotalValue, id, typ)
	}
}
