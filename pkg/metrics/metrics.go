package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics regroupe les compteurs Prometheus de l'API.
type Metrics struct {
	// RequestsTotal compte les requêtes HTTP par méthode, route et statut.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration mesure la latence des requêtes HTTP en secondes.
	RequestDuration *prometheus.HistogramVec
	// MouvementsTotal compte les mouvements de stock validés, par type (IN/OUT).
	MouvementsTotal *prometheus.CounterVec
	// MouvementsRefuses compte les mouvements refusés, par motif.
	MouvementsRefuses *prometheus.CounterVec
}

// New construit et enregistre les métriques auprès du registre fourni.
// Passer prometheus.DefaultRegisterer en production; un registre dédié en test.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meditrack_http_requests_total",
				Help: "Nombre total de requêtes HTTP traitées",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "meditrack_http_request_duration_seconds",
				Help:    "Durée des requêtes HTTP en secondes",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		MouvementsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meditrack_mouvements_total",
				Help: "Mouvements de stock enregistrés, par type",
			},
			[]string{"type"},
		),
		MouvementsRefuses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meditrack_mouvements_refuses_total",
				Help: "Mouvements de stock refusés, par motif",
			},
			[]string{"motif"},
		),
	}
	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.MouvementsTotal, m.MouvementsRefuses)
	return m
}
