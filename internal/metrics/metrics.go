// Package metrics records authentication and validation outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation and outcome label values.
const (
	OpLogin    = "login"
	OpRegister = "register"
	OpLogout   = "logout"
	OpRestore  = "restore"
	OpProfile  = "profile"

	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeDuplicate = "duplicate"
	OutcomeEmpty     = "empty"
	OutcomeMalformed = "malformed"
)

// Recorder receives session store events.
type Recorder interface {
	AuthAttempt(operation, outcome string)
	ValidationFailure(field string)
	SessionActive(active bool)
}

// Nop discards every event.
type Nop struct{}

func (Nop) AuthAttempt(string, string) {}
func (Nop) ValidationFailure(string)   {}
func (Nop) SessionActive(bool)         {}

// Prometheus exports events as counters and a gauge.
type Prometheus struct {
	attempts    *prometheus.CounterVec
	validations *prometheus.CounterVec
	active      prometheus.Gauge
}

// NewPrometheus registers the collectors on reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vasco",
			Name:      "auth_attempts_total",
			Help:      "Session store operations by outcome.",
		}, []string{"operation", "outcome"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vasco",
			Name:      "validation_failures_total",
			Help:      "Rejected form submissions by first failing field.",
		}, []string{"field"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vasco",
			Name:      "session_active",
			Help:      "1 while a user is logged in.",
		}),
	}
	reg.MustRegister(p.attempts, p.validations, p.active)
	return p
}

func (p *Prometheus) AuthAttempt(operation, outcome string) {
	p.attempts.WithLabelValues(operation, outcome).Inc()
}

func (p *Prometheus) ValidationFailure(field string) {
	p.validations.WithLabelValues(field).Inc()
}

func (p *Prometheus) SessionActive(active bool) {
	if active {
		p.active.Set(1)
		return
	}
	p.active.Set(0)
}
