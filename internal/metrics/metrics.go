package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the session layer counters. A nil *Recorder is valid and records nothing.
type Recorder struct {
	// CommandsTotal tracks dispatched commands by role, command and result kind
	CommandsTotal *prometheus.CounterVec

	// UnknownCommandsTotal tracks dispatch attempts for names outside the role's table
	UnknownCommandsTotal *prometheus.CounterVec

	// ApplicationsRecorded tracks applications created, duplicates are counted separately
	ApplicationsRecorded *prometheus.CounterVec

	// LoginsTotal tracks authentication attempts by outcome
	LoginsTotal *prometheus.CounterVec

	// ActiveSessions tracks sessions that have been created and not yet closed
	ActiveSessions prometheus.Gauge
}

// New registers the counters on reg. Pass prometheus.NewRegistry() in tests so runs don't collide.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobsearch_commands_total",
				Help: "Total session commands executed by role, command and result",
			},
			[]string{"role", "command", "result"},
		),
		UnknownCommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobsearch_unknown_commands_total",
				Help: "Total attempts to execute a command not bound for the role",
			},
			[]string{"role"},
		),
		ApplicationsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobsearch_applications_total",
				Help: "Total job applications by outcome (created/duplicate)",
			},
			[]string{"outcome"},
		),
		LoginsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobsearch_logins_total",
				Help: "Total authentication attempts by outcome",
			},
			[]string{"outcome"},
		),
		ActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "jobsearch_active_sessions",
				Help: "Number of open sessions",
			},
		),
	}
}

func (r *Recorder) Command(role, command, result string) {
	if r == nil {
		return
	}
	r.CommandsTotal.WithLabelValues(role, command, result).Inc()
}

func (r *Recorder) UnknownCommand(role string) {
	if r == nil {
		return
	}
	r.UnknownCommandsTotal.WithLabelValues(role).Inc()
}

func (r *Recorder) Application(created bool) {
	if r == nil {
		return
	}
	outcome := "created"
	if !created {
		outcome = "duplicate"
	}
	r.ApplicationsRecorded.WithLabelValues(outcome).Inc()
}

func (r *Recorder) Login(outcome string) {
	if r == nil {
		return
	}
	r.LoginsTotal.WithLabelValues(outcome).Inc()
}

func (r *Recorder) SessionOpened() {
	if r == nil {
		return
	}
	r.ActiveSessions.Inc()
}

func (r *Recorder) SessionClosed() {
	if r == nil {
		return
	}
	r.ActiveSessions.Dec()
}

// Totals sums every counter and gauge gathered from g by metric name, ignoring labels.
// Counters that have never been incremented have no series and are absent.
func Totals(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, errors.Wrap(err, "[metrics.Totals] Gather")
	}

	totals := make(map[string]float64, len(families))
	for _, family := range families {
		for _, m := range family.GetMetric() {
			totals[family.GetName()] += m.GetCounter().GetValue() + m.GetGauge().GetValue()
		}
	}
	return totals, nil
}
