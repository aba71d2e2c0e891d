package htmltokenizer

import "github.com/prometheus/client_golang/prometheus"

// Metrics is an optional set of Prometheus collectors a consumer may
// register with a StateMachine via WithMetrics. Every method is nil-safe:
// a zero-value Metrics (or a StateMachine built with no WithMetrics
// option) observes nothing and allocates nothing extra.
type Metrics struct {
	// TokensEmitted counts emitted tokens, labeled by kind (see
	// TokenKind.String).
	TokensEmitted *prometheus.CounterVec
	// BytesConsumed counts bytes advanced past by the cursor across all
	// Feed/ResumeFrom calls.
	BytesConsumed prometheus.Counter
	// Suspensions counts RunParsingLoop returns, labeled by break reason
	// (see BreakKind.String).
	Suspensions *prometheus.CounterVec
}

// NewMetrics constructs a Metrics with collectors registered against reg.
// Passing a nil registry is valid and simply skips registration — the
// collectors are still usable, just unregistered (useful in tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TokensEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "htmltokenizer",
			Name:      "tokens_emitted_total",
			Help:      "Number of tokens emitted by the tokenizer, by kind.",
		}, []string{"kind"}),
		BytesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "htmltokenizer",
			Name:      "bytes_consumed_total",
			Help:      "Number of input bytes the tokenizer has advanced past.",
		}),
		Suspensions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "htmltokenizer",
			Name:      "loop_suspensions_total",
			Help:      "Number of times the parsing loop suspended, by reason.",
		}, []string{"reason"}),
	}
	if reg != nil {
		reg.MustRegister(m.TokensEmitted, m.BytesConsumed, m.Suspensions)
	}
	return m
}

func (m *Metrics) observeToken(kind TokenKind) {
	if m == nil || m.TokensEmitted == nil {
		return
	}
	m.TokensEmitted.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) observeBytes(n int) {
	if m == nil || m.BytesConsumed == nil || n <= 0 {
		return
	}
	m.BytesConsumed.Add(float64(n))
}

func (m *Metrics) observeSuspension(reason BreakKind) {
	if m == nil || m.Suspensions == nil {
		return
	}
	m.Suspensions.WithLabelValues(reason.String()).Inc()
}
