package fetch

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome classifies how a fetch ended.
type Outcome string

const (
	OutcomeOK             Outcome = "ok"
	OutcomeStatus         Outcome = "status"
	OutcomeContentType    Outcome = "content_type"
	OutcomeParseError     Outcome = "parse_error"
	OutcomeBodyTooLarge   Outcome = "body_too_large"
	OutcomeTransportError Outcome = "transport_error"
)

// Observer captures telemetry for fetches.
type Observer interface {
	RecordFetch(outcome Outcome, duration time.Duration, bodyBytes int64)
}

type nopObserver struct{}

func (nopObserver) RecordFetch(Outcome, time.Duration, int64) {}

// PrometheusObserver exports fetch metrics to Prometheus.
type PrometheusObserver struct {
	duration  *prometheus.HistogramVec
	fetches   *prometheus.CounterVec
	bodyBytes prometheus.Counter
}

// NewPrometheusObserver registers the fetch duration, outcome and body size
// metrics. Collectors that are already registered are reused.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = "semlex"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rdf_fetch",
		Name:      "duration_seconds",
		Help:      "Latency of RDF fetches by outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rdf_fetch",
		Name:      "total",
		Help:      "Count of RDF fetches by outcome.",
	}, []string{"outcome"})
	bodyBytes := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rdf_fetch",
		Name:      "body_bytes_total",
		Help:      "Cumulative size of RDF documents successfully parsed.",
	})

	var err error
	o := &PrometheusObserver{}
	if o.duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if o.fetches, err = register(reg, fetches); err != nil {
		return nil, err
	}
	if o.bodyBytes, err = register(reg, bodyBytes); err != nil {
		return nil, err
	}
	return o, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register fetch metric: %w", err)
	}
	return c, nil
}

// RecordFetch implements Observer.
func (o *PrometheusObserver) RecordFetch(outcome Outcome, duration time.Duration, bodyBytes int64) {
	if o == nil {
		return
	}
	o.duration.WithLabelValues(string(outcome)).Observe(duration.Seconds())
	o.fetches.WithLabelValues(string(outcome)).Inc()
	if outcome == OutcomeOK {
		o.bodyBytes.Add(float64(bodyBytes))
	}
}
