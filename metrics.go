package dynarray

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	length   prometheus.Gauge
	capacity prometheus.Gauge
	adds     prometheus.Counter
	grows    prometheus.Counter
	copies   prometheus.Counter
	removals prometheus.Counter
	clears   prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	m := metrics{
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "length",
			Help:      "Number of elements in sequence",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capacity",
			Help:      "Number of allocated slots in sequence's buffer",
		}),
		adds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "adds",
			Help:      "Number of elements appended to sequence",
		}),
		grows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "grows",
			Help:      "Number of buffer reallocations caused by appends",
		}),
		copies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "copies",
			Help:      "Number of elements copied into reallocated buffers",
		}),
		removals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "removals",
			Help:      "Number of elements removed from sequence",
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "clears",
			Help:      "Number of times sequence was cleared",
		}),
	}

	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "dynarray"},
			registerer,
		)
		registerer.MustRegister(
			m.length,
			m.capacity,
			m.adds,
			m.grows,
			m.copies,
			m.removals,
			m.clears,
		)
	}

	return &m
}

// The methods below are no-ops on a nil receiver, which is the case for sequences created
// without [Config.Prometheus].

func (m *metrics) init(capacity int) {
	if m == nil {
		return
	}
	m.length.Set(0)
	m.capacity.Set(float64(capacity))
}

func (m *metrics) add(length int) {
	if m == nil {
		return
	}
	m.adds.Inc()
	m.length.Set(float64(length))
}

func (m *metrics) grow(copied, capacity int) {
	if m == nil {
		return
	}
	m.grows.Inc()
	m.copies.Add(float64(copied))
	m.capacity.Set(float64(capacity))
}

func (m *metrics) remove(length int) {
	if m == nil {
		return
	}
	m.removals.Inc()
	m.copies.Add(float64(length))
	m.length.Set(float64(length))
	m.capacity.Set(float64(length))
}

func (m *metrics) clear() {
	if m == nil {
		return
	}
	m.clears.Inc()
	m.length.Set(0)
}
