package metric

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type prometheusMetrics struct {
	registerer prometheus.Registerer

	mutex      *sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec

	labels Labels
}

func NewPrometheusMetrics() Metrics {
	return &prometheusMetrics{
		registerer: prometheus.DefaultRegisterer,
		mutex:      &sync.Mutex{},
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
		labels:     nil,
	}
}

func (m *prometheusMetrics) With(labels Labels) Metrics {
	if len(labels) == 0 {
		return m
	}

	merged := make(Labels, len(m.labels)+len(labels))
	for name, value := range m.labels {
		merged[name] = value
	}
	for name, value := range labels {
		merged[name] = value
	}

	return &prometheusMetrics{
		registerer: m.registerer,
		mutex:      m.mutex,
		counters:   m.counters,
		histograms: m.histograms,
		labels:     merged,
	}
}

func (m *prometheusMetrics) Increment(key string) {
	m.counter(key).With(prometheus.Labels(m.labels)).Inc()
}

func (m *prometheusMetrics) Duration(key string, duration time.Duration) {
	m.histogram(key).With(prometheus.Labels(m.labels)).Observe(duration.Seconds())
}

func (m *prometheusMetrics) counter(key string) *prometheus.CounterVec {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	counter, ok := m.counters[key]
	if ok {
		return counter
	}

	counter = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: key},
		m.labelNames(),
	)
	m.registerer.MustRegister(counter)
	m.counters[key] = counter
	return counter
}

func (m *prometheusMetrics) histogram(key string) *prometheus.HistogramVec {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	histogram, ok := m.histograms[key]
	if ok {
		return histogram
	}

	histogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: key, Buckets: prometheus.DefBuckets},
		m.labelNames(),
	)
	m.registerer.MustRegister(histogram)
	m.histograms[key] = histogram
	return histogram
}

func (m *prometheusMetrics) labelNames() []string {
	names := make([]string, 0, len(m.labels))
	for name := range m.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
