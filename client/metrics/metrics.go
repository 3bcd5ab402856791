package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gitlab.com/nem2/catapult-sdk/client/config"
)

// MetricName
type MetricName string

const (
	NemClientError      MetricName = `nem_client_error`
	NodeRequest         MetricName = `node_request`
	NodeRequestDuration MetricName = `node_request_duration`
	NetworkTypeLookup   MetricName = `network_type_lookup`
)

// Metrics used to provide promethus metrics
type Metrics struct {
	logger zerolog.Logger
	cfg    config.MetricsConfiguration
	s      *http.Server
	wg     *sync.WaitGroup
}

var (
	counters = map[MetricName]prometheus.Counter{
		NetworkTypeLookup: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nem",
			Subsystem: "nem_client",
			Name:      "network_type_lookup",
			Help:      "number of times the network type is fetched from the node",
		}),
	}
	counterVecs = map[MetricName]*prometheus.CounterVec{
		NemClientError: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nem",
			Subsystem: "nem_client",
			Name:      "errors",
			Help:      "errors in nem client",
		}, []string{
			"error_name", "additional",
		}),
		NodeRequest: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nem",
			Subsystem: "nem_client",
			Name:      "node_request",
			Help:      "number of requests sent to the node",
		}, []string{
			"endpoint",
		}),
	}
	histograms = map[MetricName]prometheus.Histogram{
		NodeRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nem",
			Subsystem: "nem_client",
			Name:      "node_request_duration",
			Help:      "how long it takes the node to answer a request",
		}),
	}
	registerOnce = &sync.Once{}
	registerErr  error
)

// register all collectors once, collectors some other code already registered are tolerated
func register() error {
	registerOnce.Do(func() {
		var collectors []prometheus.Collector
		for _, item := range counterVecs {
			collectors = append(collectors, item)
		}
		for _, item := range counters {
			collectors = append(collectors, item)
		}
		for _, item := range histograms {
			collectors = append(collectors, item)
		}
		for _, item := range collectors {
			if err := prometheus.Register(item); err != nil {
				var are prometheus.AlreadyRegisteredError
				if errors.As(err, &are) {
					continue
				}
				registerErr = fmt.Errorf("fail to register metric: %w", err)
				return
			}
		}
	})
	return registerErr
}

// NewMetrics create a new instance of Metrics
func NewMetrics(cfg config.MetricsConfiguration) (*Metrics, error) {
	if err := register(); err != nil {
		return nil, err
	}
	// create a new mux server
	server := http.NewServeMux()
	// register a new handler for the /metrics endpoint
	server.Handle("/metrics", promhttp.Handler())
	// start an http server using the mux server
	s := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ListenPort),
		Handler:      server,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return &Metrics{
		logger: log.With().Str("module", "metrics").Logger(),
		cfg:    cfg,
		s:      s,
		wg:     &sync.WaitGroup{},
	}, nil
}

// GetCounter return a counter by name, if it doesn't exist, then it return nil
func (m *Metrics) GetCounter(name MetricName) prometheus.Counter {
	if counter, ok := counters[name]; ok {
		return counter
	}
	return nil
}

// GetHistograms return a histogram by name
func (m *Metrics) GetHistograms(name MetricName) prometheus.Histogram {
	if h, ok := histograms[name]; ok {
		return h
	}
	return nil
}

func (m *Metrics) GetCounterVec(name MetricName) *prometheus.CounterVec {
	if c, ok := counterVecs[name]; ok {
		return c
	}
	return nil
}

// Start the /metrics server when metrics are enabled
func (m *Metrics) Start() error {
	if !m.cfg.Enabled {
		return nil
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.logger.Info().Int("port", m.cfg.ListenPort).Msg("start metric server")
		if err := m.s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.Error().Err(err).Msg("fail to stop metric server")
		}
	}()
	return nil
}

// Stop
func (m *Metrics) Stop() error {
	if !m.cfg.Enabled {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	err := m.s.Shutdown(ctx)
	m.wg.Wait()
	return err
}
