// Package metrics records encode outcomes for the node_exporter textfile
// collector.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/net2share/awgenc/internal/awg"
	"github.com/net2share/awgenc/internal/clientcfg"
	"github.com/net2share/awgenc/internal/config"
	"github.com/net2share/awgenc/internal/wgconf"
)

// Recorder holds the encoder metrics in a private registry.
type Recorder struct {
	registry    *prometheus.Registry
	encodes     *prometheus.CounterVec
	tokenBytes  prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		encodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "awgenc_encodes_total",
				Help: "Total number of encode runs (tagged by result).",
			},
			[]string{"result"},
		),
		tokenBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "awgenc_token_bytes",
			Help: "Length of the most recently produced token.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "awgenc_last_success_timestamp_seconds",
			Help: "Unix time of the most recent successful encode.",
		}),
	}
	r.registry.MustRegister(r.encodes, r.tokenBytes, r.lastSuccess)
	return r
}

// Success records a produced token.
func (r *Recorder) Success(token string, at time.Time) {
	r.encodes.WithLabelValues("ok").Inc()
	r.tokenBytes.Set(float64(len(token)))
	r.lastSuccess.Set(float64(at.Unix()))
}

// Failure records a failed run, labelled by error kind.
func (r *Recorder) Failure(err error) {
	r.encodes.WithLabelValues(Result(err)).Inc()
}

// WriteFile writes the metrics in text exposition format to path.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Result maps an error to its metric label.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, config.ErrInvalidUserID):
		return "input_error"
	case errors.Is(err, wgconf.ErrFileAccess):
		return "file_access_error"
	case errors.Is(err, wgconf.ErrConfig):
		return "config_error"
	case errors.Is(err, awg.ErrBuild):
		return "build_error"
	case errors.Is(err, clientcfg.ErrEncode):
		return "encode_error"
	default:
		return "error"
	}
}
