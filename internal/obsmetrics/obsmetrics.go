// Package obsmetrics exposes prometheus counters and histograms for the
// three KEM operations, plus an HTTP server to serve them.
package obsmetrics

import (
	"context"
	"net"
	"net/http"
	_ "net/http/pprof"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	shutdownTimeout = time.Second * 15
	startupDelay    = time.Millisecond * 500
)

var (
	// OperationsTotal counts calls to each KEM operation, labeled by
	// parameter set and outcome.
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kyberkem",
			Name:      "operations_total",
			Help:      "Number of KEM operations performed.",
		},
		[]string{"operation", "parameter_set", "outcome"},
	)

	// OperationDuration records how long each KEM operation took, labeled
	// by parameter set.
	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kyberkem",
			Name:      "operation_duration_seconds",
			Help:      "Latency of KEM operations in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "parameter_set"},
	)

	// ImplicitRejections is registered for decapsulations that fell back to
	// the implicit-rejection secret because the re-encryption check failed.
	// Nothing in this module increments it: Decapsulate does not report
	// whether the fallback was taken, so the counter stays at zero.
	ImplicitRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kyberkem",
			Name:      "implicit_rejections_total",
			Help:      "Number of decapsulations that used the implicit-rejection fallback.",
		},
		[]string{"parameter_set"},
	)
)

func init() {
	prometheus.MustRegister(OperationsTotal, OperationDuration, ImplicitRejections)
}

// Observe records one operation's outcome and duration.
func Observe(operation, parameterSet string, outcome string, elapsed time.Duration) {
	OperationsTotal.WithLabelValues(operation, parameterSet, outcome).Inc()
	OperationDuration.WithLabelValues(operation, parameterSet).Observe(elapsed.Seconds())
}

// RegisterBuildInfo publishes a constant gauge carrying build metadata, the
// same trick used to make version/revision queryable via PromQL.
func RegisterBuildInfo(version, revision string) {
	buildInfo := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kyberkem_build_info",
			Help: "Build and version information.",
		},
		[]string{"revision", "version"},
	)
	prometheus.MustRegister(buildInfo)
	buildInfo.WithLabelValues(revision, version).Set(1)
}

// Serve runs an HTTP server exposing /metrics and pprof's debug endpoints on
// l until shutdownC closes, then drains it within shutdownTimeout.
func Serve(l net.Listener, log zerolog.Logger, shutdownC <-chan struct{}) error {
	var wg sync.WaitGroup
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	server := &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	var serveErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		serveErr = server.Serve(l)
	}()

	log.Info().Str("addr", l.Addr().String()).Msg("starting metrics server")
	// server.Serve hangs if Shutdown runs before it's fully started.
	time.Sleep(startupDelay)

	<-shutdownC
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = server.Shutdown(ctx)

	wg.Wait()
	if serveErr == http.ErrServerClosed {
		log.Info().Msg("metrics server stopped")
		return nil
	}
	if serveErr != nil {
		log.Error().Err(serveErr).Msg("metrics server quit with error")
	}
	return serveErr
}
