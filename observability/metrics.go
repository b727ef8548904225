// Package observability holds the Prometheus collectors for the analysis pipeline.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline stages observed by StageDuration
const (
	StageLoad     = "load"
	StageFilter   = "filter"
	StageTemporal = "temporal"
	StageStations = "stations"
	StageDuration = "duration"
	StageUsers    = "users"
)

var (
	stageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bikeshare",
		Name:      "stage_duration_seconds",
		Help:      "Wall time spent in each pipeline stage.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
	}, []string{"stage"})
	rowsLoaded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bikeshare",
		Name:      "rows_loaded_total",
		Help:      "Trip records loaded, by source kind.",
	}, []string{"source"})
	rowsFiltered = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "bikeshare",
		Name:      "rows_filtered",
		Help:      "Rows left after filtering in the latest run for a city.",
	}, []string{"city"})
)

func init() {
	prometheus.MustRegister(stageDuration, rowsLoaded, rowsFiltered)
}

// ObserveStage records how long a stage took
func ObserveStage(stage string, elapsed time.Duration) {
	stageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// RecordRowsLoaded counts rows read from a source kind (csv, xlsx, postgres)
func RecordRowsLoaded(source string, n int) {
	if n <= 0 {
		return
	}
	rowsLoaded.WithLabelValues(source).Add(float64(n))
}

// RecordRowsFiltered sets the row count left for city after filtering
func RecordRowsFiltered(city string, n int) {
	rowsFiltered.WithLabelValues(city).Set(float64(n))
}

// WriteTextfile dumps the default registry in the text exposition format
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
