package metrics

import (
	"errors"
	"sort"
	"strconv"
	"time"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/prometheus/client_golang/prometheus"
	gometrics "github.com/rcrowley/go-metrics"

	"temporary-dns/dns/cmdrunner"
)

const namespace = "temporary_dns"

// Recorder collects the timings of one run. It observes commands, probes and
// the request, and can be flushed to a node-exporter textfile.
type Recorder struct {
	registry *prometheus.Registry
	timers   gometrics.Registry

	commands  *prometheus.HistogramVec
	probes    *prometheus.HistogramVec
	requests  *prometheus.HistogramVec
	overrides *prometheus.CounterVec

	logger boshlog.Logger
	logTag string
}

func NewRecorder(logger boshlog.Logger) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		timers:   gometrics.NewRegistry(),

		commands: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Duration of DNS configuration commands.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"command", "outcome"}),
		probes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "probe_rtt_seconds",
			Help:      "Round trip time of preflight DNS queries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"server", "outcome"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of the HTTP request made under the override.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"code"}),
		overrides: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "override_operations_total",
			Help:      "Override open and revert attempts.",
		}, []string{"operation", "outcome"}),

		logger: logger,
		logTag: "MetricsRecorder",
	}

	r.registry.MustRegister(r.commands, r.probes, r.requests, r.overrides)

	return r
}

func (r *Recorder) ObserveCommand(name string, duration time.Duration, err error) {
	r.commands.WithLabelValues(name, outcome(err)).Observe(duration.Seconds())
	gometrics.GetOrRegisterTimer("command."+name, r.timers).Update(duration)
}

func (r *Recorder) ObserveProbe(server string, rtt time.Duration, err error) {
	r.probes.WithLabelValues(server, outcome(err)).Observe(rtt.Seconds())
	gometrics.GetOrRegisterTimer("probe."+server, r.timers).Update(rtt)
}

func (r *Recorder) ObserveRequest(statusCode int, duration time.Duration, err error) {
	code := "none"
	if statusCode != 0 {
		code = strconv.Itoa(statusCode)
	}

	r.requests.WithLabelValues(code).Observe(duration.Seconds())
	gometrics.GetOrRegisterTimer("request", r.timers).Update(duration)
}

// ObserveOverride counts an "open" or "revert" of the override.
func (r *Recorder) ObserveOverride(operation string, err error) {
	r.overrides.WithLabelValues(operation, outcome(err)).Inc()
}

func (r *Recorder) WriteTextfile(path string) error {
	err := prometheus.WriteToTextfile(path, r.registry)
	if err != nil {
		return bosherr.WrapErrorf(err, "Writing metrics to '%s'", path)
	}

	return nil
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// LogSummary logs one debug line per timer, in name order.
func (r *Recorder) LogSummary() {
	var names []string
	r.timers.Each(func(name string, _ interface{}) {
		names = append(names, name)
	})
	sort.Strings(names)

	for _, name := range names {
		timer, ok := r.timers.Get(name).(gometrics.Timer)
		if !ok {
			continue
		}

		snapshot := timer.Snapshot()
		r.logger.Debug(r.logTag, "%s: count=%d mean=%s max=%s",
			name,
			snapshot.Count(),
			time.Duration(snapshot.Mean()),
			time.Duration(snapshot.Max()),
		)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, cmdrunner.ErrTimeout):
		return "timeout"
	default:
		return "failure"
	}
}
