package service

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/hKV/lib/command"
	"github.com/rcrowley/go-metrics"
)

// Plugin bundles related hooks so they can be registered with a single Builder.Use call.
type Plugin interface {
	Register(b *Builder)
}

// --------------------------------------------------------------------------
// Logging
// --------------------------------------------------------------------------

// LogHooks logs every request and every non successful response.
// Successful responses are only logged at debug level.
type LogHooks struct{}

func (LogHooks) Register(b *Builder) {
	b.OnReceived(func(req command.CommandRequest) {
		Logger.Debugf("received %s", req.Name())
	}).OnExecuted(func(resp command.CommandResponse) {
		if resp.IsOK() {
			Logger.Debugf("executed with status %d", resp.Status)
			return
		}
		Logger.Warningf("executed with status %d: %s", resp.Status, resp.Message)
	})
}

// --------------------------------------------------------------------------
// Statistics
// --------------------------------------------------------------------------

// Stats records command statistics in a go-metrics registry:
//
//	requests             meter over all received requests
//	commands.<name>      counter, one per received request
//	status.<code>        counter, one per executed response
//	response.values      histogram of the number of values per response
//	responses.sent       counter, one per response that was handed out
type Stats struct {
	registry metrics.Registry
}

// NewStats creates a Stats plugin. If r is nil a new registry is created.
func NewStats(r metrics.Registry) *Stats {
	if r == nil {
		r = metrics.NewRegistry()
	}
	return &Stats{registry: r}
}

// Registry returns the registry the statistics are written to.
func (st *Stats) Registry() metrics.Registry {
	return st.registry
}

func (st *Stats) Register(b *Builder) {
	b.OnReceived(st.received).OnExecuted(st.executed).OnAfterSend(st.sent)
}

func (st *Stats) received(req command.CommandRequest) {
	metrics.GetOrRegisterMeter("requests", st.registry).Mark(1)
	metrics.GetOrRegisterCounter("commands."+req.Name(), st.registry).Inc(1)
}

func (st *Stats) executed(resp command.CommandResponse) {
	metrics.GetOrRegisterCounter(fmt.Sprintf("status.%d", resp.Status), st.registry).Inc(1)
	metrics.GetOrRegisterHistogram("response.values", st.registry, metrics.NewUniformSample(1028)).
		Update(int64(len(resp.Values) + len(resp.Pairs)))
}

func (st *Stats) sent() {
	metrics.GetOrRegisterCounter("responses.sent", st.registry).Inc(1)
}

// Commands returns how many requests with the given name were received.
func (st *Stats) Commands(name string) int64 {
	return metrics.GetOrRegisterCounter("commands."+name, st.registry).Count()
}

// Status returns how many responses with the given status were produced.
func (st *Stats) Status(code uint32) int64 {
	return metrics.GetOrRegisterCounter(fmt.Sprintf("status.%d", code), st.registry).Count()
}

// Sent returns how many responses were handed out.
func (st *Stats) Sent() int64 {
	return metrics.GetOrRegisterCounter("responses.sent", st.registry).Count()
}

// printfLogger adapts the service logger to metrics.Logger
type printfLogger struct{}

func (printfLogger) Printf(format string, v ...interface{}) {
	Logger.Infof(format, v...)
}

// LogPeriodically writes all statistics to the service logger every interval.
// It blocks forever and is meant to be started in its own goroutine.
func (st *Stats) LogPeriodically(interval time.Duration) {
	metrics.Log(st.registry, interval, printfLogger{})
}
