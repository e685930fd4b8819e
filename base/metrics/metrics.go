/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"time"

	"github.com/spf13/viper"

	"github.com/bazaario/goapi/base/env"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// statsCli is the subset of the statsd client the Service relies on
type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// New creates a metric client sending to the datadog agent, with package name
// as prefix
func New(pkgName string) Service {
	ddTags := []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"pod:" + env.PodName(),
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
	return &metricsImpl{
		pkgName: pkgName,
		cli:     ddClient(),
		tags:    ddTags,
	}
}

// NewLog creates a metric client writing to the debug log, for environments
// without a statsd agent (and for tests)
func NewLog(pkgName string) Service {
	return &metricsImpl{
		pkgName: pkgName,
		cli:     &LogClient{},
	}
}

type metricsImpl struct {
	pkgName string
	cli     statsCli
	tags    []string
}

const ddRate = 1

func (mt *metricsImpl) BumpAvg(key string, val float64, tags ...string) {
	// datadog doesn't have a function to compute average only, work-around by gauge
	if err := mt.cli.Gauge(mt.pkgName+`.`+key, val, append(mt.tags, parseTag(tags)...), ddRate); err != nil {
		logBumpErr(err, key, "BumpAvg")
	}
}

func (mt *metricsImpl) BumpSum(key string, val float64, tags ...string) {
	if err := mt.cli.Count(mt.pkgName+`.`+key, int64(val), append(mt.tags, parseTag(tags)...), ddRate); err != nil {
		logBumpErr(err, key, "BumpSum")
	}
}

func (mt *metricsImpl) BumpHistogram(key string, val float64, tags ...string) {
	if err := mt.cli.Histogram(mt.pkgName+`.`+key, val, append(mt.tags, parseTag(tags)...), ddRate); err != nil {
		logBumpErr(err, key, "BumpHistogram")
	}
}

// BumpTime starts a timer. A convenient way of recording the duration of a
// function is calling it like such at the top of the function:
//
//     defer s.BumpTime("my.function").End()
func (mt *metricsImpl) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   mt.pkgName + `.` + key,
		tags:  append(mt.tags, parseTag(tags)...),
		cli:   mt.cli,
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
	cli   statsCli
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	msec := d / time.Millisecond
	nsec := d % time.Millisecond
	dur := float64(msec) + float64(nsec)*1e-6

	if err := t.cli.TimeInMilliseconds(t.key, dur, t.tags, ddRate); err != nil {
		logBumpErr(err, t.key, "BumpTime")
	}
}
