package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/bazaario/goapi/base/log"
)

const (
	// DdPort is the statsd port of the datadog agent
	DdPort = 8125

	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}
	ddCli    statsCli
)

// ddClient lazily connects to the datadog agent. Init once so the buffer is
// counted together and one connection toward the statsd agent is maintained.
// Falls back to the log client when no agent is reachable.
func ddClient() statsCli {
	initOnce.Do(func() {
		host := viper.GetString("datadog_host")
		addr := fmt.Sprintf("%s:%d", host, DdPort)
		log.Log().WithField("addr", addr).Info("connecting to datadog agent")

		cli, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn(
				"can't talk to datadog agent, metrics go to log")
			ddCli = &LogClient{}
			return
		}
		ddCli = cli
	})
	return ddCli
}

func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

func logBumpErr(err error, key, fn string) {
	log.Log().WithFields(log.Fields{"err": err, "key": key, "func": fn}).Error("Bump fail")
}
