package permission

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	validateResultSuccess = "success"
	validateResultFailure = "failure"
	validateResultError   = "error"
)

var (
	registerMetricsOnce sync.Once

	validateTotal       *prometheus.CounterVec
	storeOperationTotal prometheus.Counter
)

func registerMetrics() {
	validateTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "warden_acl_validate_total",
		Help: "Total number of ACL validations by result",
	}, []string{"result"})
	prometheus.MustRegister(validateTotal)

	storeOperationTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "warden_store_operation_total",
		Help: "Total number of saved-object store operations issued",
	})
	prometheus.MustRegister(storeOperationTotal)
}

func countValidate(result string) {
	registerMetricsOnce.Do(registerMetrics)
	validateTotal.WithLabelValues(result).Inc()
}

func countStoreOperation() {
	registerMetricsOnce.Do(registerMetrics)
	storeOperationTotal.Inc()
}
