package cpu

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// KernelInvocations counts kernel runs by operation and iteration path.
	KernelInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stride_kernel_invocations_total",
			Help: "Number of map/zip/reduce kernel invocations by iteration path",
		},
		[]string{"op", "path"},
	)

	// KernelElements counts output cells written by each operation.
	KernelElements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stride_kernel_elements_total",
			Help: "Number of output elements written by map/zip/reduce kernels",
		},
		[]string{"op"},
	)
)

func observe(op string, path kernelPath, elements int) {
	KernelInvocations.WithLabelValues(op, string(path)).Inc()
	KernelElements.WithLabelValues(op).Add(float64(elements))
}
