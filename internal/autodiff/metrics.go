package autodiff

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var tapeBackward = promauto.NewCounter(prometheus.CounterOpts{
	Name: "stride_tape_backward_total",
	Help: "Number of completed gradient tape backward passes",
})
