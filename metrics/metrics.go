package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	toolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "redditmcp_tool_calls_total",
		Help: "Tool invocations by tool name and outcome.",
	}, []string{"tool", "status"})

	fetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "redditmcp_fetch_total",
		Help: "Upstream Reddit fetches by outcome.",
	}, []string{"outcome"})
)

func ToolCall(tool, status string) {
	toolCalls.WithLabelValues(tool, status).Inc()
}

func Fetch(outcome string) {
	fetches.WithLabelValues(outcome).Inc()
}

// Serve exposes /metrics on addr. Blocks; run it in its own goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
