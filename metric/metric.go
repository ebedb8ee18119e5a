// SPDX-License-Identifier: MIT
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(sourceScannedCounter)
	prometheus.MustRegister(tokenScannedCounter)
	prometheus.MustRegister(invalidTokenCounter)
}

var (
	sourceScannedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "exprlex",
			Subsystem: "lexer",
			Name:      "source_scanned_total",
			Help:      "Total number of expression sources scanned.",
		})

	tokenScannedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "exprlex",
			Subsystem: "lexer",
			Name:      "token_scanned_total",
			Help:      "Total number of tokens scanned.",
		}, []string{"kind"})

	invalidTokenCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "exprlex",
			Subsystem: "lexer",
			Name:      "invalid_token_total",
			Help:      "Total number of invalid tokens scanned.",
		}, []string{"reason"})
)

// IncSource inc sources scanned
func IncSource() {
	sourceScannedCounter.Inc()
}

// AddTokens add n tokens of kind scanned
func AddTokens(kind string, n int) {
	if n < 1 {
		return
	}

	tokenScannedCounter.WithLabelValues(kind).Add(float64(n))
}

// IncInvalid inc invalid tokens scanned
func IncInvalid(reason string) {
	invalidTokenCounter.WithLabelValues(reason).Inc()
}
