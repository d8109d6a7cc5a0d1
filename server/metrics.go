package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schemasGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jtdinfer_schemas_generated_total",
		Help: "Number of schema documents generated.",
	})

	requestsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jtdinfer_requests_failed_total",
		Help: "Number of schema requests rejected with an error.",
	})
)
