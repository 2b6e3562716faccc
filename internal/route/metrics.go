// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	detections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mojidet_detections_total",
		Help: "Number of successful detections by charset.",
	}, []string{"charset"})

	detectionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mojidet_detections_failed_total",
		Help: "Number of requests where no charset could be detected.",
	})
)
