// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package route registers the HTTP handlers of the detection API server.
package route

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/macaron.v1"

	"github.com/mojidet/mojidet/internal/conf"
	"github.com/mojidet/mojidet/internal/detect"
)

// RegisterRoutes attaches all handlers to the given Macaron instance.
func RegisterRoutes(m *macaron.Macaron) {
	m.Get("/healthz", Healthz)
	m.Post("/api/v1/detect", Detect)

	if conf.Prometheus.Enabled {
		m.Get("/-/metrics", func(c *macaron.Context) {
			if !conf.Prometheus.EnableBasicAuth {
				return
			}

			user, pass, ok := c.Req.BasicAuth()
			if !ok || user != conf.Prometheus.BasicAuthUsername || pass != conf.Prometheus.BasicAuthPassword {
				c.Resp.Header().Set("WWW-Authenticate", `Basic realm="mojidet"`)
				c.Status(http.StatusUnauthorized)
			}
		}, promhttp.Handler())
	}
}

// Healthz responds to liveness probes.
func Healthz(c *macaron.Context) {
	c.PlainText(http.StatusOK, []byte("ok"))
}

// Detect streams the request body through the charset arbitration and
// responds with the best result.
func Detect(c *macaron.Context) {
	result, err := detect.DetectReader(c.Req.Body().ReadCloser())
	if err != nil {
		detectionsFailed.Inc()
		c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": err.Error(),
		})
		return
	}

	detections.WithLabelValues(result.Charset).Inc()
	c.JSON(http.StatusOK, result)
}
