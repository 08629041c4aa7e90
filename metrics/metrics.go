/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics exports object lifecycle, facet protocol and frame loop
// events as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/frame"
)

const namespace = "facet"

// Collector implements apis.Observer and frame.Observer. Install it with
// facet.SetObserver and frame.SetObserver.
type Collector struct {
	created    *prometheus.CounterVec
	destroyed  *prometheus.CounterVec
	live       *prometheus.GaugeVec
	queries    *prometheus.CounterVec
	duplicates *prometheus.CounterVec

	loop   prometheus.Histogram
	frame  prometheus.Histogram
	frames prometheus.Counter
}

var (
	_ apis.Observer  = (*Collector)(nil)
	_ frame.Observer = (*Collector)(nil)
)

// New registers the collector's metrics with reg. A nil reg uses the
// default registerer. It panics if the metrics are already registered.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Collector{
		created: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "objects",
			Name:      "created_total",
			Help:      "Objects constructed, by identity facet.",
		}, []string{"facet"}),
		destroyed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "objects",
			Name:      "destroyed_total",
			Help:      "Objects destroyed, by identity facet.",
		}, []string{"facet"}),
		live: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "objects",
			Name:      "live",
			Help:      "Objects constructed and not yet destroyed, by identity facet.",
		}, []string{"facet"}),
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "protocol",
			Name:      "queries_total",
			Help:      "Query calls by requested facet, match mode and result.",
		}, []string{"facet", "mode", "result"}),
		duplicates: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "protocol",
			Name:      "duplicates_total",
			Help:      "Duplicate calls by requested facet, match mode and result.",
		}, []string{"facet", "mode", "result"}),
		loop: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "frame",
			Name:      "loop_duration_seconds",
			Help:      "Time between consecutive polls.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 0.1ms to ~200ms
		}),
		frame: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "frame",
			Name:      "frame_duration_seconds",
			Help:      "Time between consecutive frames.",
			Buckets:   []float64{0.004, 0.008, 0.0167, 0.0333, 0.05, 0.1, 0.25},
		}),
		frames: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "frame",
			Name:      "frames_total",
			Help:      "Frames that passed the rate gate.",
		}),
	}
}

func (c *Collector) Created(identity *apis.Facet) {
	name := identity.Name()
	c.created.WithLabelValues(name).Inc()
	c.live.WithLabelValues(name).Inc()
}

func (c *Collector) Destroyed(identity *apis.Facet) {
	name := identity.Name()
	c.destroyed.WithLabelValues(name).Inc()
	c.live.WithLabelValues(name).Dec()
}

func (c *Collector) Queried(want *apis.Facet, mode apis.Match, ok bool) {
	c.queries.WithLabelValues(want.Name(), mode.String(), result(ok)).Inc()
}

func (c *Collector) Duplicated(want *apis.Facet, mode apis.Match, ok bool) {
	c.duplicates.WithLabelValues(want.Name(), mode.String(), result(ok)).Inc()
}

func (c *Collector) Loop(d time.Duration) {
	c.loop.Observe(d.Seconds())
}

func (c *Collector) Frame(d time.Duration) {
	c.frame.Observe(d.Seconds())
	c.frames.Inc()
}

func result(ok bool) string {
	if ok {
		return "hit"
	}
	return "miss"
}
