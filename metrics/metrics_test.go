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

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/ref"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return New(reg), reg
}

func histogram(t *testing.T, reg *prometheus.Registry, name string) *dto.Histogram {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.NotEmpty(t, mf.GetMetric())
			return mf.GetMetric()[0].GetHistogram()
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return nil
}

func TestCollector_Lifecycle(t *testing.T) {
	c, _ := newTestCollector(t)
	f := apis.NewFacet("metricstest.thing")

	c.Created(f)
	c.Created(f)
	c.Destroyed(f)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.created.WithLabelValues("metricstest.thing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.destroyed.WithLabelValues("metricstest.thing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.live.WithLabelValues("metricstest.thing")))
}

func TestCollector_Protocol(t *testing.T) {
	c, _ := newTestCollector(t)
	f := apis.NewFacet("metricstest.thing")

	c.Queried(f, apis.MatchPointer, true)
	c.Queried(f, apis.MatchName, false)
	c.Duplicated(f, apis.MatchPointer, false)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.queries.WithLabelValues("metricstest.thing", apis.MatchPointer.String(), "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.queries.WithLabelValues("metricstest.thing", apis.MatchName.String(), "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.duplicates.WithLabelValues("metricstest.thing", apis.MatchPointer.String(), "miss")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.queries))
}

func TestCollector_Frame(t *testing.T) {
	c, reg := newTestCollector(t)

	c.Loop(2 * time.Millisecond)
	c.Loop(3 * time.Millisecond)
	c.Frame(16 * time.Millisecond)

	loop := histogram(t, reg, "facet_frame_loop_duration_seconds")
	assert.Equal(t, uint64(2), loop.GetSampleCount())
	assert.InDelta(t, 0.005, loop.GetSampleSum(), 1e-9)

	fr := histogram(t, reg, "facet_frame_frame_duration_seconds")
	assert.Equal(t, uint64(1), fr.GetSampleCount())
	assert.Equal(t, 1.0, testutil.ToFloat64(c.frames))
}

func TestCollector_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}

func TestCollector_AsObjectObserver(t *testing.T) {
	c, _ := newTestCollector(t)
	prev := facet.SetObserver(c)
	t.Cleanup(func() { facet.SetObserver(prev) })

	o := ref.New()
	assert.True(t, ref.Supports(o, apis.RefFacet, apis.MatchPointer))
	o.Dec()

	name := apis.RefFacet.Name()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.created.WithLabelValues(name)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.destroyed.WithLabelValues(name)))
	assert.Zero(t, testutil.ToFloat64(c.live.WithLabelValues(name)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.queries.WithLabelValues(name, apis.MatchPointer.String(), "hit")))
}
