package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/marcelsud/release-notify/delivery"
	"github.com/marcelsud/release-notify/metrics"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, families []*dto.MetricFamily, prefix string) *dto.MetricFamily {
	t.Helper()
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), prefix) {
			return mf
		}
	}
	t.Fatalf("no metric family with prefix %q", prefix)
	return nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

func TestOTelExporter_RecordDelivery(t *testing.T) {
	ctx := context.Background()

	t.Run("success - counts deliveries per outcome", func(t *testing.T) {
		exporter, err := metrics.NewOTelExporter()
		require.NoError(t, err)
		defer exporter.Shutdown(ctx)

		exporter.RecordDelivery(ctx, delivery.Delivered, 100*time.Millisecond)
		exporter.RecordDelivery(ctx, delivery.Delivered, 200*time.Millisecond)
		exporter.RecordDelivery(ctx, delivery.TimedOut, 5*time.Second)

		families, err := exporter.Gatherer().Gather()
		require.NoError(t, err)

		counter := findFamily(t, families, "release_notify_deliveries")
		counts := map[string]float64{}
		for _, m := range counter.GetMetric() {
			counts[labelValue(m, "outcome")] = m.GetCounter().GetValue()
		}
		assert.Equal(t, 2.0, counts["delivered"])
		assert.Equal(t, 1.0, counts["timed_out"])

		histogram := findFamily(t, families, "release_notify_delivery_duration")
		var samples uint64
		for _, m := range histogram.GetMetric() {
			samples += m.GetHistogram().GetSampleCount()
		}
		assert.Equal(t, uint64(3), samples)
	})

	t.Run("success - handler serves prometheus text", func(t *testing.T) {
		exporter, err := metrics.NewOTelExporter()
		require.NoError(t, err)
		defer exporter.Shutdown(ctx)

		exporter.RecordDelivery(ctx, delivery.Failed, time.Second)

		rec := httptest.NewRecorder()
		exporter.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "release_notify_deliveries")
		assert.Contains(t, rec.Body.String(), `outcome="failed"`)
	})
}

func TestOTelExporter_Push(t *testing.T) {
	ctx := context.Background()

	t.Run("success - pushes to the job path", func(t *testing.T) {
		var path, body string
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			b, _ := io.ReadAll(r.Body)
			body = string(b)
			w.WriteHeader(http.StatusOK)
		}))
		defer gateway.Close()

		exporter, err := metrics.NewOTelExporter()
		require.NoError(t, err)
		defer exporter.Shutdown(ctx)

		exporter.RecordDelivery(ctx, delivery.Delivered, time.Millisecond)

		require.NoError(t, exporter.Push(ctx, gateway.URL, "release_notify"))
		assert.Equal(t, "/metrics/job/release_notify", path)
		assert.NotEmpty(t, body)
	})

	t.Run("error - gateway rejects", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer gateway.Close()

		exporter, err := metrics.NewOTelExporter()
		require.NoError(t, err)
		defer exporter.Shutdown(ctx)

		exporter.RecordDelivery(ctx, delivery.Delivered, time.Millisecond)

		err = exporter.Push(ctx, gateway.URL, "release_notify")
		assert.Error(t, err)
	})
}

func TestNoop(t *testing.T) {
	var r metrics.Recorder = metrics.Noop{}
	assert.NotPanics(t, func() {
		r.RecordDelivery(context.Background(), delivery.Skipped, 0)
	})
}
