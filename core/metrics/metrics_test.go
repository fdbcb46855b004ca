package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "root"},
		{"", "root"},
		{"/inventory", "inventory"},
		{"/inventory/A1", "inventory"},
		{"/reports/types/laptop", "reports"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePath(tt.in), tt.in)
	}
}

func TestCounters(t *testing.T) {
	m := New(Config{Namespace: "test"})

	m.RowLoaded("price")
	m.RowLoaded("price")
	m.RowSkipped("price", "short_row")
	m.ReportWritten()
	m.ReportFailed()
	m.ReportFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rowsLoaded.WithLabelValues("price")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rowsSkipped.WithLabelValues("price", "short_row")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reportsWritten))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.reportsFailed))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RowLoaded("price")
		m.RowSkipped("price", "short_row")
		m.ReportWritten()
		m.ReportFailed()
	})
}

func TestMiddleware(t *testing.T) {
	m := New(Config{Namespace: "test"})
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/inventory/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/X9", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "inventory", "404")))
}

func TestHandler(t *testing.T) {
	m := New(Config{Namespace: "test"})
	m.ReportWritten()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "test_reports_written_total 1"))
}
