package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/store-tools/report-atlas/pkg/render"
	"github.com/store-tools/report-atlas/pkg/services/report"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			Reports: report.NewBuilders(render.NewStyles(render.FontPair{})),
			Logger:  zerolog.Nop(),
		},
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestReportEndpoints(t *testing.T) {
	srv := newTestServer(t)

	payloads := map[string]string{
		"/pdf/kpi-report": `{"criteria":{"storeName":"Gangnam","viewBy":"DAY"},"data":[{"date":"2024-01-01","sales":123456}]}`,
		"/pdf/orders":     `{"criteria":{"viewBy":"MONTH"},"data":[{"yearMonth":"2024-01","totalSales":100000}]}`,
		"/pdf/menus":      `{"criteria":{},"data":[{"date":"2024-01-01","menu":"아메리카노","sales":4500}]}`,
		"/pdf/time-day":   `{"storeName":"Gangnam","viewBy":"DAY","summary":{},"dailyRows":[]}`,
		"/pdf/material":   `{"storeName":"Gangnam","viewBy":"DAY","summary":{}}`,
	}

	for path, payload := range payloads {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(payload))
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
			assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
		})
	}
}

func TestReportEndpointRejectsBadBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/pdf/kpi-report", "application/json", strings.NewReader("nope"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "trace-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-123", resp.Header.Get("X-Request-Id"))
}

func TestRequestIDGenerated(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
