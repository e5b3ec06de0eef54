package domains

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"domain-checker/core/grid"
	"domain-checker/core/history"
	"domain-checker/core/loader"
	"domain-checker/core/probe"
	"domain-checker/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, db *gorm.DB) *fiber.App {
	cfg := testConfig()
	cfg.MinDelayMillis, cfg.MaxDelayMillis = 0, 0

	svc := NewService(grid.NewRouter(nil), newStub(), db, nil, cfg,
		history.Config{Enabled: true, BatchSize: 10, RecentLimit: 5}, zap.NewNop())

	app := fiber.New()
	mgr := loader.NewManager()
	mgr.Register(NewFeature(svc))
	loaded, err := mgr.LoadAll(app)
	require.NoError(t, err)
	require.Equal(t, []string{"domains"}, loaded)
	return app
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleReconcile(t *testing.T) {
	app := setupTestApp(t, nil)

	body, contentType := multipartBody(t, "file", "domains.csv", sampleCSV)
	req := httptest.NewRequest("POST", "/domains/reconcile", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Equal(t, "3", resp.Header.Get("X-Checked"))
	assert.Equal(t, "2", resp.Header.Get("X-Resolved"))
	assert.Equal(t, "1", resp.Header.Get("X-Errors"))
	assert.NotEmpty(t, resp.Header.Get("X-Run-ID"))

	out, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Domain,.com,net\nfoo,Registered,Registered\nbar,Not Registered,\n,,\n", string(out))
}

func TestHandleReconcile_BadRequests(t *testing.T) {
	app := setupTestApp(t, nil)

	tests := []struct {
		name     string
		field    string
		filename string
		content  string
	}{
		{"Missing File Field", "upload", "domains.csv", sampleCSV},
		{"Unsupported Format", "file", "domains.ods", sampleCSV},
		{"Malformed Table", "file", "domains.csv", "Domain\nfoo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tt.field, tt.filename, tt.content)
			req := httptest.NewRequest("POST", "/domains/reconcile", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)

			var payload map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func TestHandleCheck(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/domains/check/foo.com", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var rep ProbeReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	assert.Equal(t, "Registered", rep.Status)

	resp, err = app.Test(httptest.NewRequest("GET", "/domains/check/bar.net", nil))
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)
}

func TestHandleHistory(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		app := setupTestApp(t, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/domains/history/foo.com", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})

	t.Run("Recorded", func(t *testing.T) {
		db := setupHistoryDB(t)
		app := setupTestApp(t, db)

		body, contentType := multipartBody(t, "file", "domains.csv", sampleCSV)
		req := httptest.NewRequest("POST", "/domains/reconcile", body)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest("GET", "/domains/history/bar.com?limit=3", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var records []history.CheckRecord
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
		require.Len(t, records, 1)
		assert.Equal(t, "available", records[0].Outcome)
	})
}

// peakChecker records the highest number of concurrent checks.
type peakChecker struct {
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (p *peakChecker) Check(ctx context.Context, name string) probe.Result {
	n := p.inFlight.Add(1)
	defer p.inFlight.Add(-1)
	for {
		old := p.peak.Load()
		if n <= old || p.peak.CompareAndSwap(old, n) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)
	return probe.Available()
}

func TestHandleReconcile_WorkersCapped(t *testing.T) {
	checker := &peakChecker{}
	cfg := reconcile.Config{Workers: 1, MaxWorkers: 3, SaveAttempts: 2}
	svc := NewService(grid.NewRouter(nil), checker, nil, nil, cfg, history.Config{}, zap.NewNop())

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	var table strings.Builder
	table.WriteString("Domain,.com\n")
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&table, "name%d,\n", i)
	}

	body, contentType := multipartBody(t, "file", "domains.csv", table.String())
	req := httptest.NewRequest("POST", "/domains/reconcile?workers=100000", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "200", resp.Header.Get("X-Checked"))
	assert.LessOrEqual(t, checker.peak.Load(), int32(3))
	assert.GreaterOrEqual(t, checker.peak.Load(), int32(1))
}
