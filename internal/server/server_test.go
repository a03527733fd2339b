package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"community-connect-be/internal/bootstrap"
	"community-connect-be/internal/config"
	"community-connect-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        "logs/test.log",
			CorsAllowedOrigins: "http://localhost:5173",
			NatsURL:            "nats://localhost:4222",
			RedisURL:           "redis://localhost:6379",
		},
		Voice: config.VoiceConfig{
			Enabled:       true,
			SilenceWindow: 2000 * time.Millisecond,
			ActionDelay:   1500 * time.Millisecond,
			DisplayWindow: 3000 * time.Millisecond,
			ClearDelay:    2000 * time.Millisecond,
		},
		Content: config.ContentConfig{DefaultLanguage: "en"},
	}
}

var (
	testAppOnce sync.Once
	testApp     *fiber.App
)

// Container setup probes NATS and Redis with connection timeouts, so the
// tests share one app instance.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	testAppOnce.Do(func() {
		cfg := testConfig()
		container := bootstrap.NewContainer(cfg)
		testApp = New(cfg, container).GetApp()
	})
	return testApp
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 5000)
	assert.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		data, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(data, out))
	}
	return resp.StatusCode
}

func TestContentEndpoints(t *testing.T) {
	app := newTestApp(t)

	var languages dto.LanguagesResponse
	code := doJSON(t, app, http.MethodGet, "/api/content/languages", nil, &languages)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "en", languages.Default)
	assert.Len(t, languages.Languages, 4)

	var nav dto.NavigationResponse
	req := httptest.NewRequest(http.MethodGet, "/api/navigation", nil)
	req.Header.Set("Accept-Language", "zh-CN")
	resp, err := app.Test(req, 5000)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(data, &nav))
	assert.Equal(t, "zh", nav.Language)
}

func TestCatalogEndpoints(t *testing.T) {
	app := newTestApp(t)

	var all dto.CatalogResponse
	code := doJSON(t, app, http.MethodGet, "/api/services", nil, &all)
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, all.Items)

	var filtered dto.CatalogResponse
	code = doJSON(t, app, http.MethodGet, "/api/services?q=passport", nil, &filtered)
	assert.Equal(t, http.StatusOK, code)
	assert.Less(t, filtered.Total, all.Total)

	var vital dto.CatalogResponse
	code = doJSON(t, app, http.MethodGet, "/api/vital?q=zzz-no-match", nil, &vital)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, vital.Empty)
}

func TestHealthcareEndpoints(t *testing.T) {
	app := newTestApp(t)

	var clinics dto.FacilitiesResponse
	code := doJSON(t, app, http.MethodGet, "/api/healthcare/clinics", nil, &clinics)
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, clinics.Facilities)

	var opts dto.AppointmentOptionsResponse
	code = doJSON(t, app, http.MethodGet, "/api/healthcare/appointment-options", nil, &opts)
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, opts.Slots)
	assert.NotEmpty(t, opts.Areas)
}

func TestEventEndpoints(t *testing.T) {
	app := newTestApp(t)

	var list dto.CatalogResponse
	code := doJSON(t, app, http.MethodGet, "/api/events", nil, &list)
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, list.Items)

	var detail dto.EventDetailResponse
	code = doJSON(t, app, http.MethodGet, "/api/events/"+list.Items[0].Id, nil, &detail)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, list.Items[0].Id, detail.Event.Id)
	assert.Len(t, detail.Others, len(list.Items)-1)

	code = doJSON(t, app, http.MethodGet, "/api/events/no-such-event", nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAssistanceValidation(t *testing.T) {
	app := newTestApp(t)

	code := doJSON(t, app, http.MethodPost, "/api/assistance", dto.AssistanceRequest{Name: "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAccessibilityEndpoints(t *testing.T) {
	app := newTestApp(t)

	var state dto.AccessibilityResponse
	code := doJSON(t, app, http.MethodGet, "/api/session/accessibility?session_id=s1", nil, &state)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 16, state.Layout.FontSizePx)

	body := dto.AccessibilityAdjustRequest{Surface: "layout", Control: "font", Action: "increase"}
	code = doJSON(t, app, http.MethodPost, "/api/session/accessibility?session_id=s1", body, &state)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 18, state.Layout.FontSizePx)

	bad := dto.AccessibilityAdjustRequest{Surface: "nope", Control: "font", Action: "increase"}
	code = doJSON(t, app, http.MethodPost, "/api/session/accessibility?session_id=s1", bad, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPassportWizardOverHTTP(t *testing.T) {
	app := newTestApp(t)

	var start dto.PassportStartResponse
	code := doJSON(t, app, http.MethodPost, "/api/passport/start", nil, &start)
	assert.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, start.ApplicationId)

	var locations dto.PassportLocationsResponse
	code = doJSON(t, app, http.MethodGet, "/api/passport/locations", nil, &locations)
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, locations.Locations)

	var state dto.PassportStateResponse
	next := fmt.Sprintf("/api/passport/%s/next", start.ApplicationId)
	code = doJSON(t, app, http.MethodPost, next, dto.PassportAdvanceRequest{
		FullName:    "Tan Ah Kow",
		MyKadNumber: "480101-10-1234",
		Phone:       "012-3456789",
	}, &state)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, state.Step)

	back := fmt.Sprintf("/api/passport/%s/back", start.ApplicationId)
	code = doJSON(t, app, http.MethodPost, back, nil, &state)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, state.Step)
}

func TestVoiceUsageEndpoint(t *testing.T) {
	app := newTestApp(t)

	var report dto.VoiceUsageReport
	code := doJSON(t, app, http.MethodGet, "/api/voice/usage", nil, &report)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, report.ByCommand)
}

func TestVoiceEndpointRequiresUpgrade(t *testing.T) {
	app := newTestApp(t)

	code := doJSON(t, app, http.MethodGet, "/ws/voice", nil, nil)
	assert.Equal(t, http.StatusUpgradeRequired, code)
}

func TestVoiceEndpointDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Voice.Enabled = false
	container := bootstrap.NewContainer(cfg)
	app := New(cfg, container).GetApp()

	code := doJSON(t, app, http.MethodGet, "/ws/voice", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}
