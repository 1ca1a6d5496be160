package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
	"github.com/vfg2006/partner-plan-api/pkg/log"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCors(t *testing.T) {
	tests := []struct {
		name            string
		allowed         []string
		method          string
		origin          string
		wantStatus      int
		wantAllowOrigin string
	}{
		{
			name:            "origem liberada",
			allowed:         []string{"http://localhost:5173"},
			method:          http.MethodGet,
			origin:          "http://localhost:5173",
			wantStatus:      http.StatusOK,
			wantAllowOrigin: "http://localhost:5173",
		},
		{
			name:       "origem não liberada",
			allowed:    []string{"http://localhost:5173"},
			method:     http.MethodGet,
			origin:     "http://evil.example",
			wantStatus: http.StatusOK,
		},
		{
			name:            "curinga",
			allowed:         []string{"*"},
			method:          http.MethodGet,
			origin:          "http://qualquer.example",
			wantStatus:      http.StatusOK,
			wantAllowOrigin: "http://qualquer.example",
		},
		{
			name:            "preflight",
			allowed:         []string{"http://localhost:5173"},
			method:          http.MethodOptions,
			origin:          "http://localhost:5173",
			wantStatus:      http.StatusNoContent,
			wantAllowOrigin: "http://localhost:5173",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/business-plans", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/business-plans", nil)

	require.NotPanics(t, func() {
		LogPanicMiddleware()(panicking).ServeHTTP(rec, req)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"SRV_001"`)
}

func TestLoggingMiddleware_KeepsStatusCode(t *testing.T) {
	log.SetupTestLogger()

	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(notFound).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/evaluations/x", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoggingMiddleware_RecordsAPIErrorCode(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	log.SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	rejected := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRate, "invalid rate", map[string]string{"field": "outbound.sql_to_win_rate"})
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(rejected).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/business-plans/preview", nil))

	// O corpo chega intacto ao cliente
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"outbound.sql_to_win_rate"`)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "VAL_004", entry.Data["error_code"])
	assert.Equal(t, "outbound.sql_to_win_rate", entry.Data["field"])
	assert.Equal(t, http.StatusUnprocessableEntity, entry.Data["status_code"])
	assert.Equal(t, rec.Header().Get(CorrelationIDHeader), entry.Data["correlation_id"])
}

func TestLoggingMiddleware_SuccessHasNoErrorCode(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	log.SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"not-an-error"}`))
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/companies", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"code":"not-an-error"}`, rec.Body.String())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.NotContains(t, entry.Data, "error_code")
}

func TestStatusRecorder_CapsErrorBody(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	rec.WriteHeader(http.StatusBadRequest)

	big := make([]byte, 3*maxErrorBodySize)
	n, err := rec.Write(big)
	require.NoError(t, err)
	assert.Equal(t, len(big), n)
	assert.Equal(t, maxErrorBodySize, rec.errorBody.Len())
	assert.Nil(t, rec.apiErrorFields())
}
