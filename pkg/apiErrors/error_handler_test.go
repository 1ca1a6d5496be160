package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := map[string]int{
		ErrInvalidRequest:    http.StatusBadRequest,
		ErrInvalidRate:       http.StatusUnprocessableEntity,
		ErrInvalidSplit:      http.StatusUnprocessableEntity,
		ErrScoreOutOfRange:   http.StatusUnprocessableEntity,
		ErrNegativeInput:     http.StatusUnprocessableEntity,
		ErrResourceNotFound:  http.StatusNotFound,
		ErrDatabaseOperation: http.StatusInternalServerError,
		"XYZ_999":            http.StatusInternalServerError,
	}

	for code, want := range tests {
		assert.Equal(t, want, StatusFor(code), code)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidRate, "invalid rate", map[string]string{"field": "inbound.tal_to_sql_rate"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"code": "VAL_004",
		"message": "invalid rate",
		"details": {"field": "inbound.tal_to_sql_rate"}
	}`, rec.Body.String())
}
