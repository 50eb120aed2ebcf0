package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amherst-artisan-market/market-backend/internal/common"
)

func TestError_ValidationIncludesField(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, common.NewValidationError("email", "Invalid email format"), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email format","field":"email"}`, rec.Body.String())
}

func TestError_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, common.NewNotFound("Application not found"), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Application not found"}`, rec.Body.String())
}

func TestError_Unauthorized(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, common.NewError(common.CodeUnauthorized, "invalid token", nil), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestError_UncodedBecomes500WithDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, errors.New("connection refused"), "Failed to fetch applications")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch applications", body.Error)
	assert.Equal(t, "connection refused", body.Details)
}

func TestCORS_SetsHeadersAndAnswersPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/vendor-applications", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
