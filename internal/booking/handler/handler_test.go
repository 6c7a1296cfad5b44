package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reception-server/internal/booking/processor"
	"reception-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubLedger implements processor.BookingLedger
type stubLedger struct {
	err  error
	rows [][]interface{}
}

func (s *stubLedger) AppendRow(ctx context.Context, sheetRange string, row []interface{}) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, row)
	return nil
}

func setupRouter(ledger processor.BookingLedger) *gin.Engine {
	logger := observability.NewLogger()
	h := New(processor.New(ledger, logger), logger)

	router := gin.New()
	router.GET("/api/booking", h.HandleLiveness)
	router.POST("/api/booking", h.HandleCreateBooking)
	return router
}

func postBooking(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleCreateBooking_RecordsBooking(t *testing.T) {
	ledger := &stubLedger{}
	router := setupRouter(ledger)

	w := postBooking(router, `{"name":"Kiss Anna","date":"2026-09-02","time":"10:00","phone":"+36301234567","service":"szűrés"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Sikeresen rögzítettem Kiss Anna időpontját 2026-09-02 10:00-ra.", response["message"])
	require.Len(t, ledger.rows, 1)
}

func TestHandleCreateBooking_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"date":"2026-09-02","time":"10:00"}`},
		{name: "missing date", body: `{"name":"Kiss Anna","time":"10:00"}`},
		{name: "missing time", body: `{"name":"Kiss Anna","date":"2026-09-02"}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &stubLedger{}
			router := setupRouter(ledger)

			w := postBooking(router, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, "Hiányzó adatok. Név, dátum és időpont szükséges.", response["message"])
			assert.Empty(t, ledger.rows)
		})
	}
}

func TestHandleCreateBooking_LedgerNotConfigured(t *testing.T) {
	router := setupRouter(nil)

	w := postBooking(router, `{"name":"Kiss Anna","date":"2026-09-02","time":"10:00"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
}

func TestHandleCreateBooking_AppendFailure(t *testing.T) {
	router := setupRouter(&stubLedger{err: errors.New("googleapi: quota exceeded")})

	w := postBooking(router, `{"name":"Kiss Anna","date":"2026-09-02","time":"10:00"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Contains(t, response["message"], "Hiba az időpont rögzítésében")
}

func TestHandleLiveness(t *testing.T) {
	router := setupRouter(&stubLedger{})

	req := httptest.NewRequest(http.MethodGet, "/api/booking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mosoly Dental booking endpoint működik")
}
