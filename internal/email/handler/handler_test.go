package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reception-server/internal/email/processor"
	"reception-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockMailer is a mock implementation of processor.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendEmail(ctx context.Context, from, to, subject, textContent string) (string, error) {
	args := m.Called(ctx, from, to, subject, textContent)
	return args.String(0), args.Error(1)
}

func setupRouter(mailer processor.Mailer, defaultSender string) *gin.Engine {
	logger := observability.NewLogger()
	h := New(processor.New(mailer, defaultSender, logger), logger)

	router := gin.New()
	router.POST("/api/email", h.HandleSendEmail)
	return router
}

func postEmail(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleSendEmail_SendsFromDefaultSender(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("SendEmail", mock.Anything, "recepcio@mosolydental.hu", "patient@example.com", "Időpont emlékeztető", "Holnap 10:00").
		Return("msg-1", nil).Once()

	router := setupRouter(mailer, "recepcio@mosolydental.hu")
	w := postEmail(router, `{"to":"patient@example.com","subject":"Időpont emlékeztető","message":"Holnap 10:00"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Email sent", response["message"])
	mailer.AssertExpectations(t)
}

func TestHandleSendEmail_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing to", body: `{"subject":"s","message":"m"}`},
		{name: "missing subject", body: `{"to":"a@b.com","message":"m"}`},
		{name: "missing message", body: `{"to":"a@b.com","subject":"s"}`},
		{name: "invalid recipient", body: `{"to":"not-an-email","subject":"s","message":"m"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := new(MockMailer)
			router := setupRouter(mailer, "recepcio@mosolydental.hu")

			w := postEmail(router, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mailer.AssertNotCalled(t, "SendEmail")
		})
	}
}

func TestHandleSendEmail_SenderNotConfigured(t *testing.T) {
	router := setupRouter(nil, "")

	w := postEmail(router, `{"to":"a@b.com","subject":"s","message":"m"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Email sender is not configured", response["message"])
}

func TestHandleSendEmail_ProviderFailure(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("resend: 401")).Once()

	router := setupRouter(mailer, "recepcio@mosolydental.hu")
	w := postEmail(router, `{"to":"a@b.com","subject":"s","message":"m"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Failed to send email", response["message"])
}
