package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tanvirhasan/jogajog/internal/middlewares"
	"github.com/tanvirhasan/jogajog/internal/services"
)

func TestSendMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockMessageSender)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "anonymous message with name",
			body: `{"user":"Bob","content":"hi"}`,
			mockSetup: func(m *MockMessageSender) {
				m.EXPECT().
					SendMessage(gomock.Any(), int64(0), "Bob", "hi").
					Return(int64(1), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"ok": true},
		},
		{
			name: "missing user field passes through empty",
			body: `{"content":"hello"}`,
			mockSetup: func(m *MockMessageSender) {
				m.EXPECT().
					SendMessage(gomock.Any(), int64(0), "", "hello").
					Return(int64(2), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"ok": true},
		},
		{
			name: "empty content",
			body: `{"user":"Bob","content":"  "}`,
			mockSetup: func(m *MockMessageSender) {
				m.EXPECT().
					SendMessage(gomock.Any(), int64(0), "Bob", "  ").
					Return(int64(0), services.ErrEmptyContent)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Empty content"},
		},
		{
			name:         "invalid JSON body",
			body:         `{not-json`,
			mockSetup:    func(m *MockMessageSender) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Empty content"},
		},
		{
			name: "internal error",
			body: `{"user":"Bob","content":"hi"}`,
			mockSetup: func(m *MockMessageSender) {
				m.EXPECT().
					SendMessage(gomock.Any(), int64(0), "Bob", "hi").
					Return(int64(0), errInternal)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMessageSender(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewSendMessageHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/send_message", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}

func TestSendMessageHandler_SessionUserRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMessageSender(ctrl)
	mockSvc.EXPECT().
		SendMessage(gomock.Any(), int64(9), "alice", "hi").
		Return(int64(3), nil)

	resolver := middlewares.NewMockSessionResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), "tok").Return(int64(9), nil)

	handler := NewSendMessageHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/send_message", bytes.NewBufferString(`{"user":"alice","content":"hi"}`))
	req.AddCookie(&http.Cookie{Name: middlewares.SessionCookie, Value: "tok"})
	rec := httptest.NewRecorder()

	middlewares.SessionMiddleware(resolver)(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
