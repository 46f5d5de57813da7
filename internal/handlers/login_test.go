package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tanvirhasan/jogajog/internal/middlewares"
	"github.com/tanvirhasan/jogajog/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedLoc  string
		expectCookie bool
		expectedBody string
	}{
		{
			name: "success sets session cookie and redirects home",
			form: url.Values{"username": {"alice"}, "password": {"pw123"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "pw123").
					Return("opaque-token", nil)
			},
			expectedCode: http.StatusSeeOther,
			expectedLoc:  "/",
			expectCookie: true,
		},
		{
			name: "invalid credentials",
			form: url.Values{"username": {"alice"}, "password": {"wrong"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid credentials",
		},
		{
			name: "internal error",
			form: url.Values{"username": {"alice"}, "password": {"pw123"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "pw123").
					Return("", errInternal)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedLoc != "" {
				assert.Equal(t, tt.expectedLoc, rec.Header().Get("Location"))
			}
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}

			cookies := rec.Result().Cookies()
			if tt.expectCookie {
				var found *http.Cookie
				for _, c := range cookies {
					if c.Name == middlewares.SessionCookie {
						found = c
					}
				}
				assert.NotNil(t, found, "session cookie should be set")
				assert.Equal(t, "opaque-token", found.Value)
				assert.True(t, found.HttpOnly)
			} else {
				assert.Empty(t, cookies)
			}
		})
	}
}
