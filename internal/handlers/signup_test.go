package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/pass-vault/internal/jwt"
	"github.com/sbilibin2017/pass-vault/internal/models"
	"github.com/sbilibin2017/pass-vault/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSignuper(ctrl)

	user := &models.UserDB{ID: 1, Email: "alice@example.com"}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: SignupRequest{
				Email:    "alice@example.com",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "alice@example.com", "password123").
					Return("JWT_TOKEN", user, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &AuthResponse{
				Success: true,
				User:    AuthUser{ID: 1, Email: "alice@example.com"},
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Invalid request body"},
		},
		{
			name: "email already registered",
			inputBody: SignupRequest{
				Email:    "alice@example.com",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "alice@example.com", "password123").
					Return("", nil, services.ErrEmailExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: services.ErrEmailExists.Error()},
		},
		{
			name: "weak password",
			inputBody: SignupRequest{
				Email:    "alice@example.com",
				Password: "short",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "alice@example.com", "short").
					Return("", nil, services.ErrWeakPassword)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: services.ErrWeakPassword.Error()},
		},
		{
			name: "internal error",
			inputBody: SignupRequest{
				Email:    "alice@example.com",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "alice@example.com", "password123").
					Return("", nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewSignupHandler(mockSvc, time.Hour, false)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &AuthResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}

func TestSignupHandlerSetsSessionCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSignuper(ctrl)
	mockSvc.EXPECT().
		Signup(gomock.Any(), "alice@example.com", "password123").
		Return("JWT_TOKEN", &models.UserDB{ID: 1, Email: "alice@example.com"}, nil)

	body, _ := json.Marshal(SignupRequest{Email: "alice@example.com", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	w := httptest.NewRecorder()

	NewSignupHandler(mockSvc, time.Hour, false).ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		c := cookies[0]
		assert.Equal(t, jwt.CookieName, c.Name)
		assert.Equal(t, "JWT_TOKEN", c.Value)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, int(time.Hour.Seconds()), c.MaxAge)
	}
}
