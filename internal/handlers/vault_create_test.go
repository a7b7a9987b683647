package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/pass-vault/internal/middlewares"
	"github.com/sbilibin2017/pass-vault/internal/models"
	"github.com/sbilibin2017/pass-vault/internal/services"
	"github.com/stretchr/testify/assert"
)

// authRequest builds a request carrying a verified identity, as left
// by the auth middleware.
func authRequest(method, target string, body io.Reader, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := middlewares.SetIdentityToContext(req.Context(), middlewares.Identity{
		UserID: userID,
		Email:  "alice@example.com",
	})
	return req.WithContext(ctx)
}

// withItemID attaches a chi route context carrying the {id} parameter.
func withItemID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func testStrPtr(s string) *string { return &s }

func TestVaultCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVaultCreator(ctrl)

	item := &models.VaultItemDB{
		ID:                10,
		UserID:            1,
		EncryptedTitle:    "enc-title",
		EncryptedPassword: "enc-pass",
		Category:          "Work",
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: VaultCreateRequest{
				EncryptedTitle:    "enc-title",
				EncryptedPassword: "enc-pass",
				EncryptedUsername: testStrPtr("enc-user"),
				Category:          "Work",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), "enc-title", "enc-pass",
						testStrPtr("enc-user"), nil, nil, "Work").
					Return(item, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &VaultItemResponse{Item: *item},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Invalid request body"},
		},
		{
			name: "missing title",
			inputBody: VaultCreateRequest{
				EncryptedPassword: "enc-pass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), "", "enc-pass", nil, nil, nil, "").
					Return(nil, services.ErrTitlePasswordRequired)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Title and password are required"},
		},
		{
			name: "internal error",
			inputBody: VaultCreateRequest{
				EncryptedTitle:    "enc-title",
				EncryptedPassword: "enc-pass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(1), "enc-title", "enc-pass", nil, nil, nil, "").
					Return(nil, errors.New("database error"))
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

			req := authRequest(http.MethodPost, "/api/vault", bytes.NewReader(bodyBytes), 1)
			w := httptest.NewRecorder()

			handler := NewVaultCreateHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &VaultItemResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}

func TestVaultCreateHandlerWithoutIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVaultCreator(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/vault", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()

	NewVaultCreateHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
