package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/pass-vault/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestVaultListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVaultLister(ctrl)

	items := []models.VaultItemDB{
		{ID: 2, UserID: 1, EncryptedTitle: "enc-b", Category: "Work"},
		{ID: 1, UserID: 1, EncryptedTitle: "enc-a", Category: "General"},
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:   "list all",
			target: "/api/vault",
			mockSetup: func() {
				mockSvc.EXPECT().
					List(gomock.Any(), int64(1), nil).
					Return(items, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &VaultItemsResponse{Items: items},
		},
		{
			name:   "list filtered by category",
			target: "/api/vault?category=Work",
			mockSetup: func() {
				mockSvc.EXPECT().
					List(gomock.Any(), int64(1), testStrPtr("Work")).
					Return(items[:1], nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &VaultItemsResponse{Items: items[:1]},
		},
		{
			name:   "search takes precedence over category",
			target: "/api/vault?search=enc&category=Work",
			mockSetup: func() {
				mockSvc.EXPECT().
					Search(gomock.Any(), int64(1), "enc").
					Return(items, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &VaultItemsResponse{Items: items},
		},
		{
			name:   "internal error",
			target: "/api/vault",
			mockSetup: func() {
				mockSvc.EXPECT().
					List(gomock.Any(), int64(1), nil).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := authRequest(http.MethodGet, tt.target, nil, 1)
			w := httptest.NewRecorder()

			handler := NewVaultListHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &VaultItemsResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}

func TestVaultListHandlerWithoutIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVaultLister(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
	w := httptest.NewRecorder()

	NewVaultListHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
