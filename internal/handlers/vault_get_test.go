package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/pass-vault/internal/models"
	"github.com/sbilibin2017/pass-vault/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestVaultGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVaultGetter(ctrl)

	item := &models.VaultItemDB{ID: 10, UserID: 1, EncryptedTitle: "enc-title"}

	tests := []struct {
		name         string
		itemID       string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:   "success",
			itemID: "10",
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), int64(1), int64(10)).
					Return(item, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &VaultItemResponse{Item: *item},
		},
		{
			name:         "malformed id",
			itemID:       "abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Invalid item id"},
		},
		{
			name:   "not found",
			itemID: "99",
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), int64(1), int64(99)).
					Return(nil, services.ErrItemNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Item not found"},
		},
		{
			name:   "internal error",
			itemID: "10",
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), int64(1), int64(10)).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := authRequest(http.MethodGet, "/api/vault/"+tt.itemID, nil, 1)
			req = withItemID(req, tt.itemID)
			w := httptest.NewRecorder()

			handler := NewVaultGetHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
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
