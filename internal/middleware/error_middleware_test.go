package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adjei/scholarhub/internal/pkg/apperrors"
)

func responseFor(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401},
		{"expired token", apperrors.ErrTokenExpired, 401},
		{"permission denied", apperrors.ErrPermissionDenied, 403},
		{"scheme not found", apperrors.ErrSchemeNotFound, 404},
		{"application not found", apperrors.ErrApplicationNotFound, 404},
		{"document not found", apperrors.ErrDocumentNotFound, 404},
		{"already applied", apperrors.ErrAlreadyApplied, 409},
		{"email exists", apperrors.ErrEmailAlreadyExists, 409},
		{"bank details exist", apperrors.ErrBankDetailsExist, 409},
		{"scheme closed", apperrors.ErrSchemeClosed, 400},
		{"invalid transition", apperrors.ErrInvalidTransition, 400},
		{"invalid file type", apperrors.ErrInvalidFileType, 400},
		{"bank details required", apperrors.ErrBankDetailsRequired, 400},
		{"unknown error", assert.AnError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := responseFor(t, tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestHandleAPIErrorValidationCarriesField(t *testing.T) {
	code, body := responseFor(t, apperrors.NewValidationError("dateOfBirth", "unrecognized date format"))

	assert.Equal(t, 400, code)
	errBody, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dateOfBirth", errBody["field"])
	assert.Equal(t, "unrecognized date format", errBody["message"])
}
