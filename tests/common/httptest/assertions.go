//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "response body: %s", w.Body.String())

	if targetStruct != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "response body: %s", w.Body.String())
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response body: %s", w.Body.String())

	var errorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResponse), "error body: %s", w.Body.String())

	if expectedErrorMsg != "" {
		assert.Equal(t, expectedErrorMsg, errorResponse.Error.Message)
	}
}
