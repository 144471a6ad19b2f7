package util_test

import (
	"encoding/json"
	"errors"
	"movie-catalog/internal/model/requestresponse"
	"movie-catalog/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogError_WrapsOriginal(t *testing.T) {
	sentinel := errors.New("boom")

	err := util.LogError("[Test] операция не удалась", sentinel)

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "[Test] операция не удалась: boom", err.Error())
}

func TestHandleError(t *testing.T) {
	rec := httptest.NewRecorder()

	util.HandleError(rec, "фильм не найден", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body requestresponse.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 404, body.Error.Code)
	assert.Equal(t, "фильм не найден", body.Error.Text)
}

func TestNewLogger(t *testing.T) {
	logger, err := util.NewLogger("debug", "json")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = util.NewLogger("loud", "json")
	assert.Error(t, err)

	_, err = util.NewLogger("info", "xml")
	assert.Error(t, err)
}
