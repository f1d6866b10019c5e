package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var r Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Success(c, gin.H{"count": 2})

	assert.Equal(t, http.StatusOK, w.Code)
	r := decode(t, w)
	assert.Equal(t, 0, r.Code)
	assert.Equal(t, "success", r.Message)
	assert.Equal(t, map[string]interface{}{"count": 2.0}, r.Data)
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	BadRequest(c, "Invalid hover payload", errors.New("customdata has 1 entries"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	r := decode(t, w)
	assert.Equal(t, 400, r.Code)
	assert.Equal(t, "customdata has 1 entries", r.Error)
	assert.Len(t, c.Errors, 1)
}

func TestNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	NotFound(c, "Record not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	r := decode(t, w)
	assert.Empty(t, r.Error)
	assert.Nil(t, r.Data)
}
