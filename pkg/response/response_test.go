package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/onlinebookstore/pkg/errors"
	"github.com/xiebiao/onlinebookstore/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/books", nil)
	return c, w
}

func TestText(t *testing.T) {
	c, w := newContext()
	Text(c, "Login Successful")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login Successful", w.Body.String())
}

func TestOK_EmptyBody(t *testing.T) {
	c, w := newContext()
	OK(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError_ValidationFields(t *testing.T) {
	c, w := newContext()
	Error(c, apperrors.Invalid("参数错误", map[string]string{"price": "Price must be greater than 0"}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperrors.ErrCodeInvalidParams, body.Code)
	assert.Equal(t, "Price must be greater than 0", body.Errors["price"])
}

func TestError_NotFound(t *testing.T) {
	c, w := newContext()
	Error(c, apperrors.ErrBookNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
}

func TestError_InternalCauseHidden(t *testing.T) {
	var buf bytes.Buffer
	original := *logger.Get()
	logger.Set(zerolog.New(&buf))
	defer logger.Set(original)

	c, w := newContext()
	Error(c, apperrors.Wrap(errors.New("dial tcp: connection refused"), "查询图书失败"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestError_PlainError(t *testing.T) {
	c, w := newContext()
	Error(c, errors.New("unexpected"))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperrors.ErrCodeInternal, body.Code)
}
