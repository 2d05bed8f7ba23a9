package apperrors

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandleGinError_ProductionRedactsCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h := &GinErrorHandler{}
	h.HandleGinError(c, InternalError(errors.New("dial tcp 10.0.0.5:5432: connection refused")))

	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestHandleGinError_DebugKeepsCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h := &GinErrorHandler{Debug: true}
	h.HandleGinError(c, InternalError(errors.New("dial tcp 10.0.0.5:5432: connection refused")))

	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestHandleGinError_DoesNotMutateOriginal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	appErr := InternalError(errors.New("boom"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h := &GinErrorHandler{Debug: true}
	h.HandleGinError(c, appErr)

	assert.Nil(t, appErr.Details)
}

func TestHandleGinError_ClientErrorPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h := &GinErrorHandler{}
	h.HandleGinError(c, NewBadRequestError("missing field"))

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "missing field")
}
