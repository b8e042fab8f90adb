package resp

import (
	"net/http"

	"github.com/AGTechathon/Agriminds/pkg/apperr"
	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	fail(c, http.StatusBadRequest, apperr.InvalidInput, msg)
}
func Unauthorized(c *gin.Context, msg string) {
	fail(c, http.StatusUnauthorized, apperr.Unauthorized, msg)
}
func Forbidden(c *gin.Context, msg string) {
	fail(c, http.StatusForbidden, apperr.Forbidden, msg)
}
func NotFound(c *gin.Context, msg string) {
	fail(c, http.StatusNotFound, apperr.NotFound, msg)
}
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	fail(c, http.StatusInternalServerError, apperr.ServerError, "internal error")
}

// Error maps a service error onto the envelope. Server errors are attached to
// the gin context for the request logger and replaced with a generic message.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.ServerError {
		ServerError(c, err)
		return
	}
	fail(c, StatusOf(kind), kind, apperr.Message(err))
}

func StatusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Forbidden:
		return http.StatusForbidden
	case apperr.InvalidInput:
		return http.StatusBadRequest
	case apperr.InvalidState, apperr.Conflict:
		return http.StatusConflict
	case apperr.Unauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, status int, kind apperr.Kind, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"ok": false, "error": msg, "kind": kind})
}
