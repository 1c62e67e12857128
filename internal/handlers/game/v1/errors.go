package v1

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// ErrorResponse is the JSON error body
type ErrorResponse struct {
	Code    errors.Code    `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"code", code.String(),
			"error", err)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:    code,
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}

// bind decodes the JSON body, rendering InvalidArgument on failure
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request body"))
		return false
	}
	return true
}

// bindOptional is bind for endpoints whose body may be empty, chunked or not
func bindOptional(c *gin.Context, req any) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request body"))
		return false
	}
	return true
}
