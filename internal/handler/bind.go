package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medscribe/notetaker-api/internal/model"
)

// BindText decodes the shared text payload and enforces the transport-level
// contract that text must be non-blank. On failure it writes the 400 response
// and returns ok=false.
func BindText(c *gin.Context) (model.AnalyzeTextRequest, bool) {
	var req model.AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
		return req, false
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, NewErrorResponse("text must not be empty"))
		return req, false
	}
	return req, true
}
