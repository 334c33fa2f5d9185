package summarization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medscribe/notetaker-api/internal/handler"
	"github.com/medscribe/notetaker-api/internal/nlp/summarize"
	"github.com/medscribe/notetaker-api/internal/nlp/textproc"
)

type Handler struct {
	summarizer *summarize.Summarizer
}

func NewHandler(summarizer *summarize.Summarizer) *Handler {
	return &Handler{summarizer: summarizer}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	s := r.Group("/summarization")
	{
		s.POST("/summarize", h.Summarize)
	}
}

func (h *Handler) Summarize(c *gin.Context) {
	req, ok := handler.BindText(c)
	if !ok {
		return
	}
	summary := h.summarizer.Summarize(textproc.Clean(req.Text))
	if req.PatientName != "" {
		summary.PatientName = req.PatientName
	}
	c.JSON(http.StatusOK, summary)
}
