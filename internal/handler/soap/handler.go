package soap

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medscribe/notetaker-api/internal/handler"
	"github.com/medscribe/notetaker-api/internal/nlp/pipeline"
	"github.com/medscribe/notetaker-api/internal/nlp/soap"
	"github.com/medscribe/notetaker-api/internal/nlp/textproc"
)

type Handler struct {
	pipeline *pipeline.Pipeline
}

func NewHandler(pipe *pipeline.Pipeline) *Handler {
	return &Handler{pipeline: pipe}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	s := r.Group("/soap")
	{
		s.POST("/generate", h.Generate)
	}
}

// Generate runs the upstream stages and returns only the SOAP note.
func (h *Handler) Generate(c *gin.Context) {
	req, ok := handler.BindText(c)
	if !ok {
		return
	}

	clean := textproc.Clean(req.Text)
	entities := h.pipeline.Extractor().Extract(clean)
	summary := h.pipeline.Summarizer().Summarize(clean)
	analysis := h.pipeline.Classifier().Analyze(clean)
	if req.PatientName != "" {
		entities.PatientName = req.PatientName
	}

	note := soap.Generate(soap.Inputs{
		Text:      clean,
		Entities:  entities,
		Summary:   summary,
		Sentiment: analysis,
	})
	c.JSON(http.StatusOK, note)
}
