package nlp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medscribe/notetaker-api/internal/handler"
	"github.com/medscribe/notetaker-api/internal/nlp/pipeline"
	"github.com/medscribe/notetaker-api/internal/nlp/registry"
	"github.com/medscribe/notetaker-api/internal/nlp/textproc"
)

// Handler serves the stateless NLP endpoints that run the pipeline stages
// without touching persistence.
type Handler struct {
	pipeline *pipeline.Pipeline
	registry *registry.Registry
}

func NewHandler(pipe *pipeline.Pipeline, reg *registry.Registry) *Handler {
	return &Handler{pipeline: pipe, registry: reg}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	nlp := r.Group("/medical-nlp")
	{
		nlp.POST("/summarize", h.Summarize)
		nlp.POST("/extract-entities", h.ExtractEntities)
		nlp.GET("/health", h.Health)
	}
}

// Summarize runs the full pipeline and returns every derived artifact.
func (h *Handler) Summarize(c *gin.Context) {
	req, ok := handler.BindText(c)
	if !ok {
		return
	}
	result := h.pipeline.Process(req.Text, req.Metadata)
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ExtractEntities(c *gin.Context) {
	req, ok := handler.BindText(c)
	if !ok {
		return
	}
	entities, spans := h.pipeline.Extractor().ExtractDetailed(textproc.Clean(req.Text))
	c.JSON(http.StatusOK, gin.H{
		"entities":            entities,
		"linguistic_entities": spans,
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"models": h.registry.ModelStatus(),
	})
}
