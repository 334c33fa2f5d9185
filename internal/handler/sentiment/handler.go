package sentiment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medscribe/notetaker-api/internal/handler"
	"github.com/medscribe/notetaker-api/internal/nlp/sentiment"
	"github.com/medscribe/notetaker-api/internal/nlp/textproc"
)

type Handler struct {
	classifier *sentiment.Classifier
}

func NewHandler(classifier *sentiment.Classifier) *Handler {
	return &Handler{classifier: classifier}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	s := r.Group("/sentiment")
	{
		s.POST("/analyze", h.Analyze)
		s.POST("/analyze-utterance", h.AnalyzeUtterance)
	}
}

// Analyze classifies a whole conversation transcript.
func (h *Handler) Analyze(c *gin.Context) {
	req, ok := handler.BindText(c)
	if !ok {
		return
	}
	result := h.classifier.Analyze(textproc.Clean(req.Text))
	c.JSON(http.StatusOK, result)
}

// AnalyzeUtterance classifies a single patient utterance. Same contract as
// Analyze; kept separate so callers can stream per-turn classifications.
func (h *Handler) AnalyzeUtterance(c *gin.Context) {
	req, ok := handler.BindText(c)
	if !ok {
		return
	}
	result := h.classifier.Analyze(textproc.Clean(req.Text))
	c.JSON(http.StatusOK, gin.H{
		"utterance": req.Text,
		"result":    result,
	})
}
