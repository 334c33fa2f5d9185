package nlp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medscribe/notetaker-api/internal/nlp/extract"
	"github.com/medscribe/notetaker-api/internal/nlp/pipeline"
	"github.com/medscribe/notetaker-api/internal/nlp/registry"
	"github.com/medscribe/notetaker-api/internal/nlp/sentiment"
	"github.com/medscribe/notetaker-api/internal/nlp/summarize"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	reg := registry.New(registry.Config{})
	extractor := extract.NewExtractor(reg, 0)
	pipe := pipeline.New(extractor, summarize.NewSummarizer(extractor), sentiment.NewClassifier(reg, 0, 0))

	r := gin.New()
	NewHandler(pipe, reg).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSummarizeFieldContract(t *testing.T) {
	r := newTestRouter()
	w := post(t, r, "/api/v1/medical-nlp/summarize",
		`{"text": "I'm Janet Jones. I was in a car accident and my neck hurts."}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{"entities", "summary", "keywords", "sentiment", "soap"} {
		assert.Contains(t, body, key)
	}

	var entities map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body["entities"], &entities))
	for _, key := range []string{"Patient_Name", "Symptoms", "Diagnosis", "Treatment", "Current_Status", "Prognosis"} {
		assert.Contains(t, entities, key)
	}

	var session map[string]string
	require.NoError(t, json.Unmarshal(body["sentiment"], &session))
	assert.Contains(t, session, "session")
	assert.Contains(t, session, "intent")
}

func TestSummarizeRejectsBlankText(t *testing.T) {
	r := newTestRouter()

	assert.Equal(t, http.StatusBadRequest, post(t, r, "/api/v1/medical-nlp/summarize", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(t, r, "/api/v1/medical-nlp/summarize", `{"text": "   "}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(t, r, "/api/v1/medical-nlp/summarize", `not json`).Code)
}

func TestExtractEntitiesIncludesSpans(t *testing.T) {
	r := newTestRouter()
	w := post(t, r, "/api/v1/medical-nlp/extract-entities",
		`{"text": "I paid $150 for six weeks of physiotherapy."}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "entities")
	assert.Contains(t, body, "linguistic_entities")

	var spans map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body["linguistic_entities"], &spans))
	assert.Contains(t, spans, "MONEY")
	assert.Contains(t, spans, "QUANTITY")
}

func TestModelHealth(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/medical-nlp/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string          `json:"status"`
		Models map[string]bool `json:"models"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, map[string]bool{
		"clinical_ner": false,
		"general_ner":  false,
		"sentiment":    false,
	}, body.Models)
}
