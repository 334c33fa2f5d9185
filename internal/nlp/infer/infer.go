// Package infer wraps onnxruntime sessions and their tokenizers behind the
// minimal surface the extraction strategies need. Loading is best-effort:
// missing model or tokenizer files surface as load errors that callers treat
// as "strategy unavailable", never as fatal failures.
package infer

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"
)

// Config describes one ONNX model plus its tokenizer.
type Config struct {
	OrtLibrary    string
	ModelPath     string
	TokenizerPath string
	MaxSeqLen     int
	Labels        []string
}

const defaultMaxSeqLen = 512

// ortReady is a plain check-and-set: initialization is idempotent, so a
// racing first load at worst initializes the runtime twice.
var ortReady bool

func ensureRuntime(library string) error {
	if ortReady {
		return nil
	}
	if library != "" {
		ort.SetSharedLibraryPath(library)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("initialize onnxruntime: %w", err)
	}
	ortReady = true
	return nil
}

// encoder couples a tokenizer with a dynamic ONNX session.
type encoder struct {
	tk      *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession
	maxSeq  int
}

func newEncoder(cfg Config) (*encoder, error) {
	if cfg.ModelPath == "" || cfg.TokenizerPath == "" {
		return nil, errors.New("model paths not configured")
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("model file: %w", err)
	}
	if _, err := os.Stat(cfg.TokenizerPath); err != nil {
		return nil, fmt.Errorf("tokenizer file: %w", err)
	}
	if err := ensureRuntime(cfg.OrtLibrary); err != nil {
		return nil, err
	}
	tk, err := pretrained.FromFile(cfg.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}
	session, err := ort.NewDynamicAdvancedSession(
		cfg.ModelPath,
		[]string{"input_ids", "attention_mask"},
		[]string{"logits"},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	maxSeq := cfg.MaxSeqLen
	if maxSeq <= 0 {
		maxSeq = defaultMaxSeqLen
	}
	return &encoder{tk: tk, session: session, maxSeq: maxSeq}, nil
}

// forward tokenizes text, runs the session, and returns the logits plus the
// encoding that produced them. Logits are copied out before tensor cleanup.
func (e *encoder) forward(text string) ([]float32, []int64, *tokenizer.Encoding, error) {
	en, err := e.tk.EncodeSingle(text, true)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encode: %w", err)
	}
	n := len(en.Ids)
	if n == 0 {
		return nil, nil, nil, errors.New("empty encoding")
	}
	if n > e.maxSeq {
		n = e.maxSeq
	}
	ids := make([]int64, n)
	mask := make([]int64, n)
	for i := 0; i < n; i++ {
		ids[i] = int64(en.Ids[i])
		mask[i] = int64(en.AttentionMask[i])
	}

	shape := ort.NewShape(1, int64(n))
	inputIDs, err := ort.NewTensor(shape, ids)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("input tensor: %w", err)
	}
	defer inputIDs.Destroy()
	attention, err := ort.NewTensor(shape, mask)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("mask tensor: %w", err)
	}
	defer attention.Destroy()

	outputs := []ort.Value{nil}
	if err := e.session.Run([]ort.Value{inputIDs, attention}, outputs); err != nil {
		return nil, nil, nil, fmt.Errorf("session run: %w", err)
	}
	out, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, nil, nil, errors.New("unexpected output tensor type")
	}
	defer out.Destroy()

	logits := make([]float32, len(out.GetData()))
	copy(logits, out.GetData())
	dims := out.GetShape()
	return logits, dims, en, nil
}

// Close releases the underlying session.
func (e *encoder) Close() {
	if e.session != nil {
		e.session.Destroy()
		e.session = nil
	}
}

func softmax(logits []float32) []float64 {
	if len(logits) == 0 {
		return nil
	}
	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}
	var sum float64
	probs := make([]float64, len(logits))
	for i, v := range logits {
		probs[i] = math.Exp(float64(v - max))
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
