package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotLoadsOnce(t *testing.T) {
	calls := 0
	slot := NewSlot("test", func() (int, error) {
		calls++
		return 42, nil
	})

	assert.False(t, slot.Loaded())

	v, ok := slot.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, slot.Loaded())

	v, ok = slot.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls, "loader must not run again after success")
}

func TestSlotRetriesFailedLoad(t *testing.T) {
	calls := 0
	slot := NewSlot("test", func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("not ready")
		}
		return 7, nil
	})

	_, ok := slot.Get()
	assert.False(t, ok)
	assert.False(t, slot.Loaded())

	_, ok = slot.Get()
	assert.False(t, ok)

	v, ok := slot.Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 3, calls)
}

func TestSlotFailureHook(t *testing.T) {
	var failed []string
	broken := true
	slot := NewSlot("clinical_ner", func() (int, error) {
		if broken {
			return 0, errors.New("missing model file")
		}
		return 1, nil
	})
	slot.OnFailure = func(model string) { failed = append(failed, model) }

	slot.Get()
	slot.Get()
	assert.Equal(t, []string{"clinical_ner", "clinical_ner"}, failed)

	broken = false
	_, ok := slot.Get()
	assert.True(t, ok)
	assert.Len(t, failed, 2, "hook fires on failures only")
}

func TestRegistryObserveHook(t *testing.T) {
	type obs struct {
		strategy string
		status   Status
	}
	var seen []obs
	reg := New(Config{
		OnOutcome: func(strategy string, status Status) {
			seen = append(seen, obs{strategy, status})
		},
	})

	reg.Observe("sentiment", StatusUnavailable)
	reg.Observe("clinical_ner", StatusOk)
	assert.Equal(t, []obs{
		{"sentiment", StatusUnavailable},
		{"clinical_ner", StatusOk},
	}, seen)

	// Observe without a hook is a no-op.
	New(Config{}).Observe("sentiment", StatusOk)
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "ok", StatusOk.String())
	assert.Equal(t, "unavailable", StatusUnavailable.String())
	assert.Equal(t, "low_confidence", StatusLowConfidence.String())
}

func TestOutcomeTags(t *testing.T) {
	assert.True(t, Ok(1).OK())
	assert.Equal(t, StatusOk, Ok("x").Status)
	assert.False(t, Unavailable[int]().OK())
	assert.Equal(t, StatusUnavailable, Unavailable[int]().Status)
	assert.False(t, LowConfidence[int]().OK())
	assert.Equal(t, StatusLowConfidence, LowConfidence[int]().Status)
}

func TestRegistryWithoutModels(t *testing.T) {
	var failures []string
	reg := New(Config{
		OnLoadFailure: func(model string) { failures = append(failures, model) },
	})

	_, ok := reg.ClinicalNER.Get()
	assert.False(t, ok)
	_, ok = reg.Sentiment.Get()
	assert.False(t, ok)
	assert.Equal(t, []string{"clinical_ner", "sentiment"}, failures)

	status := reg.ModelStatus()
	assert.Equal(t, map[string]bool{
		"clinical_ner": false,
		"general_ner":  false,
		"sentiment":    false,
	}, status)
}
