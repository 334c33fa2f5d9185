package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatientName(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I'm Janet Jones and my neck hurts", "Janet Jones"},
		{"My name is Ms. Jones", "Jones"},
		{"Hello, this is Dr. Patel calling", "Patel"},
		{"you can call me Janet", "Janet"},
		{"Patient: Janet Jones\nDoctor: how are you feeling?", "Janet Jones"},
		{"the patient reported neck pain", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PatientName(tt.text), "text: %q", tt.text)
	}
}

func TestCurrentStatusTriggers(t *testing.T) {
	assert.Equal(t, "Occasional back pain", CurrentStatus("Now I only have occasional back pain."))
	assert.Equal(t, "Recovering well", CurrentStatus("I am currently recovering well."))
	assert.Equal(t, "", CurrentStatus("nothing matches here"))
}

func TestPrognosisTriggers(t *testing.T) {
	assert.Equal(t, "Within six months", Prognosis("You should make a full recovery within six months."))
	assert.Equal(t, "To improve soon", Prognosis("Symptoms are expected to improve soon."))
	assert.Equal(t, "", Prognosis("nothing matches here"))
}

func TestInferDiagnosisLadders(t *testing.T) {
	// The cascade and the summarizer disagree on purpose for accident text
	// without an explicit whiplash mention.
	assert.Equal(t, "Whiplash injury", InferDiagnosis("i was in a car accident"))
	assert.Equal(t, "Motor vehicle accident injury", InferSummaryDiagnosis("i was in a car accident"))

	assert.Equal(t, "Whiplash injury", InferDiagnosis("diagnosed with whiplash"))
	assert.Equal(t, "Whiplash injury", InferSummaryDiagnosis("diagnosed with whiplash"))

	assert.Equal(t, "Fall-related injury", InferSummaryDiagnosis("i had a bad fall on the stairs"))
	assert.Equal(t, "Sports injury", InferSummaryDiagnosis("it is a sports injury from football"))
	assert.Equal(t, "", InferDiagnosis("routine checkup"))
}

func TestInferStatusLadder(t *testing.T) {
	assert.Equal(t, "Occasional back pain", InferStatus("occasional twinges in my back"))
	assert.Equal(t, "Occasional pain", InferStatus("occasional pain in my arm"))
	assert.Equal(t, "Improving", InferStatus("i feel much better now"))
	assert.Equal(t, "Pain resolved", InferStatus("i no longer have any pain"))
	assert.Equal(t, "", InferStatus("nothing relevant"))
}

func TestInferPrognosisLadder(t *testing.T) {
	assert.Equal(t, "Full recovery expected within six months",
		InferPrognosis("a full recovery within six months is likely"))
	assert.Equal(t, "Full recovery expected", InferPrognosis("a full recovery is likely"))
	assert.Equal(t, "Recovery expected within months", InferPrognosis("recovery will take months"))
	assert.Equal(t, "Chronic condition", InferPrognosis("this looks chronic"))
	assert.Equal(t, "Full recovery expected within six months", InferPrognosis("classic whiplash presentation"))
	assert.Equal(t, "", InferPrognosis("nothing relevant"))
}
